package repository

import (
	"strings"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/masterdata"
)

// SortColumns maps sortable customer fields to Tblanl_eigentuemer columns.
var SortColumns = map[domain.SortField]string{
	domain.SortOwnerNumber: "EigentuemerNr",
	domain.SortSurname:     "Nachname",
	domain.SortFirstName:   "Vorname",
	domain.SortCity:        "Ort",
	domain.SortPostalCode:  "PLZ",
	domain.SortEmail:       "Email",
	domain.SortPhone:       "TelefonNr",
}

// searchColumns are matched by the free-text search, joined with OR.
var searchColumns = []string{
	"Nachname",
	"Vorname",
	"Firma",
	"EigentuemerNr",
	"Ort",
	"PLZ",
	"Email",
	"Strasse",
}

const customerColumns = `AnlID, EigentuemerNr, Nachname, Vorname, Firma, Titel, Anrede,
		Strasse, HausNr, PLZ, Ort, Ortsteil, TelefonNr, TelefonNrGesch, MobilNr, Email, Anmerkungen`

// customerFilter renders the WHERE clause shared by the page and the count
// query. It returns an empty clause when nothing is filtered.
func customerFilter(q domain.CustomerQuery) (string, []any) {
	var conds []string
	var args []any

	if term := strings.TrimSpace(q.Search); term != "" {
		pattern := "%" + escapeLike(masterdata.Fold(term)) + "%"
		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = "casefold(" + col + `) LIKE ? ESCAPE '\'`
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if q.FiltersLocality() {
		conds = append(conds, "Ort = ?")
		args = append(args, q.Locality)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// BuildCustomerPageQuery returns the SELECT for one page of q.
func BuildCustomerPageQuery(q domain.CustomerQuery) (string, []any) {
	q = q.Normalized()
	where, args := customerFilter(q)

	col, ok := SortColumns[q.SortField]
	if !ok {
		col = SortColumns[domain.SortSurname]
	}
	dir := "ASC"
	if q.Direction == domain.SortDesc {
		dir = "DESC"
	}

	query := `SELECT ` + customerColumns + ` FROM Tblanl_eigentuemer` + where +
		` ORDER BY COALESCE(` + col + `, '') COLLATE ` + db.GermanCollation + ` ` + dir + `, AnlID ASC` +
		` LIMIT ? OFFSET ?`
	return query, append(args, q.PageSize, q.Offset())
}

// BuildCustomerCountQuery returns the exact count of rows matching q.
func BuildCustomerCountQuery(q domain.CustomerQuery) (string, []any) {
	where, args := customerFilter(q.Normalized())
	return `SELECT COUNT(*) FROM Tblanl_eigentuemer` + where, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
