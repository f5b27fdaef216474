package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wartung/internal/domain"
)

// sortHeaders maps sortable fields to their column titles.
var sortHeaders = map[domain.SortField]string{
	domain.SortOwnerNumber: "Nr.",
	domain.SortSurname:     "Nachname",
	domain.SortFirstName:   "Vorname",
	domain.SortCity:        "Ort",
	domain.SortPostalCode:  "PLZ",
	domain.SortEmail:       "E-Mail",
	domain.SortPhone:       "Telefon",
}

// CustomerHeaders returns the table headers with an arrow on the sorted column.
func CustomerHeaders(q domain.CustomerQuery) []string {
	headers := make([]string, 0, len(sortHeaders)+1)
	for _, f := range domain.SortFields() {
		h := sortHeaders[f]
		if f == q.SortField {
			if q.Direction == domain.SortDesc {
				h += " ↓"
			} else {
				h += " ↑"
			}
		}
		headers = append(headers, h)
	}
	return append(headers, "Firma")
}

// CustomerRow renders one customer in CustomerHeaders column order.
func CustomerRow(c domain.Customer) []string {
	return []string{
		Dim(OrDash(c.OwnerNumber)),
		Bold(c.Surname),
		c.FirstName,
		OrDash(c.City),
		OrDash(c.PostalCode),
		OrDash(c.Email),
		OrDash(c.Phone),
		OrDash(c.Company),
	}
}

// FormatCustomerPage renders a page of customers with the pagination footer.
func FormatCustomerPage(page domain.CustomerPage, q domain.CustomerQuery) string {
	q = q.Normalized()
	var b strings.Builder

	if len(page.Rows) == 0 {
		b.WriteString(Dim("Keine Kunden gefunden."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(page.Rows))
		for _, c := range page.Rows {
			rows = append(rows, CustomerRow(c))
		}
		b.WriteString(RenderTable(CustomerHeaders(q), rows))
	}

	b.WriteString("\n")
	b.WriteString(PageFooter(q, page.TotalCount))
	b.WriteString("\n")
	return b.String()
}

// PageFooter renders "Seite p von n · k Kunden" plus the active filters.
func PageFooter(q domain.CustomerQuery, total int) string {
	pages := domain.TotalPages(total, q.PageSize)
	parts := []string{
		fmt.Sprintf("Seite %d von %d", q.Page, pages),
		fmt.Sprintf("%d Kunden", total),
	}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("Suche %q", q.Search))
	}
	if q.FiltersLocality() {
		parts = append(parts, "Ort "+q.Locality)
	}
	return Dim(strings.Join(parts, " · "))
}

// FormatCustomerDetail renders the full record of one customer.
func FormatCustomerDetail(c domain.Customer) string {
	name := strings.TrimSpace(strings.Join([]string{c.Title, c.FirstName, c.Surname}, " "))
	lines := []string{
		Bold(name),
		"Adresse:  " + OrDash(c.Address()),
		"Telefon:  " + OrDash(c.Phone),
		"Mobil:    " + OrDash(c.Mobile),
		"E-Mail:   " + OrDash(c.Email),
	}
	if c.Company != "" {
		lines = append(lines, "Firma:    "+c.Company)
	}
	if c.Notes != "" {
		lines = append(lines, "", Dim(c.Notes))
	}
	return RenderBox("Kunde "+c.OwnerNumber, strings.Join(lines, "\n"))
}

// FormatLocalities renders the distinct localities as a dimmed list.
func FormatLocalities(localities []string) string {
	if len(localities) == 0 {
		return Dim("Orte: -")
	}
	return Dim("Orte: " + strings.Join(localities, ", "))
}
