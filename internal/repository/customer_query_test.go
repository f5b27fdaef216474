package repository

import (
	"strings"
	"testing"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortColumns_CoverEverySortField(t *testing.T) {
	assert.Len(t, SortColumns, 7)
	for _, f := range domain.SortFields() {
		assert.NotEmpty(t, SortColumns[f], "field %s", f)
	}
}

func TestBuildCustomerPageQuery_NoFilters(t *testing.T) {
	query, args := BuildCustomerPageQuery(domain.CustomerQuery{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY COALESCE(Nachname, '') COLLATE de_DE ASC, AnlID ASC")
	assert.Equal(t, []any{domain.DefaultPageSize, 0}, args)
}

func TestBuildCustomerPageQuery_SearchLocalitySortPage(t *testing.T) {
	query, args := BuildCustomerPageQuery(domain.CustomerQuery{
		Search:    " Mül_ler ",
		Locality:  "Winterberg",
		SortField: domain.SortPostalCode,
		Direction: domain.SortDesc,
		Page:      3,
		PageSize:  10,
	})

	assert.Equal(t, len(searchColumns), strings.Count(query, "LIKE ?"))
	assert.Contains(t, query, " OR ")
	assert.Contains(t, query, "AND Ort = ?")
	assert.Contains(t, query, "COALESCE(PLZ, '') COLLATE de_DE DESC")

	// eight patterns, locality, limit, offset
	assert.Len(t, args, len(searchColumns)+3)
	assert.Equal(t, `%mül\_ler%`, args[0])
	assert.Equal(t, "Winterberg", args[len(searchColumns)])
	assert.Equal(t, []any{10, 20}, args[len(args)-2:])
}

func TestBuildCustomerCountQuery_MatchesPageFilter(t *testing.T) {
	q := domain.CustomerQuery{Search: "50%", Locality: domain.AllLocalities}
	count, countArgs := BuildCustomerCountQuery(q)
	_, pageArgs := BuildCustomerPageQuery(q)

	assert.True(t, strings.HasPrefix(count, "SELECT COUNT(*) FROM Tblanl_eigentuemer WHERE ("))
	assert.NotContains(t, count, "Ort = ?")
	assert.Equal(t, pageArgs[:len(countArgs)], countArgs)
	assert.Equal(t, `%50\%%`, countArgs[0])
}
