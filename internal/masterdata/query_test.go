package masterdata

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surnames(rows []domain.Customer) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Surname
	}
	return out
}

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, OwnerNumber: "E-100", Surname: "Peters", FirstName: "Jana", City: "Winterberg", PostalCode: "59955", Street: "Am Waltenberg"},
		{ID: 2, OwnerNumber: "E-101", Surname: "Özdemir", FirstName: "Deniz", City: "Medebach", PostalCode: "59964"},
		{ID: 3, OwnerNumber: "E-102", Surname: "Müller", FirstName: "Klaus", City: "Winterberg", Email: "k.mueller@example.de"},
		{ID: 4, OwnerNumber: "E-103", Surname: "Zimmer", FirstName: "Anke", Company: "Müller & Zimmer GmbH", City: "Hallenberg"},
		{ID: 5, OwnerNumber: "E-104", Surname: "Schmidt", FirstName: "Uwe", Street: "Müllerweg", City: "Winterberg"},
		{ID: 6, OwnerNumber: "E-105", Surname: "Albers", FirstName: "Tom"},
	}
}

func TestQuery_SearchMatchesAnyField(t *testing.T) {
	page := Query(sampleCustomers(), domain.CustomerQuery{Search: "Müller"})

	assert.Equal(t, 3, page.TotalCount)
	assert.ElementsMatch(t, []string{"Müller", "Zimmer", "Schmidt"}, surnames(page.Rows))
}

func TestQuery_SearchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	upper := Query(sampleCustomers(), domain.CustomerQuery{Search: "  MÜLLER "})
	lower := Query(sampleCustomers(), domain.CustomerQuery{Search: "müller"})
	assert.Equal(t, lower, upper)

	byOwner := Query(sampleCustomers(), domain.CustomerQuery{Search: "e-102"})
	assert.Equal(t, []string{"Müller"}, surnames(byOwner.Rows))
}

func TestQuery_EmptySearchReturnsLocalityFilteredSet(t *testing.T) {
	page := Query(sampleCustomers(), domain.CustomerQuery{Search: "   ", Locality: "Winterberg"})
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, []string{"Müller", "Peters", "Schmidt"}, surnames(page.Rows))

	all := Query(sampleCustomers(), domain.CustomerQuery{Locality: domain.AllLocalities})
	assert.Equal(t, 6, all.TotalCount)
}

func TestQuery_MissingFieldsNeverMatch(t *testing.T) {
	page := Query(sampleCustomers(), domain.CustomerQuery{Search: "@"})
	assert.Equal(t, []string{"Müller"}, surnames(page.Rows))
}

func TestQuery_GermanCollation(t *testing.T) {
	source := []domain.Customer{{Surname: "Peters"}, {Surname: "Özdemir"}, {Surname: "Müller"}, {Surname: "Zimmer"}}

	asc := Query(source, domain.CustomerQuery{SortField: domain.SortSurname, Direction: domain.SortAsc})
	assert.Equal(t, []string{"Müller", "Özdemir", "Peters", "Zimmer"}, surnames(asc.Rows))

	desc := Query(source, domain.CustomerQuery{SortField: domain.SortSurname, Direction: domain.SortDesc})
	assert.Equal(t, []string{"Zimmer", "Peters", "Özdemir", "Müller"}, surnames(desc.Rows))
}

func TestQuery_MissingSortValueSortsAsEmpty(t *testing.T) {
	page := Query(sampleCustomers(), domain.CustomerQuery{SortField: domain.SortEmail})
	require.Len(t, page.Rows, 6)
	assert.Equal(t, "Müller", page.Rows[5].Surname)
	// rows without email keep their source order
	assert.Equal(t, []string{"Peters", "Özdemir", "Zimmer", "Schmidt", "Albers"}, surnames(page.Rows[:5]))
}

func TestQuery_Pagination(t *testing.T) {
	source := make([]domain.Customer, 23)
	for i := range source {
		source[i] = domain.Customer{ID: int64(i + 1), Surname: fmt.Sprintf("Kunde %02d", i+1), City: "Winterberg"}
	}

	page3 := Query(source, domain.CustomerQuery{Page: 3, PageSize: 10})
	assert.Len(t, page3.Rows, 3)
	assert.Equal(t, 23, page3.TotalCount)
	assert.Equal(t, "Kunde 21", page3.Rows[0].Surname)

	page5 := Query(source, domain.CustomerQuery{Page: 5, PageSize: 10})
	assert.Empty(t, page5.Rows)
	assert.Equal(t, 23, page5.TotalCount)

	assert.Equal(t, 3, domain.TotalPages(page5.TotalCount, 10))
}

func TestQuery_LocalitiesIgnoreFilters(t *testing.T) {
	page := Query(sampleCustomers(), domain.CustomerQuery{Search: "Özdemir", Locality: "Medebach"})
	assert.Equal(t, []string{"Hallenberg", "Medebach", "Winterberg"}, page.Localities)
}

func TestQuery_Deterministic(t *testing.T) {
	source := sampleCustomers()
	q := domain.CustomerQuery{Search: "e-", SortField: domain.SortCity, Direction: domain.SortDesc, Page: 1, PageSize: 4}

	first := Query(source, q)
	second := Query(source, q)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleCustomers(), source, "source must not be reordered")
}

func TestLocalities_Collated(t *testing.T) {
	got := Localities([]domain.Customer{{City: "Zell"}, {City: "Öhringen"}, {City: "Olpe"}, {City: ""}, {City: "Zell"}})
	assert.Equal(t, []string{"Öhringen", "Olpe", "Zell"}, got)
}
