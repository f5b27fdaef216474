package masterdata

import (
	"sort"
	"strings"

	"github.com/alexanderramin/wartung/internal/domain"
)

// Query filters, sorts and paginates customers in memory. The source slice
// is not modified. Localities are taken from the whole source, independent
// of the query.
func Query(source []domain.Customer, q domain.CustomerQuery) domain.CustomerPage {
	q = q.Normalized()

	rows := make([]domain.Customer, 0, len(source))
	needle := Fold(q.Search)
	for _, c := range source {
		if q.FiltersLocality() && c.City != q.Locality {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		rows = append(rows, c)
	}

	sortCustomers(rows, q.SortField, q.Direction)

	return domain.CustomerPage{
		Rows:       pageSlice(rows, q.Offset(), q.PageSize),
		TotalCount: len(rows),
		Localities: Localities(source),
	}
}

func matches(c domain.Customer, needle string) bool {
	for _, v := range c.SearchableFields() {
		if ContainsFold(v, needle) {
			return true
		}
	}
	return false
}

func sortCustomers(rows []domain.Customer, field domain.SortField, dir domain.SortDirection) {
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := CompareGerman(rows[i].SortValue(field), rows[j].SortValue(field))
		if dir == domain.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func pageSlice(rows []domain.Customer, offset, size int) []domain.Customer {
	if offset >= len(rows) {
		return []domain.Customer{}
	}
	end := offset + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// Localities returns the distinct non-empty cities of customers in German
// collation order.
func Localities(customers []domain.Customer) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, c := range customers {
		city := c.City
		if strings.TrimSpace(city) == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		out = append(out, city)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return CompareGerman(out[i], out[j]) < 0
	})
	return out
}
