package domain

import "strings"

// DefaultPageSize is the number of customers per page.
const DefaultPageSize = 10

// CustomerQuery holds the inputs shared by the in-memory and the store-backed
// customer queries.
type CustomerQuery struct {
	Search    string
	Locality  string
	SortField SortField
	Direction SortDirection
	Page      int
	PageSize  int
}

// Normalized fills in defaults: locality "all", surname ascending, page 1 and
// DefaultPageSize. The search text is trimmed.
func (q CustomerQuery) Normalized() CustomerQuery {
	q.Search = strings.TrimSpace(q.Search)
	if q.Locality == "" {
		q.Locality = AllLocalities
	}
	if q.SortField == "" {
		q.SortField = SortSurname
	}
	if q.Direction != SortDesc {
		q.Direction = SortAsc
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// FiltersLocality reports whether the query restricts results to one locality.
func (q CustomerQuery) FiltersLocality() bool {
	return q.Locality != "" && q.Locality != AllLocalities
}

// Offset is the index of the first row on the requested page.
func (q CustomerQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// CustomerPage is one page of a customer query. TotalCount counts every
// matching row, not only the rows on the page. Localities is independent of
// the query filters.
type CustomerPage struct {
	Rows       []Customer
	TotalCount int
	Localities []string
}

// TotalPages returns ceil(count/size) with a floor of 1.
func TotalPages(count, size int) int {
	if size < 1 || count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// WithSearch sets the search text and returns to the first page.
func (q CustomerQuery) WithSearch(s string) CustomerQuery {
	q.Search = strings.TrimSpace(s)
	q.Page = 1
	return q
}

// WithLocality sets the locality filter and returns to the first page.
func (q CustomerQuery) WithLocality(locality string) CustomerQuery {
	q.Locality = locality
	q.Page = 1
	return q
}

// SortedBy sorts by f. Choosing the current field flips the direction, any
// other field starts ascending. The page resets to the first.
func (q CustomerQuery) SortedBy(f SortField) CustomerQuery {
	if q.SortField == f {
		q.Direction = q.Direction.Toggle()
	} else {
		q.SortField = f
		q.Direction = SortAsc
	}
	q.Page = 1
	return q
}
