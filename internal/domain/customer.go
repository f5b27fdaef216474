package domain

import "fmt"

// Customer is a property owner (Eigentümer) from the master data. Surname and
// FirstName are always present; every other field may be empty, and an empty
// string means the value is not present.
type Customer struct {
	ID          int64
	OwnerNumber string
	Surname     string
	FirstName   string
	Company     string
	Title       string
	Salutation  string
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	District    string
	Phone       string
	// BusinessPhone is the second phone number.
	BusinessPhone string
	Mobile        string
	Email         string
	Notes         string
}

// Address renders "street houseNo, plz city" with missing parts omitted.
func (c Customer) Address() string {
	street := joinNonEmpty(" ", c.Street, c.HouseNumber)
	if c.Street == "" {
		street = ""
	}
	return joinNonEmpty(", ", street, joinNonEmpty(" ", c.PostalCode, c.City))
}

// SearchableFields returns the values matched by free-text customer search.
func (c Customer) SearchableFields() []string {
	return []string{
		c.Surname,
		c.FirstName,
		c.Company,
		c.OwnerNumber,
		c.City,
		c.PostalCode,
		c.Email,
		c.Street,
	}
}

// SortField names a sortable customer column.
type SortField string

const (
	SortOwnerNumber SortField = "owner_number"
	SortSurname     SortField = "surname"
	SortFirstName   SortField = "first_name"
	SortCity        SortField = "city"
	SortPostalCode  SortField = "postal_code"
	SortEmail       SortField = "email"
	SortPhone       SortField = "phone"
)

// SortFields lists the sortable fields in table column order.
func SortFields() []SortField {
	return []SortField{
		SortOwnerNumber,
		SortSurname,
		SortFirstName,
		SortCity,
		SortPostalCode,
		SortEmail,
		SortPhone,
	}
}

// ParseSortField validates a sort field name.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// SortValue returns the string value of the given field, empty when missing.
func (c Customer) SortValue(f SortField) string {
	switch f {
	case SortOwnerNumber:
		return c.OwnerNumber
	case SortSurname:
		return c.Surname
	case SortFirstName:
		return c.FirstName
	case SortCity:
		return c.City
	case SortPostalCode:
		return c.PostalCode
	case SortEmail:
		return c.Email
	case SortPhone:
		return c.Phone
	default:
		return ""
	}
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// AllLocalities is the locality filter value that disables the filter.
const AllLocalities = "all"
