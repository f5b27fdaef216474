package domain

import "strings"

// Location is a free-text address split into its parts.
type Location struct {
	Street     string
	PostalCode string
	City       string
}

// ZipCity returns "<postal-code> <city>" with missing parts omitted.
func (l Location) ZipCity() string {
	return joinNonEmpty(" ", l.PostalCode, l.City)
}

// ParseLocation splits "<street>, <postal-code> <city>" leniently. Without a
// comma the whole string is the street. Everything after the first comma is
// the postal/city part; a leading token made of digits is the postal code.
func ParseLocation(s string) Location {
	street, rest, found := strings.Cut(s, ",")
	if !found {
		return Location{Street: strings.TrimSpace(s)}
	}
	loc := Location{Street: strings.TrimSpace(street)}
	rest = strings.TrimSpace(rest)

	code, city, hasCity := strings.Cut(rest, " ")
	if isDigits(code) {
		loc.PostalCode = code
		if hasCity {
			loc.City = strings.TrimSpace(city)
		}
		return loc
	}
	loc.City = rest
	return loc
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
