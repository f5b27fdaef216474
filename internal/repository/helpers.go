package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// nullableString returns the string of s, empty when NULL.
func nullableString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// stringToNullable stores an empty string as SQL NULL.
func stringToNullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// parseDate reads a YYYY-MM-DD column as midnight in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(dateLayout, s, loc)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
