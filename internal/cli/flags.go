package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a YYYY-MM-DD flag. The zero value means "not set".
type dateValue struct {
	t   *time.Time
	loc *time.Location
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *time.Time, loc *time.Location) *dateValue {
	return &dateValue{t: p, loc: loc}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	loc := d.loc
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	*d.t = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// viewModeValue accepts "columns" or "rows".
type viewModeValue calendar.ViewMode

var _ pflag.Value = (*viewModeValue)(nil)

func (v *viewModeValue) String() string { return string(*v) }

func (v *viewModeValue) Set(s string) error {
	mode, err := calendar.ParseViewMode(strings.ToLower(s))
	if err != nil {
		return err
	}
	*v = viewModeValue(mode)
	return nil
}

func (v *viewModeValue) Type() string { return "mode" }

// sortFieldValue accepts one of the sortable customer fields.
type sortFieldValue domain.SortField

var _ pflag.Value = (*sortFieldValue)(nil)

func (v *sortFieldValue) String() string { return string(*v) }

func (v *sortFieldValue) Set(s string) error {
	f, err := domain.ParseSortField(strings.ToLower(s))
	if err != nil {
		return err
	}
	*v = sortFieldValue(f)
	return nil
}

func (v *sortFieldValue) Type() string { return "field" }

// parseStatuses validates maintenance status names.
func parseStatuses(names []string) ([]domain.MaintenanceStatus, error) {
	out := make([]domain.MaintenanceStatus, 0, len(names))
	for _, n := range names {
		st := domain.MaintenanceStatus(strings.ToLower(strings.TrimSpace(n)))
		if !st.Valid() {
			return nil, fmt.Errorf("unknown maintenance status %q", n)
		}
		out = append(out, st)
	}
	return out, nil
}
