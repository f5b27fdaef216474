package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
)

// FormatTourStats renders the task counts of a tour planning range.
func FormatTourStats(from, to calendar.WeekOption, stats calendar.RangeStats) string {
	var b strings.Builder

	rangeLabel := from.Label
	if to.Year != from.Year || to.Week != from.Week {
		rangeLabel = from.Label + " – " + to.Label
	}
	b.WriteString(Bold(rangeLabel))
	b.WriteString(Dim(fmt.Sprintf("  (%d Wochen)", stats.Weeks)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(domain.MaintenanceStatuses()))
	for _, st := range domain.MaintenanceStatuses() {
		rows = append(rows, []string{MaintenanceStatusPill(st), fmt.Sprint(stats.Count(st))})
	}
	b.WriteString(RenderTableWithFooter(
		[]string{"Status", "Termine"},
		rows,
		[]string{"Gesamt", Bold(fmt.Sprint(stats.Total))},
	))
	return RenderBox("Tourenplanung", strings.TrimRight(b.String(), "\n"))
}

// FormatWeekOptions lists the selectable planning weeks with their index.
func FormatWeekOptions(weeks []calendar.WeekOption) string {
	rows := make([][]string, 0, len(weeks))
	for i, w := range weeks {
		rows = append(rows, []string{fmt.Sprint(i), w.Label, Dim(GermanDate(w.Monday))})
	}
	return RenderTable([]string{"#", "Woche", "Montag"}, rows)
}
