package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
)

// FormatCalendar renders a grid in its view mode followed by the technician
// legend. Weekend days are collapsed when no visible task falls on them.
func FormatCalendar(g calendar.Grid, roster []domain.Technician, f calendar.Filter) string {
	var b strings.Builder

	if len(g.Weeks) > 0 {
		first := g.Weeks[0].Start()
		last := g.Weeks[len(g.Weeks)-1].End()
		title := fmt.Sprintf("Kalender %s – %s", dayLabel(first), GermanDate(last.In(time.UTC)))
		b.WriteString(Header(title))
		b.WriteString("\n\n")
	}

	days := visibleWeekdays(g)
	if g.Mode == calendar.ViewColumns {
		b.WriteString(renderColumns(g, days))
	} else {
		b.WriteString(renderRows(g, days))
	}

	b.WriteString("\n")
	b.WriteString(FormatLegend(roster, f))
	return b.String()
}

// FormatLegend lists the roster with selection marks and the active
// unassigned and status filters.
func FormatLegend(roster []domain.Technician, f calendar.Filter) string {
	var parts []string
	for _, t := range roster {
		mark := "○"
		if f.Technicians.Includes(t.ID) {
			mark = "●"
		}
		parts = append(parts, TechnicianStyle(t).Render(mark+" "+t.Initials)+" "+t.Name)
	}
	unassigned := "○ Nicht zugewiesen"
	if f.IncludeUnassigned {
		unassigned = "● Nicht zugewiesen"
	}
	parts = append(parts, Dim(unassigned))

	statuses := "alle Status"
	if !f.Statuses.IsAll() {
		var labels []string
		for _, st := range f.Statuses.Statuses(domain.MaintenanceStatuses()) {
			labels = append(labels, st.Label())
		}
		statuses = strings.Join(labels, ", ")
	}
	return strings.Join(parts, "  ") + "\n" + Dim("Status: "+statuses) + "\n"
}

// FormatDayTours lists every visible task of the grid day by day.
func FormatDayTours(g calendar.Grid) string {
	var b strings.Builder
	for _, w := range g.Weeks {
		for _, d := range w.Days {
			if d.Visible == 0 {
				continue
			}
			b.WriteString(Bold(dayLabel(d.Date)))
			if d.Holiday != "" {
				b.WriteString(" " + StylePurple.Render(d.Holiday))
			}
			b.WriteString("\n")
			for _, tour := range d.Tours {
				for _, t := range tour.Tasks {
					b.WriteString(taskLine(TechnicianBadge(tour.Technician), t))
				}
			}
			for _, t := range d.UnassignedTasks {
				b.WriteString(taskLine(Dim("[--]"), t))
			}
		}
	}
	if b.Len() == 0 {
		return Dim("Keine Termine im Zeitraum.") + "\n"
	}
	return b.String()
}

func taskLine(badge string, t domain.MaintenanceTask) string {
	return fmt.Sprintf("  %s %s  %s  %s  %s\n",
		badge, t.ContactPerson, Dim(t.Location), MaintenanceStatusPill(t.Status), TruncID(t.ID))
}

// renderRows draws one line per week with the weekdays as columns.
func renderRows(g calendar.Grid, days []int) string {
	headers := []string{"KW"}
	for _, i := range days {
		headers = append(headers, WeekdayShort(weekdayAt(i)))
	}
	headers = append(headers, "Σ")

	rows := make([][]string, 0, len(g.Weeks))
	for _, w := range g.Weeks {
		row := []string{weekLabel(w)}
		for _, i := range days {
			row = append(row, dayCellSummary(w.Days[i]))
		}
		row = append(row, fmt.Sprint(w.Visible))
		rows = append(rows, row)
	}

	footer := []string{"Σ"}
	for _, i := range days {
		footer = append(footer, fmt.Sprint(g.DayTotals[i]))
	}
	footer = append(footer, Bold(fmt.Sprint(g.Total)))
	return RenderTableWithFooter(headers, rows, footer)
}

// renderColumns draws one column per week with the weekdays as rows.
func renderColumns(g calendar.Grid, days []int) string {
	headers := []string{"Tag"}
	for _, w := range g.Weeks {
		headers = append(headers, weekLabel(w))
	}
	headers = append(headers, "Σ")

	rows := make([][]string, 0, len(days))
	for _, i := range days {
		row := []string{WeekdayShort(weekdayAt(i))}
		for _, w := range g.Weeks {
			row = append(row, dayCellSummary(w.Days[i]))
		}
		row = append(row, fmt.Sprint(g.DayTotals[i]))
		rows = append(rows, row)
	}

	footer := []string{"Σ"}
	for _, w := range g.Weeks {
		footer = append(footer, fmt.Sprint(w.Visible))
	}
	footer = append(footer, Bold(fmt.Sprint(g.Total)))
	return RenderTableWithFooter(headers, rows, footer)
}

// dayCellSummary shows the date and one badge per visible tour with its task
// count; unassigned visible tasks appear as "?n".
func dayCellSummary(d calendar.DayCell) string {
	date := ShortDate(d.Date.In(time.UTC))
	switch {
	case d.Today:
		date = StyleToday.Render(date)
	case d.Holiday != "":
		date = StylePurple.Render(date + "*")
	case d.Weekend:
		date = Dim(date)
	}

	parts := []string{date}
	for _, tour := range d.Tours {
		parts = append(parts, TechnicianStyle(tour.Technician).Render(fmt.Sprintf("%s:%d", tour.Technician.Initials, len(tour.Tasks))))
	}
	if n := len(d.UnassignedTasks); n > 0 {
		parts = append(parts, Dim(fmt.Sprintf("?%d", n)))
	}
	return strings.Join(parts, " ")
}

func visibleWeekdays(g calendar.Grid) []int {
	n := calendar.DaysPerWeek
	if !g.WeekendHasTasks() {
		n = 5
	}
	days := make([]int, n)
	for i := range days {
		days[i] = i
	}
	return days
}

// weekdayAt maps a Monday-first index to a weekday.
func weekdayAt(i int) time.Weekday {
	return time.Weekday((i + 1) % 7)
}

func weekLabel(w calendar.Week) string {
	return fmt.Sprintf("KW %d", w.Number)
}

func dayLabel(d calendar.Date) string {
	return WeekdayShort(d.Weekday()) + " " + ShortDate(d.In(time.UTC))
}
