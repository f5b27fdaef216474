package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
)

// PlanningHorizon is the number of weeks offered for tour planning.
const PlanningHorizon = 12

// WeekOption is a selectable ISO week for tour planning.
type WeekOption struct {
	Year   int
	Week   int
	Monday time.Time
	Label  string
}

// AvailableWeeks returns the week containing now followed by n-1 weeks.
// Labels carry the ISO year when it differs from the year of now's week.
func AvailableWeeks(now time.Time, n int) []WeekOption {
	monday := StartOfWeek(now)
	baseYear, _ := monday.ISOWeek()
	opts := make([]WeekOption, 0, n)
	for i := 0; i < n; i++ {
		m := ShiftWeeks(monday, i)
		year, week := m.ISOWeek()
		label := fmt.Sprintf("KW %d", week)
		if year != baseYear {
			label = fmt.Sprintf("KW %d (%d)", week, year)
		}
		opts = append(opts, WeekOption{Year: year, Week: week, Monday: m, Label: label})
	}
	return opts
}

// ClampRange keeps the end index at or after the start index.
func ClampRange(start, end int) (int, int) {
	if end < start {
		return start, start
	}
	return start, end
}

// RangeStats counts tasks per maintenance status in a week range.
type RangeStats struct {
	Weeks    int
	Total    int
	ByStatus map[domain.MaintenanceStatus]int
}

// Count returns the number of tasks with status st.
func (r RangeStats) Count(st domain.MaintenanceStatus) int {
	return r.ByStatus[st]
}

// StatsInRange counts the tasks scheduled from the Monday of from through the
// Sunday of to, both inclusive.
func StatsInRange(tasks []domain.MaintenanceTask, from, to WeekOption) RangeStats {
	first := DateOf(from.Monday)
	last := DateOf(to.Monday).AddDays(DaysPerWeek - 1)
	stats := RangeStats{
		Weeks:    weeksBetween(first, last),
		ByStatus: make(map[domain.MaintenanceStatus]int),
	}
	for _, t := range tasks {
		d := DateOf(t.ScheduledDate)
		if d.Before(first) || last.Before(d) {
			continue
		}
		stats.Total++
		stats.ByStatus[t.Status]++
	}
	return stats
}

func weeksBetween(first, last Date) int {
	if last.Before(first) {
		return 0
	}
	days := int(last.In(time.UTC).Sub(first.In(time.UTC)).Hours()/24) + 1
	return days / DaysPerWeek
}
