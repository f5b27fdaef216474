package calendar

import (
	"sort"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
)

// Config is the reference data the engine needs. It is passed explicitly so
// grid computation never depends on package state.
type Config struct {
	// Technicians is the roster in display order.
	Technicians []domain.Technician
	// Statuses lists the known maintenance statuses in display order.
	Statuses []domain.MaintenanceStatus
	// Location is the zone in which calendar days are computed.
	Location *time.Location
	// Holiday optionally names public holidays. It only annotates days.
	Holiday func(Date) (string, bool)
}

// DefaultConfig returns a config with every maintenance status, no roster,
// UTC and no holiday lookup.
func DefaultConfig() Config {
	return Config{
		Statuses: domain.MaintenanceStatuses(),
		Location: time.UTC,
	}
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Technician returns the roster entry for id, or a fallback entry.
func (c Config) Technician(id string) domain.Technician {
	for _, t := range c.Technicians {
		if t.ID == id {
			return t
		}
	}
	return domain.FallbackTechnician(id)
}

func (c Config) rosterIndex() map[string]int {
	idx := make(map[string]int, len(c.Technicians))
	for i, t := range c.Technicians {
		idx[t.ID] = i
	}
	return idx
}

// Request holds the inputs of one grid computation.
type Request struct {
	Tasks  []domain.MaintenanceTask
	Anchor time.Time
	Weeks  int
	Mode   ViewMode
	Filter Filter
	// Today is captured once by the caller.
	Today time.Time
}

// Tour is the visible work of one technician on one day.
type Tour struct {
	Technician domain.Technician
	Tasks      []domain.MaintenanceTask
}

// DayCell is one day of the grid.
type DayCell struct {
	Date    Date
	Today   bool
	Weekend bool
	Holiday string

	// Buckets holds every task of the day keyed by technician id, before
	// filtering. Unassigned tasks use the Unassigned key.
	Buckets map[string][]domain.MaintenanceTask

	// Tours holds the visible assigned tasks in roster order; technicians
	// missing from the roster follow in id order.
	Tours []Tour
	// UnassignedTasks holds the visible unassigned tasks.
	UnassignedTasks []domain.MaintenanceTask
	Visible         int
}

// Total returns the number of tasks scheduled on the day, visible or not.
func (d DayCell) Total() int {
	n := 0
	for _, ts := range d.Buckets {
		n += len(ts)
	}
	return n
}

// Week is one Monday-aligned week of the grid.
type Week struct {
	ISOYear int
	Number  int
	Days    [DaysPerWeek]DayCell
	Visible int
}

// Start returns the Monday of the week.
func (w Week) Start() Date { return w.Days[0].Date }

// End returns the Sunday of the week.
func (w Week) End() Date { return w.Days[DaysPerWeek-1].Date }

// Grid is the computed calendar.
type Grid struct {
	Mode  ViewMode
	Weeks []Week
	// DayTotals sums visible tasks per weekday (Monday first) across weeks.
	DayTotals [DaysPerWeek]int
	Total     int
}

// WeekendHasTasks reports whether any visible task falls on Saturday or
// Sunday. Renderers use it to collapse empty weekends.
func (g Grid) WeekendHasTasks() bool {
	return g.DayTotals[5] > 0 || g.DayTotals[6] > 0
}

// Build computes the grid. Task days are read from ScheduledDate in its own
// location; Today is converted to cfg.Location first. Tasks outside the
// window are ignored; nothing else is dropped except by the filter
// predicates.
func Build(cfg Config, req Request) Grid {
	loc := cfg.location()
	weeks := ClampWeeks(req.Weeks)
	mode := req.Mode
	if mode == "" {
		mode = ViewColumns
	}

	byDay := BucketByDay(req.Tasks)
	today := DateOf(req.Today.In(loc))
	order := cfg.rosterIndex()

	grid := Grid{Mode: mode, Weeks: make([]Week, weeks)}
	for w, days := range WeekDates(DateOf(req.Anchor).In(loc), weeks) {
		week := &grid.Weeks[w]
		week.ISOYear, week.Number = days[0].ISOWeek()
		for i, day := range days {
			cell := buildDay(cfg, req.Filter, DateOf(day), byDay, order)
			cell.Today = cell.Date == today
			week.Days[i] = cell
			week.Visible += cell.Visible
			grid.DayTotals[i] += cell.Visible
		}
		grid.Total += week.Visible
	}
	return grid
}

func buildDay(cfg Config, f Filter, date Date, byDay map[Date][]domain.MaintenanceTask, order map[string]int) DayCell {
	wd := date.Weekday()
	cell := DayCell{
		Date:    date,
		Weekend: wd == time.Saturday || wd == time.Sunday,
		Buckets: GroupByTechnician(byDay[date]),
	}
	if cfg.Holiday != nil {
		if name, ok := cfg.Holiday(date); ok {
			cell.Holiday = name
		}
	}

	for _, techID := range sortedTechIDs(cell.Buckets, order) {
		var visible []domain.MaintenanceTask
		for _, t := range cell.Buckets[techID] {
			if f.Visible(t) {
				visible = append(visible, t)
			}
		}
		if len(visible) == 0 {
			continue
		}
		cell.Visible += len(visible)
		if techID == Unassigned {
			cell.UnassignedTasks = visible
			continue
		}
		cell.Tours = append(cell.Tours, Tour{Technician: cfg.Technician(techID), Tasks: visible})
	}
	return cell
}

// sortedTechIDs orders bucket keys by roster position, then unknown ids
// alphabetically, with the unassigned bucket last.
func sortedTechIDs(buckets map[string][]domain.MaintenanceTask, order map[string]int) []string {
	ids := make([]string, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	rank := func(id string) int {
		if id == Unassigned {
			return len(order) + 1
		}
		if i, ok := order[id]; ok {
			return i
		}
		return len(order)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := rank(ids[i]), rank(ids[j])
		if ri != rj {
			return ri < rj
		}
		return ids[i] < ids[j]
	})
	return ids
}
