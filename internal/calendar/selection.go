package calendar

import (
	"sort"

	"github.com/alexanderramin/wartung/internal/domain"
)

// TechnicianSelection is either "all technicians" or a specific set of
// technician ids. The zero value selects all technicians.
type TechnicianSelection struct {
	specific bool
	ids      map[string]struct{}
}

// AllTechnicians selects every technician, including ids missing from the
// roster.
func AllTechnicians() TechnicianSelection {
	return TechnicianSelection{}
}

// SpecificTechnicians selects exactly the given ids. With no ids nothing is
// selected.
func SpecificTechnicians(ids ...string) TechnicianSelection {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return TechnicianSelection{specific: true, ids: set}
}

func (s TechnicianSelection) IsAll() bool {
	return !s.specific
}

// Includes reports whether tasks of technician id pass the selection.
func (s TechnicianSelection) Includes(id string) bool {
	if !s.specific {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in sorted order; nil for AllTechnicians.
func (s TechnicianSelection) IDs() []string {
	if !s.specific {
		return nil
	}
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns how many roster technicians the selection includes.
func (s TechnicianSelection) Count(roster []domain.Technician) int {
	n := 0
	for _, t := range roster {
		if s.Includes(t.ID) {
			n++
		}
	}
	return n
}

// Toggle adds or removes id. Toggling from AllTechnicians yields the roster
// without id.
func (s TechnicianSelection) Toggle(id string, roster []domain.Technician) TechnicianSelection {
	var ids []string
	if s.specific {
		ids = s.IDs()
	} else {
		for _, t := range roster {
			ids = append(ids, t.ID)
		}
	}
	next := SpecificTechnicians(ids...)
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// StatusSelection is a set of visible maintenance statuses. The zero value
// selects every status.
type StatusSelection struct {
	only map[domain.MaintenanceStatus]struct{}
}

// AllStatuses selects every status.
func AllStatuses() StatusSelection {
	return StatusSelection{}
}

// OnlyStatuses selects exactly the given statuses.
func OnlyStatuses(statuses ...domain.MaintenanceStatus) StatusSelection {
	set := make(map[domain.MaintenanceStatus]struct{}, len(statuses))
	for _, st := range statuses {
		set[st] = struct{}{}
	}
	return StatusSelection{only: set}
}

func (s StatusSelection) IsAll() bool {
	return s.only == nil
}

func (s StatusSelection) Includes(st domain.MaintenanceStatus) bool {
	if s.only == nil {
		return true
	}
	_, ok := s.only[st]
	return ok
}

// Statuses returns the selected statuses in the order of known.
func (s StatusSelection) Statuses(known []domain.MaintenanceStatus) []domain.MaintenanceStatus {
	var out []domain.MaintenanceStatus
	for _, st := range known {
		if s.Includes(st) {
			out = append(out, st)
		}
	}
	return out
}

// Toggle adds or removes st. The last selected status cannot be removed.
func (s StatusSelection) Toggle(st domain.MaintenanceStatus, known []domain.MaintenanceStatus) StatusSelection {
	current := s.Statuses(known)
	if s.Includes(st) {
		if len(current) <= 1 {
			return s
		}
		var rest []domain.MaintenanceStatus
		for _, c := range current {
			if c != st {
				rest = append(rest, c)
			}
		}
		return OnlyStatuses(rest...)
	}
	return OnlyStatuses(append(current, st)...)
}

// ToggleAll switches between all statuses and planned only.
func (s StatusSelection) ToggleAll(known []domain.MaintenanceStatus) StatusSelection {
	if len(s.Statuses(known)) == len(known) {
		return OnlyStatuses(domain.MaintenancePlanned)
	}
	return AllStatuses()
}

// Filter decides which tasks are visible in the calendar.
type Filter struct {
	Technicians       TechnicianSelection
	IncludeUnassigned bool
	Statuses          StatusSelection
}

// DefaultFilter shows the first roster technician with every status and
// hides unassigned tasks. With an empty roster all technicians are shown.
func DefaultFilter(roster []domain.Technician) Filter {
	if len(roster) == 0 {
		return Filter{Technicians: AllTechnicians()}
	}
	return Filter{Technicians: SpecificTechnicians(roster[0].ID)}
}

// Visible reports whether a task passes both the status and the technician
// predicate. An unassigned task is visible only when IncludeUnassigned is set.
func (f Filter) Visible(t domain.MaintenanceTask) bool {
	if !f.Statuses.Includes(t.Status) {
		return false
	}
	if !t.Assigned() {
		return f.IncludeUnassigned
	}
	return f.Technicians.Includes(t.TechnicianID)
}

// ShowingAll reports whether every roster technician and unassigned tasks
// are shown.
func (f Filter) ShowingAll(roster []domain.Technician) bool {
	return f.IncludeUnassigned && f.Technicians.Count(roster) == len(roster)
}

// ToggleShowAll switches between everything and the default selection.
func (f Filter) ToggleShowAll(roster []domain.Technician) Filter {
	if f.ShowingAll(roster) {
		def := DefaultFilter(roster)
		def.Statuses = f.Statuses
		return def
	}
	f.Technicians = AllTechnicians()
	f.IncludeUnassigned = true
	return f
}
