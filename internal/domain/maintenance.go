package domain

import (
	"strings"
	"time"
	"unicode"
)

// MaintenanceTask is a scheduled maintenance visit. ScheduledDate carries
// date-only semantics: only its calendar day is meaningful.
type MaintenanceTask struct {
	ID            string
	ContactPerson string
	Location      string
	Phone         string
	Email         string
	ScheduledDate time.Time

	Status             MaintenanceStatus
	SchedulingStatus   SchedulingStatus
	ConfirmationStatus ConfirmationStatus

	// TechnicianID is empty when the visit is not assigned.
	TechnicianID string
	Notes        string
}

// Assigned reports whether a technician is set on the task.
func (t MaintenanceTask) Assigned() bool {
	return t.TechnicianID != ""
}

// Confirmed returns a copy of t with both status fields set to confirmed.
// A confirmed appointment is planned.
func (t MaintenanceTask) Confirmed() MaintenanceTask {
	t.SchedulingStatus = SchedulingConfirmed
	t.ConfirmationStatus = ConfirmationConfirmed
	t.Status = MaintenancePlanned
	return t
}

// Cancelled returns a copy of t with both status fields set to cancelled.
func (t MaintenanceTask) Cancelled() MaintenanceTask {
	t.SchedulingStatus = SchedulingCancelled
	t.ConfirmationStatus = ConfirmationCancelled
	return t
}

// Technician is a member of the field staff.
type Technician struct {
	ID       string
	Name     string
	Initials string
	// Color is a hex color string used for tours and the legend.
	Color string
}

// FallbackTechnicianColor is used for technicians missing from the roster.
const FallbackTechnicianColor = "#928374"

// FallbackTechnician builds a placeholder for an id that is not in the roster.
func FallbackTechnician(id string) Technician {
	return Technician{
		ID:       id,
		Name:     id,
		Initials: Initials(id),
		Color:    FallbackTechnicianColor,
	}
}

// Initials returns up to two uppercase initials for a display name.
func Initials(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	var out []rune
	for _, f := range fields {
		out = append(out, unicode.ToUpper([]rune(f)[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
