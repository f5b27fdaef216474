package formatter

import (
	"strings"

	"github.com/alexanderramin/wartung/internal/domain"
)

// FormatTask renders a maintenance task after a status change.
func FormatTask(t domain.MaintenanceTask, tech *domain.Technician) string {
	assignee := Dim("nicht zugewiesen")
	if tech != nil {
		assignee = TechnicianBadge(*tech) + " " + tech.Name
	}
	lines := []string{
		Bold(t.ContactPerson) + "  " + Dim(t.Location),
		"Termin:       " + WeekdayShort(t.ScheduledDate.Weekday()) + " " + GermanDate(t.ScheduledDate),
		"Techniker:    " + assignee,
		"Wartung:      " + MaintenanceStatusPill(t.Status),
		"Terminierung: " + t.SchedulingStatus.Label(),
		"Bestätigung:  " + ConfirmationPill(t.ConfirmationStatus),
	}
	if t.Notes != "" {
		lines = append(lines, "", Dim(t.Notes))
	}
	return RenderBox("Wartung "+TruncID(t.ID), strings.Join(lines, "\n"))
}
