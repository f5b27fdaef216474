package domain

// MaintenanceStatus is the planning state of a maintenance visit.
type MaintenanceStatus string

const (
	// MaintenanceUnplanned has a date but nobody has been contacted yet.
	MaintenanceUnplanned MaintenanceStatus = "unplanned"
	// MaintenanceNotAnswered was contacted by mail without a reply.
	MaintenanceNotAnswered MaintenanceStatus = "not_answered"
	MaintenanceContacted   MaintenanceStatus = "contacted"
	MaintenancePlanned     MaintenanceStatus = "planned"
)

// MaintenanceStatuses lists every maintenance status in display order.
func MaintenanceStatuses() []MaintenanceStatus {
	return []MaintenanceStatus{
		MaintenanceUnplanned,
		MaintenanceNotAnswered,
		MaintenanceContacted,
		MaintenancePlanned,
	}
}

func (s MaintenanceStatus) Label() string {
	switch s {
	case MaintenanceUnplanned:
		return "Ungeplant"
	case MaintenanceNotAnswered:
		return "Keine Antwort"
	case MaintenanceContacted:
		return "Kontaktiert"
	case MaintenancePlanned:
		return "Geplant"
	default:
		return string(s)
	}
}

func (s MaintenanceStatus) Valid() bool {
	for _, known := range MaintenanceStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

type SchedulingStatus string

const (
	SchedulingNotContacted   SchedulingStatus = "not_contacted"
	SchedulingEmailSent      SchedulingStatus = "email_sent"
	SchedulingEmailConfirmed SchedulingStatus = "email_confirmed"
	SchedulingPhoneCalled    SchedulingStatus = "phone_called"
	SchedulingConfirmed      SchedulingStatus = "confirmed"
	SchedulingCancelled      SchedulingStatus = "cancelled"
)

func (s SchedulingStatus) Label() string {
	switch s {
	case SchedulingNotContacted:
		return "Nicht kontaktiert"
	case SchedulingEmailSent:
		return "E-Mail gesendet"
	case SchedulingEmailConfirmed:
		return "E-Mail bestätigt"
	case SchedulingPhoneCalled:
		return "Telefonisch kontaktiert"
	case SchedulingConfirmed:
		return "Vom Kunden bestätigt"
	case SchedulingCancelled:
		return "Storniert"
	default:
		return string(s)
	}
}

type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationTentative ConfirmationStatus = "tentative"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationCancelled ConfirmationStatus = "cancelled"
)

func (s ConfirmationStatus) Label() string {
	switch s {
	case ConfirmationPending:
		return "Ausstehend"
	case ConfirmationTentative:
		return "Vorläufig"
	case ConfirmationConfirmed:
		return "Bestätigt"
	case ConfirmationCancelled:
		return "Storniert"
	default:
		return string(s)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank orders priorities for the ticket panel: urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Niedrig"
	case PriorityMedium:
		return "Mittel"
	case PriorityHigh:
		return "Hoch"
	case PriorityUrgent:
		return "Dringend"
	default:
		return string(p)
	}
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "urgent": true,
}
