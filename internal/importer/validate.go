package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
)

var (
	validSchedulingStatuses = map[string]bool{
		"not_contacted": true, "email_sent": true, "email_confirmed": true,
		"phone_called": true, "confirmed": true, "cancelled": true,
	}
	validConfirmationStatuses = map[string]bool{"pending": true, "tentative": true, "confirmed": true, "cancelled": true}
)

// ValidateDataset checks the dataset before conversion and returns every
// error found.
func ValidateDataset(ds *Dataset) []error {
	var errs []error
	errs = append(errs, validateTechnicians(ds.Technicians)...)
	errs = append(errs, validateTasks(ds.Tasks)...)
	errs = append(errs, validateTickets(ds.Tickets)...)
	errs = append(errs, validateCustomers(ds.Customers)...)
	return errs
}

func validateTechnicians(techs []TechnicianImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, t := range techs {
		prefix := fmt.Sprintf("technicians[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate %q", prefix, t.ID))
		}
		seen[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.ContactPerson == "" {
			errs = append(errs, fmt.Errorf("%s.contact_person is required", prefix))
		}
		if t.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse("2006-01-02", t.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, t.Date))
		}
		if t.Status != "" && !domain.MaintenanceStatus(t.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.SchedulingStatus != "" && !validSchedulingStatuses[t.SchedulingStatus] {
			errs = append(errs, fmt.Errorf("%s.scheduling_status: invalid value %q", prefix, t.SchedulingStatus))
		}
		if t.ConfirmationStatus != "" && !validConfirmationStatuses[t.ConfirmationStatus] {
			errs = append(errs, fmt.Errorf("%s.confirmation_status: invalid value %q", prefix, t.ConfirmationStatus))
		}
	}
	return errs
}

func validateTickets(tickets []TicketImport) []error {
	var errs []error
	for i, t := range tickets {
		prefix := fmt.Sprintf("tickets[%d]", i)
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.CreatedAt == "" {
			errs = append(errs, fmt.Errorf("%s.created_at is required", prefix))
		} else if _, err := time.Parse(time.RFC3339, t.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.created_at: invalid timestamp %q (expected RFC 3339)", prefix, t.CreatedAt))
		}
	}
	return errs
}

func validateCustomers(customers []CustomerImport) []error {
	var errs []error
	for i, c := range customers {
		prefix := fmt.Sprintf("customers[%d]", i)
		if c.Surname == "" {
			errs = append(errs, fmt.Errorf("%s.surname is required", prefix))
		}
		if c.FirstName == "" {
			errs = append(errs, fmt.Errorf("%s.first_name is required", prefix))
		}
		if c.ID < 0 {
			errs = append(errs, fmt.Errorf("%s.id must not be negative", prefix))
		}
	}
	return errs
}
