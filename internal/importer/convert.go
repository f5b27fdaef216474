package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/google/uuid"
)

// Converted holds the domain objects of a dataset, ready for persistence.
type Converted struct {
	Technicians []domain.Technician
	Tasks       []domain.MaintenanceTask
	Tickets     []domain.ServiceTicket
	Customers   []domain.Customer
}

// Convert maps a validated dataset to domain objects. Task dates are read as
// midnight in loc. Rows without an id get a fresh UUID.
// Call ValidateDataset first; Convert assumes the dataset is valid.
func Convert(ds *Dataset, loc *time.Location) (*Converted, error) {
	if loc == nil {
		loc = time.UTC
	}
	out := &Converted{}

	for _, t := range ds.Technicians {
		initials := t.Initials
		if initials == "" {
			initials = domain.Initials(t.Name)
		}
		color := t.Color
		if color == "" {
			color = domain.FallbackTechnicianColor
		}
		out.Technicians = append(out.Technicians, domain.Technician{
			ID:       t.ID,
			Name:     t.Name,
			Initials: initials,
			Color:    color,
		})
	}

	for _, t := range ds.Tasks {
		date, err := time.ParseInLocation("2006-01-02", t.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing task date: %w", err)
		}
		out.Tasks = append(out.Tasks, domain.MaintenanceTask{
			ID:                 idOrNew(t.ID),
			ContactPerson:      t.ContactPerson,
			Location:           t.Location,
			Phone:              t.Phone,
			Email:              t.Email,
			ScheduledDate:      date,
			Status:             domain.MaintenanceStatus(orDefault(t.Status, string(domain.MaintenanceUnplanned))),
			SchedulingStatus:   domain.SchedulingStatus(orDefault(t.SchedulingStatus, string(domain.SchedulingNotContacted))),
			ConfirmationStatus: domain.ConfirmationStatus(orDefault(t.ConfirmationStatus, string(domain.ConfirmationPending))),
			TechnicianID:       t.Technician,
			Notes:              t.Notes,
		})
	}

	for _, t := range ds.Tickets {
		created, err := time.Parse(time.RFC3339, t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing ticket created_at: %w", err)
		}
		out.Tickets = append(out.Tickets, domain.ServiceTicket{
			ID:            idOrNew(t.ID),
			Title:         t.Title,
			ContactPerson: t.ContactPerson,
			Location:      t.Location,
			Phone:         t.Phone,
			Email:         t.Email,
			Priority:      domain.Priority(orDefault(t.Priority, string(domain.PriorityMedium))),
			CreatedAt:     created,
			Description:   t.Description,
		})
	}

	for _, c := range ds.Customers {
		out.Customers = append(out.Customers, domain.Customer{
			ID:            c.ID,
			OwnerNumber:   c.OwnerNumber,
			Surname:       c.Surname,
			FirstName:     c.FirstName,
			Company:       c.Company,
			Title:         c.Title,
			Salutation:    c.Salutation,
			Street:        c.Street,
			HouseNumber:   c.HouseNumber,
			PostalCode:    c.PostalCode,
			City:          c.City,
			District:      c.District,
			Phone:         c.Phone,
			BusinessPhone: c.BusinessPhone,
			Mobile:        c.Mobile,
			Email:         c.Email,
			Notes:         c.Notes,
		})
	}

	return out, nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
