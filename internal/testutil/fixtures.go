package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/google/uuid"
)

var ownerNumberCounter atomic.Int64

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Task options
type TaskOption func(*domain.MaintenanceTask)

func WithTechnician(id string) TaskOption {
	return func(t *domain.MaintenanceTask) {
		t.TechnicianID = id
	}
}

func WithMaintenanceStatus(s domain.MaintenanceStatus) TaskOption {
	return func(t *domain.MaintenanceTask) {
		t.Status = s
	}
}

func WithSchedulingStatus(s domain.SchedulingStatus) TaskOption {
	return func(t *domain.MaintenanceTask) {
		t.SchedulingStatus = s
	}
}

func WithNotes(n string) TaskOption {
	return func(t *domain.MaintenanceTask) {
		t.Notes = n
	}
}

func NewTestTask(contact string, scheduled time.Time, opts ...TaskOption) *domain.MaintenanceTask {
	t := &domain.MaintenanceTask{
		ID:                 uuid.New().String(),
		ContactPerson:      contact,
		Location:           "Am Markt 3, 59955 Winterberg",
		Phone:              "02981 1234",
		Email:              "kontakt@example.de",
		ScheduledDate:      scheduled,
		Status:             domain.MaintenanceUnplanned,
		SchedulingStatus:   domain.SchedulingNotContacted,
		ConfirmationStatus: domain.ConfirmationPending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestTechnician(name string) *domain.Technician {
	return &domain.Technician{
		ID:       uuid.New().String(),
		Name:     name,
		Initials: domain.Initials(name),
		Color:    "#83a598",
	}
}

// Ticket options
type TicketOption func(*domain.ServiceTicket)

func WithPriority(p domain.Priority) TicketOption {
	return func(t *domain.ServiceTicket) {
		t.Priority = p
	}
}

func WithCreatedAt(at time.Time) TicketOption {
	return func(t *domain.ServiceTicket) {
		t.CreatedAt = at
	}
}

func NewTestTicket(title string, opts ...TicketOption) *domain.ServiceTicket {
	t := &domain.ServiceTicket{
		ID:            uuid.New().String(),
		Title:         title,
		ContactPerson: "Petra Lange",
		Location:      "Hauptstraße 12, 59964 Medebach",
		Priority:      domain.PriorityMedium,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Customer options
type CustomerOption func(*domain.Customer)

func WithCity(postalCode, city string) CustomerOption {
	return func(c *domain.Customer) {
		c.PostalCode = postalCode
		c.City = city
	}
}

func WithCompany(name string) CustomerOption {
	return func(c *domain.Customer) {
		c.Company = name
	}
}

func WithEmail(email string) CustomerOption {
	return func(c *domain.Customer) {
		c.Email = email
	}
}

func WithStreet(street, houseNo string) CustomerOption {
	return func(c *domain.Customer) {
		c.Street = street
		c.HouseNumber = houseNo
	}
}

// NewTestCustomer returns a customer without an ID so the store assigns one.
func NewTestCustomer(surname, firstName string, opts ...CustomerOption) *domain.Customer {
	c := &domain.Customer{
		OwnerNumber: fmt.Sprintf("E-%04d", ownerNumberCounter.Add(1)),
		Surname:     surname,
		FirstName:   firstName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
