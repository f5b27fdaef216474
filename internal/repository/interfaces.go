package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
)

// ErrNotFound is returned (wrapped) when a row does not exist.
var ErrNotFound = errors.New("not found")

type TechnicianRepo interface {
	// List returns the roster in display order.
	List(ctx context.Context) ([]domain.Technician, error)
	Upsert(ctx context.Context, t *domain.Technician, sortOrder int) error
}

type TaskRepo interface {
	List(ctx context.Context) ([]domain.MaintenanceTask, error)
	// ListBetween returns tasks scheduled on any day from `from` through `to`.
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.MaintenanceTask, error)
	GetByID(ctx context.Context, id string) (*domain.MaintenanceTask, error)
	// Replace overwrites every field of an existing task.
	Replace(ctx context.Context, t *domain.MaintenanceTask) error
	Upsert(ctx context.Context, t *domain.MaintenanceTask) error
}

type TicketRepo interface {
	List(ctx context.Context) ([]domain.ServiceTicket, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceTicket, error)
	Upsert(ctx context.Context, t *domain.ServiceTicket) error
}

type CustomerRepo interface {
	// Query returns one page of matching customers and the number of all
	// matching customers.
	Query(ctx context.Context, q domain.CustomerQuery) ([]domain.Customer, int, error)
	// Localities returns the distinct non-null localities in collation order.
	Localities(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
	Upsert(ctx context.Context, c *domain.Customer) error
}
