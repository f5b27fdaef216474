package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/importer"
)

// CalendarRequest selects the window and filter of a calendar view.
type CalendarRequest struct {
	Anchor time.Time
	Weeks  int
	Mode   calendar.ViewMode
	Filter calendar.Filter
	Now    time.Time
}

// CalendarView is a built grid together with the roster it was built from.
type CalendarView struct {
	Grid        calendar.Grid
	Technicians []domain.Technician
	Filter      calendar.Filter
}

type PlanningService interface {
	Technicians(ctx context.Context) ([]domain.Technician, error)
	Calendar(ctx context.Context, req CalendarRequest) (*CalendarView, error)
	Confirm(ctx context.Context, taskID string) (*domain.MaintenanceTask, error)
	Cancel(ctx context.Context, taskID string) (*domain.MaintenanceTask, error)
}

type TicketService interface {
	// List returns tickets ordered by priority, newest first.
	List(ctx context.Context) ([]domain.ServiceTicket, error)
	Schedule(ctx context.Context, ticketID string) error
}

type CustomerService interface {
	// Query never fails: store errors are reported to the observer and
	// yield an empty page.
	Query(ctx context.Context, q domain.CustomerQuery) domain.CustomerPage
	// All loads every customer for in-memory querying.
	All(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int, error)
}

type TourService interface {
	Weeks(now time.Time) []calendar.WeekOption
	Stats(ctx context.Context, from, to calendar.WeekOption) (calendar.RangeStats, error)
}

// ImportResult counts the rows written by an import.
type ImportResult struct {
	TechnicianCount int
	TaskCount       int
	TicketCount     int
	CustomerCount   int
}

type ImportService interface {
	ImportDataset(ctx context.Context, filePath string) (*ImportResult, error)
	ImportDatasetFromSchema(ctx context.Context, ds *importer.Dataset) (*ImportResult, error)
}
