package cli

import (
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planning  service.PlanningService
	Tickets   service.TicketService
	Customers service.CustomerService
	Tours     service.TourService
	Import    service.ImportService

	PageSize       int
	SearchDebounce time.Duration
	DefaultWeeks   int
	Location       *time.Location

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
	// Now is the clock; nil means time.Now in Location.
	Now func() time.Time
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().In(a.location())
	}
	return time.Now().In(a.location())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) pageSize() int {
	if a.PageSize < 1 {
		return domain.DefaultPageSize
	}
	return a.PageSize
}

func (a *App) defaultWeeks() int {
	if a.DefaultWeeks < 1 {
		return calendar.MaxWeeks
	}
	return calendar.ClampWeeks(a.DefaultWeeks)
}

// NewRootCmd creates the top-level "wartung" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wartung",
		Short:         "Maintenance calendar, service tickets and customer master data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newCalendarCmd(app),
		newTaskCmd(app),
		newTicketCmd(app),
		newCustomerCmd(app),
		newTourCmd(app),
	)

	return root
}
