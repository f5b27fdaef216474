package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/cli"
	"github.com/alexanderramin/wartung/internal/config"
	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/repository"
	"github.com/alexanderramin/wartung/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loc := cfg.Location()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	technicianRepo := repository.NewSQLiteTechnicianRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database, loc)
	ticketRepo := repository.NewSQLiteTicketRepo(database)
	customerRepo := repository.NewSQLiteCustomerRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Planning:  service.NewPlanningService(technicianRepo, taskRepo, uow, loc, calendar.NRWHoliday, observers...),
		Tickets:   service.NewTicketService(ticketRepo, observers...),
		Customers: service.NewCustomerService(customerRepo, observers...),
		Tours:     service.NewTourService(taskRepo, loc),
		Import:    service.NewImportService(uow, loc, observers...),

		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
		DefaultWeeks:   cfg.DefaultWeeks,
		Location:       loc,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
