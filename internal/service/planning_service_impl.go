package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/repository"
)

type planningService struct {
	technicians repository.TechnicianRepo
	tasks       repository.TaskRepo
	uow         db.UnitOfWork
	loc         *time.Location
	holiday     func(calendar.Date) (string, bool)
	observer    UseCaseObserver
}

// NewPlanningService builds the calendar and the confirm/cancel actions.
// Tasks are read and written in loc; holiday may be nil.
func NewPlanningService(
	technicians repository.TechnicianRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	loc *time.Location,
	holiday func(calendar.Date) (string, bool),
	observers ...UseCaseObserver,
) PlanningService {
	if loc == nil {
		loc = time.UTC
	}
	return &planningService{
		technicians: technicians,
		tasks:       tasks,
		uow:         uow,
		loc:         loc,
		holiday:     holiday,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planningService) Technicians(ctx context.Context) ([]domain.Technician, error) {
	return s.technicians.List(ctx)
}

func (s *planningService) Calendar(ctx context.Context, req CalendarRequest) (*CalendarView, error) {
	roster, err := s.technicians.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading technicians: %w", err)
	}

	weeks := calendar.ClampWeeks(req.Weeks)
	first := calendar.StartOfWeek(calendar.DateOf(req.Anchor).In(s.loc))
	last := calendar.DateOf(first).AddDays(weeks*calendar.DaysPerWeek - 1).In(s.loc)

	tasks, err := s.tasks.ListBetween(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	cfg := calendar.Config{
		Technicians: roster,
		Statuses:    domain.MaintenanceStatuses(),
		Location:    s.loc,
		Holiday:     s.holiday,
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	grid := calendar.Build(cfg, calendar.Request{
		Tasks:  tasks,
		Anchor: req.Anchor,
		Weeks:  weeks,
		Mode:   req.Mode,
		Filter: req.Filter,
		Today:  now,
	})
	return &CalendarView{Grid: grid, Technicians: roster, Filter: req.Filter}, nil
}

func (s *planningService) Confirm(ctx context.Context, taskID string) (*domain.MaintenanceTask, error) {
	return s.rewriteStatus(ctx, "tasks.confirm", taskID, domain.MaintenanceTask.Confirmed)
}

func (s *planningService) Cancel(ctx context.Context, taskID string) (*domain.MaintenanceTask, error) {
	return s.rewriteStatus(ctx, "tasks.cancel", taskID, domain.MaintenanceTask.Cancelled)
}

// rewriteStatus reads the task and writes back the whole record with the
// statuses produced by apply.
func (s *planningService) rewriteStatus(
	ctx context.Context,
	useCase, taskID string,
	apply func(domain.MaintenanceTask) domain.MaintenanceTask,
) (updated *domain.MaintenanceTask, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": taskID}
	defer observe(ctx, s.observer, useCase, startedAt, fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx, s.loc)
		current, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		next := apply(*current)
		if err := txTasks.Replace(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["scheduling_status"] = string(updated.SchedulingStatus)
	return updated, nil
}
