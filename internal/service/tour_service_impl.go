package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/repository"
)

type tourService struct {
	tasks repository.TaskRepo
	loc   *time.Location
}

func NewTourService(tasks repository.TaskRepo, loc *time.Location) TourService {
	if loc == nil {
		loc = time.UTC
	}
	return &tourService{tasks: tasks, loc: loc}
}

// Weeks offers the current week and the following weeks of the planning
// horizon.
func (s *tourService) Weeks(now time.Time) []calendar.WeekOption {
	return calendar.AvailableWeeks(now.In(s.loc), calendar.PlanningHorizon)
}

func (s *tourService) Stats(ctx context.Context, from, to calendar.WeekOption) (calendar.RangeStats, error) {
	last := calendar.DateOf(to.Monday).AddDays(calendar.DaysPerWeek - 1).In(s.loc)
	tasks, err := s.tasks.ListBetween(ctx, from.Monday, last)
	if err != nil {
		return calendar.RangeStats{}, fmt.Errorf("loading tasks: %w", err)
	}
	return calendar.StatsInRange(tasks, from, to), nil
}
