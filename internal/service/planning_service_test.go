package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/repository"
	"github.com/alexanderramin/wartung/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanningService_Calendar(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	anna := &domain.Technician{ID: "t-anna", Name: "Anna Becker", Initials: "AB", Color: "#83a598"}
	ben := &domain.Technician{ID: "t-ben", Name: "Ben Kraus", Initials: "BK", Color: "#d3869b"}
	require.NoError(t, r.technicians.Upsert(ctx, anna, 0))
	require.NoError(t, r.technicians.Upsert(ctx, ben, 1))

	monday := testutil.Date(2024, time.March, 25)
	tasks := []*domain.MaintenanceTask{
		testutil.NewTestTask("A", monday, testutil.WithTechnician("t-anna")),
		testutil.NewTestTask("B", monday, testutil.WithTechnician("t-ben")),
		testutil.NewTestTask("C", monday.AddDate(0, 0, 2)),
		testutil.NewTestTask("D", monday.AddDate(0, 0, 7), testutil.WithTechnician("t-anna")),
		testutil.NewTestTask("E", monday.AddDate(0, 0, -1), testutil.WithTechnician("t-anna")),
	}
	for _, task := range tasks {
		require.NoError(t, r.tasks.Upsert(ctx, task))
	}

	svc := NewPlanningService(r.technicians, r.tasks, r.uow, time.UTC, calendar.NRWHoliday)
	view, err := svc.Calendar(ctx, CalendarRequest{
		Anchor: monday.AddDate(0, 0, 3),
		Weeks:  1,
		Filter: calendar.DefaultFilter([]domain.Technician{*anna, *ben}),
		Now:    monday,
	})
	require.NoError(t, err)

	require.Len(t, view.Technicians, 2)
	assert.Equal(t, "t-anna", view.Technicians[0].ID)
	require.Len(t, view.Grid.Weeks, 1)

	week := view.Grid.Weeks[0]
	assert.Equal(t, 13, week.Number)
	assert.Equal(t, 1, week.Days[0].Visible, "only Anna is selected by default")
	assert.Equal(t, 2, week.Days[0].Total())
	assert.Equal(t, 1, week.Days[2].Total(), "unassigned task is bucketed")
	assert.Equal(t, 0, week.Days[2].Visible)
	assert.Equal(t, "Karfreitag", week.Days[4].Holiday)
	assert.True(t, week.Days[0].Today)
	assert.Equal(t, 1, view.Grid.Total)
}

func TestPlanningService_ConfirmAndCancel(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewPlanningService(r.technicians, r.tasks, r.uow, time.UTC, nil, obs)

	task := testutil.NewTestTask("Jana Peters", testutil.Date(2024, time.March, 4),
		testutil.WithSchedulingStatus(domain.SchedulingEmailSent),
		testutil.WithNotes("Schlüssel beim Nachbarn"))
	require.NoError(t, r.tasks.Upsert(ctx, task))

	confirmed, err := svc.Confirm(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulingConfirmed, confirmed.SchedulingStatus)
	assert.Equal(t, domain.ConfirmationConfirmed, confirmed.ConfirmationStatus)
	assert.Equal(t, "tasks.confirm", obs.last().Name)
	assert.True(t, obs.last().Success)

	stored, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, *confirmed, *stored)
	assert.Equal(t, "Schlüssel beim Nachbarn", stored.Notes, "other fields survive the rewrite")

	cancelled, err := svc.Cancel(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulingCancelled, cancelled.SchedulingStatus)
	assert.Equal(t, domain.ConfirmationCancelled, cancelled.ConfirmationStatus)
	assert.Equal(t, "tasks.cancel", obs.last().Name)
}

func TestPlanningService_ConfirmUnknownTask(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewPlanningService(r.technicians, r.tasks, r.uow, time.UTC, nil, obs)

	_, err := svc.Confirm(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, obs.last().Success)
}

func TestPlanningService_ConfirmRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database, time.UTC)
	ctx := context.Background()

	task := testutil.NewTestTask("Klaus Müller", testutil.Date(2024, time.March, 4))
	require.NoError(t, tasks.Upsert(ctx, task))

	errDisk := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: errDisk}
	svc := NewPlanningService(repository.NewSQLiteTechnicianRepo(database), tasks, uow, time.UTC, nil)

	_, err := svc.Confirm(ctx, task.ID)
	require.ErrorIs(t, err, errDisk)

	stored, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulingNotContacted, stored.SchedulingStatus)
	assert.Equal(t, domain.ConfirmationPending, stored.ConfirmationStatus)
}
