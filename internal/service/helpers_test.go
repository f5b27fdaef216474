package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/repository"
	"github.com/alexanderramin/wartung/internal/testutil"
)

type repos struct {
	technicians *repository.SQLiteTechnicianRepo
	tasks       *repository.SQLiteTaskRepo
	tickets     *repository.SQLiteTicketRepo
	customers   *repository.SQLiteCustomerRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		technicians: repository.NewSQLiteTechnicianRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database, time.UTC),
		tickets:     repository.NewSQLiteTicketRepo(database),
		customers:   repository.NewSQLiteCustomerRepo(database),
		uow:         testutil.NewTestUoW(database),
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}
