package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/repository"
	"golang.org/x/sync/errgroup"
)

type customerService struct {
	customers repository.CustomerRepo
	observer  UseCaseObserver
}

func NewCustomerService(customers repository.CustomerRepo, observers ...UseCaseObserver) CustomerService {
	return &customerService{customers: customers, observer: useCaseObserverOrNoop(observers)}
}

// Query fetches the page and the locality options concurrently.
func (s *customerService) Query(ctx context.Context, q domain.CustomerQuery) domain.CustomerPage {
	q = q.Normalized()
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"search":   q.Search,
		"locality": q.Locality,
		"sort":     string(q.SortField),
		"page":     q.Page,
	}

	var (
		rows       []domain.Customer
		total      int
		localities []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, total, err = s.customers.Query(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		localities, err = s.customers.Localities(gctx)
		return err
	})
	err := g.Wait()
	if err == nil {
		fields["total"] = total
	}
	observe(ctx, s.observer, "customers.query", startedAt, fields, &err)

	if err != nil {
		return emptyCustomerPage()
	}
	return domain.CustomerPage{Rows: rows, TotalCount: total, Localities: localities}
}

func (s *customerService) All(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListAll(ctx)
}

func (s *customerService) Count(ctx context.Context) (int, error) {
	return s.customers.Count(ctx)
}

func emptyCustomerPage() domain.CustomerPage {
	return domain.CustomerPage{Rows: []domain.Customer{}, TotalCount: 0, Localities: []string{}}
}
