package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/importer"
	"github.com/alexanderramin/wartung/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, loc *time.Location, observers ...UseCaseObserver) ImportService {
	if loc == nil {
		loc = time.UTC
	}
	return &importService{uow: uow, loc: loc, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportDataset(ctx context.Context, filePath string) (*ImportResult, error) {
	ds, err := importer.LoadDataset(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDatasetFromSchema(ctx, ds)
}

// ImportDatasetFromSchema upserts every row in one transaction; any failure
// leaves the store unchanged.
func (s *importService) ImportDatasetFromSchema(ctx context.Context, ds *importer.Dataset) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import.dataset", startedAt, fields, &err)

	if errs := importer.ValidateDataset(ds); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	conv, err := importer.Convert(ds, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting dataset: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		techs := repository.NewSQLiteTechnicianRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx, s.loc)
		tickets := repository.NewSQLiteTicketRepo(tx)
		customers := repository.NewSQLiteCustomerRepo(tx)

		for i := range conv.Technicians {
			if err := techs.Upsert(ctx, &conv.Technicians[i], i); err != nil {
				return fmt.Errorf("technician %q: %w", conv.Technicians[i].ID, err)
			}
		}
		for i := range conv.Tasks {
			if err := tasks.Upsert(ctx, &conv.Tasks[i]); err != nil {
				return fmt.Errorf("task %q: %w", conv.Tasks[i].ID, err)
			}
		}
		for i := range conv.Tickets {
			if err := tickets.Upsert(ctx, &conv.Tickets[i]); err != nil {
				return fmt.Errorf("ticket %q: %w", conv.Tickets[i].ID, err)
			}
		}
		for i := range conv.Customers {
			if err := customers.Upsert(ctx, &conv.Customers[i]); err != nil {
				return fmt.Errorf("customer %s %s: %w", conv.Customers[i].FirstName, conv.Customers[i].Surname, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{
		TechnicianCount: len(conv.Technicians),
		TaskCount:       len(conv.Tasks),
		TicketCount:     len(conv.Tickets),
		CustomerCount:   len(conv.Customers),
	}
	fields["tasks"] = result.TaskCount
	fields["customers"] = result.CustomerCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
