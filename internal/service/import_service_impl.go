package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cronpick/internal/db"
	"github.com/alexanderramin/cronpick/internal/importer"
	"github.com/alexanderramin/cronpick/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string, replace bool) (*ImportResult, error) {
	doc, err := importer.LoadScheduleDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDocument(ctx, doc, replace)
}

// ImportDocument writes every schedule in doc inside one transaction. Either
// all schedules are stored or none are.
func (s *importService) ImportDocument(ctx context.Context, doc *importer.ScheduleDocument, replace bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"schedules": len(doc.Schedules),
		"replace":   replace,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-schedules",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateScheduleDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		for _, imp := range doc.Schedules {
			expr, shape, err := parseExpression(imp.Expression)
			if err != nil {
				return fmt.Errorf("schedule %q: %w", imp.Name, err)
			}
			saved, err := upsertSchedule(ctx, txSchedules, imp.Name, expr, shape, replace)
			if err != nil {
				return fmt.Errorf("importing schedule %q: %w", imp.Name, err)
			}
			if saved.Created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["created"] = result.Created
	fields["updated"] = result.Updated
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
