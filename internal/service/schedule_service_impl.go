package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/db"
	"github.com/alexanderramin/cronpick/internal/domain"
	"github.com/alexanderramin/cronpick/internal/importer"
	"github.com/alexanderramin/cronpick/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Save stores expression under name in canonical form, creating the
// schedule or replacing the expression of an existing one.
func (s *scheduleService) Save(ctx context.Context, name, expression string) (result *SaveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"name": name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	candidate := &domain.Schedule{Name: name}
	if err = candidate.ValidateName(); err != nil {
		return nil, err
	}

	var expr cronexpr.Expression
	var shape cronexpr.Shape
	expr, shape, err = parseExpression(expression)
	if err != nil {
		return nil, err
	}
	fields["expression"] = expr.String()
	fields["shape"] = shape.String()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		result, txErr = upsertSchedule(ctx, repository.NewSQLiteScheduleRepo(tx), name, expr, shape, true)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	fields["created"] = result.Created
	return result, nil
}

func (s *scheduleService) Get(ctx context.Context, name string) (*domain.Schedule, error) {
	sched, err := s.schedules.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", name, err)
	}
	return sched, nil
}

// List returns all schedules ordered by name, or only those of the given
// shape when shape is non-empty.
func (s *scheduleService) List(ctx context.Context, shape string) ([]*domain.Schedule, error) {
	if shape == "" {
		return s.schedules.List(ctx)
	}
	parsed, err := cronexpr.ParseShape(shape)
	if err != nil {
		return nil, err
	}
	return s.schedules.ListByShape(ctx, parsed.String())
}

func (s *scheduleService) Delete(ctx context.Context, name string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"name": name},
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		sched, err := txSchedules.GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("schedule %q: %w", name, err)
		}
		return txSchedules.Delete(ctx, sched.ID)
	})
}

// Export writes every saved schedule to w as a YAML document and returns
// how many were written.
func (s *scheduleService) Export(ctx context.Context, w io.Writer) (int, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := importer.Encode(w, importer.FromSchedules(schedules)); err != nil {
		return 0, err
	}
	return len(schedules), nil
}

// parseExpression parses input and reports its shape.
func parseExpression(input string) (cronexpr.Expression, cronexpr.Shape, error) {
	expr, err := cronexpr.Parse(input)
	if err != nil {
		return cronexpr.Expression{}, 0, err
	}
	shape, err := expr.Shape()
	if err != nil {
		return cronexpr.Expression{}, 0, err
	}
	return expr, shape, nil
}

// upsertSchedule creates the named schedule or, when replace is set, updates
// the existing one. Without replace an existing name is ErrDuplicateName.
func upsertSchedule(
	ctx context.Context,
	repo repository.ScheduleRepo,
	name string,
	expr cronexpr.Expression,
	shape cronexpr.Shape,
	replace bool,
) (*SaveResult, error) {
	now := time.Now().UTC()

	existing, err := repo.GetByName(ctx, name)
	switch {
	case err == nil:
		if !replace {
			return nil, fmt.Errorf("schedule %q: %w", name, repository.ErrDuplicateName)
		}
		existing.Expression = expr.String()
		existing.Shape = shape.String()
		existing.UpdatedAt = now
		if err := repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &SaveResult{Schedule: existing}, nil
	case errors.Is(err, repository.ErrNotFound):
		sched := &domain.Schedule{
			ID:         uuid.New().String(),
			Name:       name,
			Expression: expr.String(),
			Shape:      shape.String(),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repo.Create(ctx, sched); err != nil {
			return nil, err
		}
		return &SaveResult{Schedule: sched, Created: true}, nil
	default:
		return nil, err
	}
}
