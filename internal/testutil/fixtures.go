package testutil

import (
	"time"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/domain"
	"github.com/google/uuid"
)

// Schedule options
type ScheduleOption func(*domain.Schedule)

func WithExpression(expr string) ScheduleOption {
	return func(s *domain.Schedule) {
		s.Expression = expr
		if shape, err := cronexpr.Classify(expr); err == nil {
			s.Shape = shape.String()
		}
	}
}

func WithCreatedAt(t time.Time) ScheduleOption {
	return func(s *domain.Schedule) {
		s.CreatedAt = t
		s.UpdatedAt = t
	}
}

// NewTestSchedule returns a day-shaped schedule with a fresh ID.
func NewTestSchedule(name string, opts ...ScheduleOption) *domain.Schedule {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Schedule{
		ID:         uuid.New().String(),
		Name:       name,
		Expression: "0 2 * * *",
		Shape:      cronexpr.ShapeDay.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
