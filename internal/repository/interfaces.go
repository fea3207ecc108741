package repository

import (
	"context"

	"github.com/alexanderramin/cronpick/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	GetByName(ctx context.Context, name string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListByShape(ctx context.Context, shape string) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	Delete(ctx context.Context, id string) error
}
