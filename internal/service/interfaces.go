package service

import (
	"context"
	"io"

	"github.com/alexanderramin/cronpick/internal/domain"
	"github.com/alexanderramin/cronpick/internal/importer"
)

// SaveResult reports whether Save created a new schedule or replaced the
// expression of an existing one.
type SaveResult struct {
	Schedule *domain.Schedule
	Created  bool
}

type ScheduleService interface {
	Save(ctx context.Context, name, expression string) (*SaveResult, error)
	Get(ctx context.Context, name string) (*domain.Schedule, error)
	List(ctx context.Context, shape string) ([]*domain.Schedule, error)
	Delete(ctx context.Context, name string) error
	Export(ctx context.Context, w io.Writer) (int, error)
}

// ImportResult holds the outcome of a schedule import.
type ImportResult struct {
	Created int
	Updated int
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string, replace bool) (*ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.ScheduleDocument, replace bool) (*ImportResult, error)
}
