package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cronpick/internal/db"
	"github.com/alexanderramin/cronpick/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const scheduleColumns = `id, name, expression, shape, created_at, updated_at`

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (` + scheduleColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Expression,
		s.Shape,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("schedule %q: %w", s.Name, ErrDuplicateName)
		}
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`
	return r.scanSchedule(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteScheduleRepo) GetByName(ctx context.Context, name string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE name = ?`
	return r.scanSchedule(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY name`
	return r.query(ctx, query)
}

func (r *SQLiteScheduleRepo) ListByShape(ctx context.Context, shape string) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE shape = ? ORDER BY name`
	return r.query(ctx, query, shape)
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	query := `UPDATE schedules SET name = ?, expression = ?, shape = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Expression,
		s.Shape,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("schedule %q: %w", s.Name, ErrDuplicateName)
		}
		return fmt.Errorf("updating schedule: %w", err)
	}
	return requireAffected(res, "schedule")
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return requireAffected(res, "schedule")
}

func (r *SQLiteScheduleRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := scanScheduleFields(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return schedules, nil
}

// scanSchedule scans a single schedule row from a *sql.Row.
func (r *SQLiteScheduleRepo) scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	s, err := scanScheduleFields(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func scanScheduleFields(scan func(dest ...any) error) (*domain.Schedule, error) {
	var s domain.Schedule
	var createdAtStr, updatedAtStr string
	if err := scan(&s.ID, &s.Name, &s.Expression, &s.Shape, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	s.CreatedAt = parseTime(createdAtStr)
	s.UpdatedAt = parseTime(updatedAtStr)
	return &s, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
