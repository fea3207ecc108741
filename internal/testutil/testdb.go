package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/cronpick/internal/db"
	"github.com/alexanderramin/cronpick/internal/domain"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory database with the schedules schema applied.
// It is closed when the test ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedSchedules inserts each schedule row as-is, bypassing the repository
// and service layers.
func SeedSchedules(t testing.TB, conn db.DBTX, schedules ...*domain.Schedule) {
	t.Helper()
	const insert = `INSERT INTO schedules (id, name, expression, shape, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, s := range schedules {
		_, err := conn.ExecContext(context.Background(), insert,
			s.ID, s.Name, s.Expression, s.Shape,
			s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
		)
		require.NoError(t, err, "seeding schedule %q", s.Name)
	}
}
