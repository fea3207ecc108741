package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		expression  TEXT NOT NULL,
		shape       TEXT NOT NULL
		            CHECK(shape IN ('minute','hour','day','week','month','year')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedules_shape ON schedules(shape)`,
}
