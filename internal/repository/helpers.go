package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// parseTime parses an RFC3339 column value, returning the zero time if the
// value fails to parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// requireAffected returns ErrNotFound when an UPDATE or DELETE matched no rows.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
