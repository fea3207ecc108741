package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/cronpick/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction returns Err from the
// FailOn-th ExecContext call, counting from 1. Reads are never failed, so a
// multi-schedule import can be broken after some rows were written.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Execs counts ExecContext calls seen by the last transaction.
	Execs int
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	u.Execs = 0
	return db.RunTx(ctx, tx, &failingExec{DBTX: tx, uow: u}, fn)
}

type failingExec struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.uow.Execs++
	if f.uow.Execs == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
