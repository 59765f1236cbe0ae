package store

import (
	"context"
	"database/sql"
)

// DBTX is the common interface implemented by both *sql.DB and *sql.Tx.
// Store implementations accept it so the caller decides the execution scope.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
