package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/9novikoff/TaskManagementSystem/internal/store"
)

// PostgreSQL error codes.
const uniqueViolationCode = "23505"

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// violatedConstraint returns the name of the violated constraint, or the
// empty string if the error is not a unique violation.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName
	}
	return ""
}

// mapError wraps a driver error so the driver type never crosses the store
// boundary. Sentinel errors pass through unchanged.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) || store.IsDuplicateError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
