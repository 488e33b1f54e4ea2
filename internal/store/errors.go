package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the database cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

const (
	sqlStateUniqueViolation = "23505"
	sqlClassConnection      = "08"
)

// constraintFields maps unique constraint names to the field they guard.
var constraintFields = map[string]string{
	"users_name_key":      "name",
	"users_email_key":     "email",
	"equipment_id_no_key": "id_no",
}

// DuplicateKeyError is returned when a write would break a uniqueness rule.
type DuplicateKeyError struct {
	Field      string
	Constraint string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate key"
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

// classify turns driver errors into the store's error kinds. op names the
// failed operation in wrapped errors.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	code, constraint := pgErrorDetails(err)
	switch {
	case code == sqlStateUniqueViolation:
		return &DuplicateKeyError{Field: constraintFields[constraint], Constraint: constraint}
	case strings.HasPrefix(code, sqlClassConnection), isConnectionError(err):
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func pgErrorDetails(err error) (code, constraint string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
