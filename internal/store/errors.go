package store

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
)

// Error kinds.  Test with errors.Is.
var (
	// ErrUnavailable means the table does not exist yet: the schema has
	// not been provisioned.
	ErrUnavailable = errors.New("store: table not provisioned")

	// ErrNotFound means an update target does not exist.
	ErrNotFound = errors.New("store: row not found")

	// ErrForbidden means the principal's role may not perform the action.
	ErrForbidden = errors.New("store: forbidden")

	// ErrImmutable means the table has no update operation.
	ErrImmutable = errors.New("store: table is immutable")
)

// Error is a failed repository call.  Kind is one of the sentinel errors
// above, or nil for a plain backend failure; Err is the underlying cause.
type Error struct {
	Op    string
	Table string
	Kind  error
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
	case e.Kind != nil:
		return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Kind)
	}
	return fmt.Sprintf("store: %s %s failed", e.Op, e.Table)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the error kind so errors.Is(err, ErrUnavailable) works while
// Unwrap still reaches the driver error.
func (e *Error) Is(target error) bool { return e.Kind != nil && target == e.Kind }

// Result maps err to a metrics result label.
func Result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrUnavailable):
		return metrics.ResultUnavailable
	case errors.Is(err, ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrImmutable):
		return metrics.ResultForbidden
	}
	return metrics.ResultError
}

// isUnknownTable recognises MySQL/MariaDB error 1146 and Postgres 42P01
// "table does not exist" errors from the typed driver errors.
func isUnknownTable(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1146
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code == "42P01"
	}
	return false
}

// classify wraps a driver error into *Error with the right kind.
func classify(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	e := &Error{Op: op, Table: table, Err: err}
	if isUnknownTable(err) {
		e.Kind = ErrUnavailable
	}
	return e
}
