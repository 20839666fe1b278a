package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a lookup, update or delete matched no row.
// Handlers translate it to 404.
var ErrNotFound = errors.New("record not found")

// ConstraintError wraps a database constraint violation with a message safe
// to show to the user. Handlers translate it to 400.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConstraint reports whether err is a ConstraintError.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

func notFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
}

// translatePQ maps the driver error codes worth a friendly message.
// 23505 = unique_violation, 23503 = foreign_key_violation,
// 22001 = string_data_right_truncation. Everything else is wrapped as-is.
// Every repository funnels writes through this, so the mapping cannot drift
// per entity.
func translatePQ(err error, resource string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return &ConstraintError{Message: fmt.Sprintf("%s already exists (duplicate id)", resource)}
		case "23503":
			return &ConstraintError{Message: fmt.Sprintf("%s references a missing record (foreign key %s)", resource, pqErr.Constraint)}
		case "22001":
			return &ConstraintError{Message: fmt.Sprintf("%s has a field longer than the column allows", resource)}
		}
	}
	return err
}
