package sekai

import (
	"github.com/pkg/errors"
)

var (
	// ErrCapacityExhausted is the panic value cause when a counter or a
	// compressed block pointer would leave its representable range. It is a
	// hard ceiling, not a recoverable condition.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrDomainMismatch is returned when a query composes columns built over
	// different address-space capacities.
	ErrDomainMismatch = errors.New("column domains differ")

	// ErrNoRequiredTerm is returned when a query has only optional terms.
	ErrNoRequiredTerm = errors.New("query needs at least one required term")

	// ErrAliasedTerm is returned when the same column appears twice in one query.
	ErrAliasedTerm = errors.New("column appears more than once in query")

	// ErrNilColumn is returned when a query term wraps a nil column.
	ErrNilColumn = errors.New("nil column")

	// ErrAccessConflict is returned when a column is already borrowed in a way
	// that conflicts with the requested access.
	ErrAccessConflict = errors.New("conflicting column access")
)

// capacityPanic aborts the current operation with a wrapped
// ErrCapacityExhausted. Callers must invoke it before mutating any state.
func capacityPanic(format string, args ...any) {
	panic(errors.Wrapf(ErrCapacityExhausted, "sekai: "+format, args...))
}
