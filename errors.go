package manifest

import (
	"errors"
	"fmt"
	"reflect"
)

// Invalid-argument sentinels. A required argument was nil or absent; the
// failure is surfaced immediately and never recovered internally.
var (
	// ErrNilCollection is returned when a nil collection is passed to a
	// mutating helper.
	ErrNilCollection = errors.New("collection cannot be nil")

	// ErrNilService is returned when a nil service type is passed.
	ErrNilService = errors.New("service type cannot be nil")

	// ErrNilImplementation is returned when a nil implementation type is
	// passed.
	ErrNilImplementation = errors.New("implementation type cannot be nil")

	// ErrNilDescriptor is returned when a nil descriptor is passed.
	ErrNilDescriptor = errors.New("descriptor cannot be nil")

	// ErrNilFactory is returned when a nil factory function is passed.
	ErrNilFactory = errors.New("factory cannot be nil")

	// ErrNilPredicate is returned when a nil predicate is passed to
	// RemoveWhere.
	ErrNilPredicate = errors.New("predicate cannot be nil")

	// ErrNilCondition is returned when a nil condition is passed to
	// AddWhen.
	ErrNilCondition = errors.New("condition cannot be nil")

	// ErrInvalidLifetime is returned for lifetime values outside
	// Singleton, Scoped, and Transient.
	ErrInvalidLifetime = errors.New("invalid lifetime")

	// ErrIncompatibleImplementation is returned when an implementation
	// type does not satisfy the declared service type.
	ErrIncompatibleImplementation = errors.New("implementation does not satisfy service type")
)

// ErrReadOnly is the invalid-state sentinel: mutation was requested against
// a read-only collection. The collection is left unmodified.
var ErrReadOnly = errors.New("collection is read-only")

// errReadOnly wraps ErrReadOnly with the rejected operation.
func errReadOnly(op string) error {
	return fmt.Errorf("%s: %w", op, ErrReadOnly)
}

// errNilArg wraps an invalid-argument sentinel with the failing operation.
func errNilArg(op string, sentinel error) error {
	return fmt.Errorf("%s: %w", op, sentinel)
}

// errIncompatible reports an implementation that cannot serve the declared
// service type.
func errIncompatible(service, implementation reflect.Type) error {
	return fmt.Errorf("%s as %s: %w", implementation, service, ErrIncompatibleImplementation)
}

// errLifetime reports an out-of-range lifetime value.
func errLifetime(lifetime Lifetime) error {
	return fmt.Errorf("%s: %w", lifetime, ErrInvalidLifetime)
}
