package manifest

import "fmt"

// Lifetime governs how long a resolved instance is reused by the host
// container.
type Lifetime int

const (
	// Singleton instances are created once and shared for the lifetime of
	// the provider.
	Singleton Lifetime = iota + 1

	// Scoped instances are shared within a scope and isolated between
	// scopes.
	Scoped

	// Transient instances are created on every resolution.
	Transient
)

// String returns the lowercase name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("lifetime(%d)", int(l))
	}
}

// valid reports whether l is one of the declared lifetimes.
func (l Lifetime) valid() bool {
	return l >= Singleton && l <= Transient
}

// ParseLifetime converts a lifetime name ("singleton", "scoped",
// "transient") to its Lifetime value.
func ParseLifetime(s string) (Lifetime, error) {
	switch s {
	case "singleton":
		return Singleton, nil
	case "scoped":
		return Scoped, nil
	case "transient":
		return Transient, nil
	default:
		return 0, fmt.Errorf("parse lifetime %q: %w", s, ErrInvalidLifetime)
	}
}
