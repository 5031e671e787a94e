// Package manifest provides convenience helpers over an ordered collection
// of service registrations owned by a host dependency-injection container.
//
// The package does not implement a container. It defines the minimal
// Collection contract a host registry must satisfy (enumerate, append,
// remove, report read-only state) and a set of free functions that check,
// add, replace, and remove registrations through that contract. Resolution
// is delegated to the host through the ProviderBuilder capability.
package manifest

import "reflect"

// Factory creates a service instance using the given provider to resolve
// dependencies.
type Factory func(Provider) (any, error)

// Collection is an ordered, mutable sequence of service descriptors.
// The host container owns the collection; helpers never retain it across
// calls. Insertion order is significant: singular lookups return the first
// match.
//
// Collection provides no synchronization. Concurrent mutation is the
// caller's responsibility.
type Collection interface {
	// Descriptors returns an ordered snapshot of the current registrations.
	// Mutating the collection does not affect a previously taken snapshot.
	Descriptors() []*Descriptor

	// Append adds a descriptor at the end of the sequence.
	// Returns ErrReadOnly when the collection is read-only.
	Append(d *Descriptor) error

	// Remove deletes the given descriptor, matched by identity.
	// Removing a descriptor that is not present is a no-op.
	// Returns ErrReadOnly when the collection is read-only.
	Remove(d *Descriptor) error

	// ReadOnly reports whether the collection rejects mutation.
	ReadOnly() bool
}

// Provider resolves service instances from a fixed set of registrations.
type Provider interface {
	// Resolve produces an instance of the requested service type.
	Resolve(service reflect.Type) (any, error)
}

// ProviderBuilder is the optional capability of a Collection that can build
// a resolver from its current registrations. Helpers discover it by type
// assertion; collections that cannot build providers simply never resolve.
type ProviderBuilder interface {
	// BuildProvider constructs a provider from the current registrations.
	// Building instantiates the dependency graph and is expensive; callers
	// needing repeated lookups should build once and hold the result.
	BuildProvider() (Provider, error)
}

// New creates an empty, writable List.
func New() *List {
	return NewList()
}
