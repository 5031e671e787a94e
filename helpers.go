package manifest

import (
	"fmt"
	"reflect"
)

// All mutating helpers validate arguments first and check the read-only
// flag before touching the collection, so a rejected call always leaves the
// collection unmodified. The read-only check is applied uniformly,
// including by ReplaceAll and RemoveAllOf.

// AddIfAbsent appends a type-backed registration of S by I only when no
// descriptor for S exists yet. Calling it again for the same S is a no-op,
// so the first registration wins.
//
// Example:
//
//	err := manifest.AddIfAbsent[Logger, *ConsoleLogger](c, manifest.Singleton)
func AddIfAbsent[S, I any](c Collection, lifetime Lifetime) error {
	d, err := NewDescriptor(TypeOf[S](), TypeOf[I](), lifetime)
	if err != nil {
		return fmt.Errorf("add if absent: %w", err)
	}
	return AddDescriptorIfAbsent(c, d)
}

// AddDescriptorIfAbsent appends d only when no descriptor for d's service
// type exists yet.
func AddDescriptorIfAbsent(c Collection, d *Descriptor) error {
	if c == nil {
		return errNilArg("add if absent", ErrNilCollection)
	}
	if d == nil {
		return errNilArg("add if absent", ErrNilDescriptor)
	}
	if c.ReadOnly() {
		return errReadOnly("add if absent")
	}
	for _, existing := range c.Descriptors() {
		if existing.Service() == d.Service() {
			return nil
		}
	}
	return c.Append(d)
}

// AddOrReplace removes the first existing registration of S, if any, and
// appends a type-backed registration of S by I at the end of the sequence.
// At most one prior registration is displaced; with multi-bindings the
// remaining ones survive.
func AddOrReplace[S, I any](c Collection, lifetime Lifetime) error {
	d, err := NewDescriptor(TypeOf[S](), TypeOf[I](), lifetime)
	if err != nil {
		return fmt.Errorf("add or replace: %w", err)
	}
	return AddOrReplaceDescriptor(c, d)
}

// AddOrReplaceDescriptor removes the first existing descriptor for d's
// service type, if any, then appends d.
func AddOrReplaceDescriptor(c Collection, d *Descriptor) error {
	if c == nil {
		return errNilArg("add or replace", ErrNilCollection)
	}
	if d == nil {
		return errNilArg("add or replace", ErrNilDescriptor)
	}
	if c.ReadOnly() {
		return errReadOnly("add or replace")
	}
	for _, existing := range c.Descriptors() {
		if existing.Service() == d.Service() {
			if err := c.Remove(existing); err != nil {
				return fmt.Errorf("add or replace: %w", err)
			}
			break
		}
	}
	return c.Append(d)
}

// AddWhen appends d only when condition reports true. The condition is
// evaluated eagerly, exactly once, at call time.
func AddWhen(c Collection, condition func() bool, d *Descriptor) error {
	if c == nil {
		return errNilArg("add when", ErrNilCollection)
	}
	if condition == nil {
		return errNilArg("add when", ErrNilCondition)
	}
	if d == nil {
		return errNilArg("add when", ErrNilDescriptor)
	}
	if c.ReadOnly() {
		return errReadOnly("add when")
	}
	if !condition() {
		return nil
	}
	return c.Append(d)
}

// AddFactoryWhen appends a factory-backed registration of S only when
// condition reports true.
//
// Example:
//
//	err := manifest.AddFactoryWhen(c, cfg.Verbose, func(p manifest.Provider) (Logger, error) {
//	    return &DebugLogger{}, nil
//	}, manifest.Transient)
func AddFactoryWhen[S any](c Collection, condition func() bool, factory func(Provider) (S, error), lifetime Lifetime) error {
	if c == nil {
		return errNilArg("add factory when", ErrNilCollection)
	}
	if condition == nil {
		return errNilArg("add factory when", ErrNilCondition)
	}
	if factory == nil {
		return errNilArg("add factory when", ErrNilFactory)
	}
	wrapped := func(p Provider) (any, error) {
		return factory(p)
	}
	d, err := NewFactoryDescriptor(TypeOf[S](), wrapped, lifetime)
	if err != nil {
		return fmt.Errorf("add factory when: %w", err)
	}
	return AddWhen(c, condition, d)
}

// RemoveFirst removes the first registration of S, in insertion order.
// Removing from a collection with no matching registration is a no-op.
func RemoveFirst[T any](c Collection) error {
	return RemoveFirstType(c, TypeOf[T]())
}

// RemoveFirstType removes the first registration of the given service type.
func RemoveFirstType(c Collection, service reflect.Type) error {
	if c == nil {
		return errNilArg("remove first", ErrNilCollection)
	}
	if service == nil {
		return errNilArg("remove first", ErrNilService)
	}
	if c.ReadOnly() {
		return errReadOnly("remove first")
	}
	for _, d := range c.Descriptors() {
		if d.Service() == service {
			return c.Remove(d)
		}
	}
	return nil
}

// RemoveAll removes every registration whose service type is among the
// given types.
func RemoveAll(c Collection, services ...reflect.Type) error {
	if c == nil {
		return errNilArg("remove all", ErrNilCollection)
	}
	member := make(map[reflect.Type]struct{}, len(services))
	for _, s := range services {
		if s == nil {
			return errNilArg("remove all", ErrNilService)
		}
		member[s] = struct{}{}
	}
	if c.ReadOnly() {
		return errReadOnly("remove all")
	}
	for _, d := range c.Descriptors() {
		if _, ok := member[d.Service()]; ok {
			if err := c.Remove(d); err != nil {
				return fmt.Errorf("remove all: %w", err)
			}
		}
	}
	return nil
}

// RemoveAllOf removes every registration of S.
func RemoveAllOf[T any](c Collection) error {
	return RemoveAllOfType(c, TypeOf[T]())
}

// RemoveAllOfType removes every registration of the given service type.
func RemoveAllOfType(c Collection, service reflect.Type) error {
	if c == nil {
		return errNilArg("remove all of", ErrNilCollection)
	}
	if service == nil {
		return errNilArg("remove all of", ErrNilService)
	}
	return RemoveAll(c, service)
}

// RemoveWhere removes every registration for which predicate reports true.
// The predicate is evaluated against a snapshot taken before any removal,
// so removals cannot skip or double-visit descriptors. Descriptors the
// predicate rejects keep their relative order.
func RemoveWhere(c Collection, predicate func(*Descriptor) bool) error {
	if c == nil {
		return errNilArg("remove where", ErrNilCollection)
	}
	if predicate == nil {
		return errNilArg("remove where", ErrNilPredicate)
	}
	if c.ReadOnly() {
		return errReadOnly("remove where")
	}
	var doomed []*Descriptor
	for _, d := range c.Descriptors() {
		if predicate(d) {
			doomed = append(doomed, d)
		}
	}
	for _, d := range doomed {
		if err := c.Remove(d); err != nil {
			return fmt.Errorf("remove where: %w", err)
		}
	}
	return nil
}

// ReplaceAll substitutes I as the implementation of every registration of
// S. Each replacement keeps the lifetime of the descriptor it replaces, so
// multi-bindings with differing lifetimes keep them independently.
// Replacements are appended at the end of the sequence.
func ReplaceAll[S, I any](c Collection) error {
	return ReplaceAllType(c, TypeOf[S](), TypeOf[I]())
}

// ReplaceAllType substitutes the given implementation type into every
// registration of the given service type.
func ReplaceAllType(c Collection, service, implementation reflect.Type) error {
	if c == nil {
		return errNilArg("replace all", ErrNilCollection)
	}
	if service == nil {
		return errNilArg("replace all", ErrNilService)
	}
	if implementation == nil {
		return errNilArg("replace all", ErrNilImplementation)
	}
	if c.ReadOnly() {
		return errReadOnly("replace all")
	}
	for _, d := range c.Descriptors() {
		if d.Service() != service {
			continue
		}
		replacement, err := NewDescriptor(service, implementation, d.Lifetime())
		if err != nil {
			return fmt.Errorf("replace all: %w", err)
		}
		if err := c.Remove(d); err != nil {
			return fmt.Errorf("replace all: %w", err)
		}
		if err := c.Append(replacement); err != nil {
			return fmt.Errorf("replace all: %w", err)
		}
	}
	return nil
}

// ResolveTransient builds a throwaway provider from the collection and
// attempts to resolve an instance of T, reporting whether one was produced.
// The collection must implement ProviderBuilder; otherwise nothing is
// found.
//
// Every call rebuilds the provider, which instantiates the full dependency
// graph. Callers needing repeated lookups should build one provider through
// ProviderBuilder and hold it instead.
//
// Panics on a nil collection.
func ResolveTransient[T any](c Collection) (T, bool) {
	var zero T
	mustCollection(c)
	builder, ok := c.(ProviderBuilder)
	if !ok {
		return zero, false
	}
	provider, err := builder.BuildProvider()
	if err != nil {
		return zero, false
	}
	instance, err := provider.Resolve(TypeOf[T]())
	if err != nil {
		return zero, false
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolveTransient resolves T through a throwaway provider or panics.
// Use only during startup.
func MustResolveTransient[T any](c Collection) T {
	instance, ok := ResolveTransient[T](c)
	if !ok {
		panic(fmt.Sprintf("failed to resolve %s", TypeOf[T]()))
	}
	return instance
}
