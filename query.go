package manifest

import "reflect"

// Contains reports whether any descriptor declares service type T.
// It matches on the declared service type only; use ImplementedBy to match
// on concrete implementation capability.
//
// Panics on a nil collection.
//
// Example:
//
//	if manifest.Contains[Logger](c) {
//	    // a Logger registration exists
//	}
func Contains[T any](c Collection) bool {
	return ContainsType(c, TypeOf[T]())
}

// ContainsType reports whether any descriptor declares the given service
// type. Panics on a nil collection or nil service type.
func ContainsType(c Collection, service reflect.Type) bool {
	mustCollection(c)
	mustService(service)
	for _, d := range c.Descriptors() {
		if d.Service() == service {
			return true
		}
	}
	return false
}

// Find returns the first descriptor (in insertion order) declaring service
// type T, and whether one was found. Panics on a nil collection.
func Find[T any](c Collection) (*Descriptor, bool) {
	return FindType(c, TypeOf[T]())
}

// FindType returns the first descriptor declaring the given service type.
// Panics on a nil collection or nil service type.
func FindType(c Collection, service reflect.Type) (*Descriptor, bool) {
	mustCollection(c)
	mustService(service)
	for _, d := range c.Descriptors() {
		if d.Service() == service {
			return d, true
		}
	}
	return nil, false
}

// ImplementedBy reports whether any descriptor's concrete implementation
// type satisfies T, regardless of the service type it was declared under.
// Factory-backed descriptors carry no statically known implementation type
// and never match. Panics on a nil collection.
//
// Example:
//
//	// registered as Logger, backed by *ConsoleLogger
//	manifest.ImplementedBy[io.Closer](c) // true if *ConsoleLogger is a Closer
func ImplementedBy[T any](c Collection) bool {
	return ImplementedByType(c, TypeOf[T]())
}

// ImplementedByType reports whether any descriptor's concrete
// implementation type satisfies the given type. Panics on a nil collection
// or nil type.
func ImplementedByType(c Collection, t reflect.Type) bool {
	mustCollection(c)
	mustService(t)
	for _, d := range c.Descriptors() {
		impl := d.Implementation()
		if impl != nil && satisfies(impl, t) {
			return true
		}
	}
	return false
}

// DescriptorQuery defines criteria for filtering descriptors. Zero-valued
// fields match everything.
type DescriptorQuery struct {
	// Service filters by declared service type. nil matches all services.
	Service reflect.Type

	// Lifetime filters by lifetime. The zero value matches all lifetimes.
	Lifetime Lifetime

	// Predicate filters by an arbitrary condition. nil matches all
	// descriptors.
	Predicate func(*Descriptor) bool
}

// Query returns the descriptors matching all criteria, in insertion order.
// Panics on a nil collection.
//
// Example:
//
//	// every transient Logger registration
//	results := manifest.Query(c, manifest.DescriptorQuery{
//	    Service:  manifest.TypeOf[Logger](),
//	    Lifetime: manifest.Transient,
//	})
func Query(c Collection, query DescriptorQuery) []*Descriptor {
	mustCollection(c)
	var results []*Descriptor
	for _, d := range c.Descriptors() {
		if query.Service != nil && d.Service() != query.Service {
			continue
		}
		if query.Lifetime != 0 && d.Lifetime() != query.Lifetime {
			continue
		}
		if query.Predicate != nil && !query.Predicate(d) {
			continue
		}
		results = append(results, d)
	}
	return results
}

// QueryCount returns the number of descriptors matching the query.
func QueryCount(c Collection, query DescriptorQuery) int {
	return len(Query(c, query))
}

// mustCollection panics when c is nil. Value-returning queries have no
// error channel; a nil collection is a programmer error.
func mustCollection(c Collection) {
	if c == nil {
		panic("manifest: collection cannot be nil")
	}
}

// mustService panics when the service type is nil.
func mustService(service reflect.Type) {
	if service == nil {
		panic("manifest: service type cannot be nil")
	}
}
