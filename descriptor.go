package manifest

import (
	"fmt"
	"reflect"
)

// Descriptor is a single service registration: a binding from a declared
// service type to either a concrete implementation type or a factory
// function, plus a lifetime. Descriptors are immutable once constructed;
// replacing a registration always means removing the old descriptor and
// inserting a new one.
type Descriptor struct {
	service        reflect.Type
	implementation reflect.Type
	factory        Factory
	lifetime       Lifetime
}

// Service returns the declared service type. Multiple descriptors for the
// same service type may coexist in a collection.
func (d *Descriptor) Service() reflect.Type {
	return d.service
}

// Implementation returns the concrete implementation type, or nil for a
// factory-backed descriptor.
func (d *Descriptor) Implementation() reflect.Type {
	return d.implementation
}

// Factory returns the factory function, or nil for a type-backed
// descriptor.
func (d *Descriptor) Factory() Factory {
	return d.factory
}

// Lifetime returns the descriptor's lifetime.
func (d *Descriptor) Lifetime() Lifetime {
	return d.lifetime
}

// String returns a human-readable representation of the descriptor.
func (d *Descriptor) String() string {
	impl := "factory"
	if d.implementation != nil {
		impl = d.implementation.String()
	}
	return fmt.Sprintf("%s => %s (%s)", d.service, impl, d.lifetime)
}

// NewDescriptor creates a type-backed descriptor binding service to
// implementation with the given lifetime.
func NewDescriptor(service, implementation reflect.Type, lifetime Lifetime) (*Descriptor, error) {
	if service == nil {
		return nil, errNilArg("new descriptor", ErrNilService)
	}
	if implementation == nil {
		return nil, errNilArg("new descriptor", ErrNilImplementation)
	}
	if !lifetime.valid() {
		return nil, errLifetime(lifetime)
	}
	if !satisfies(implementation, service) {
		return nil, errIncompatible(service, implementation)
	}
	return &Descriptor{
		service:        service,
		implementation: implementation,
		lifetime:       lifetime,
	}, nil
}

// NewFactoryDescriptor creates a factory-backed descriptor binding service
// to the given factory with the given lifetime.
func NewFactoryDescriptor(service reflect.Type, factory Factory, lifetime Lifetime) (*Descriptor, error) {
	if service == nil {
		return nil, errNilArg("new factory descriptor", ErrNilService)
	}
	if factory == nil {
		return nil, errNilArg("new factory descriptor", ErrNilFactory)
	}
	if !lifetime.valid() {
		return nil, errLifetime(lifetime)
	}
	return &Descriptor{
		service:  service,
		factory:  factory,
		lifetime: lifetime,
	}, nil
}

// Describe creates a type-backed descriptor binding service type S to
// implementation type I. The pairing is checked at construction; an I that
// cannot serve S panics, since the type arguments are fixed at the call
// site.
//
// Example:
//
//	d := manifest.Describe[Logger, *ConsoleLogger](manifest.Singleton)
func Describe[S, I any](lifetime Lifetime) *Descriptor {
	d, err := NewDescriptor(TypeOf[S](), TypeOf[I](), lifetime)
	if err != nil {
		panic(fmt.Sprintf("describe %s: %v", TypeOf[S](), err))
	}
	return d
}

// DescribeFactory creates a factory-backed descriptor for service type S.
// A nil factory or invalid lifetime panics.
//
// Example:
//
//	d := manifest.DescribeFactory[Logger](func(p manifest.Provider) (Logger, error) {
//	    return &ConsoleLogger{}, nil
//	}, manifest.Scoped)
func DescribeFactory[S any](factory func(Provider) (S, error), lifetime Lifetime) *Descriptor {
	if factory == nil {
		panic(fmt.Sprintf("describe factory %s: %v", TypeOf[S](), ErrNilFactory))
	}
	wrapped := func(p Provider) (any, error) {
		return factory(p)
	}
	d, err := NewFactoryDescriptor(TypeOf[S](), wrapped, lifetime)
	if err != nil {
		panic(fmt.Sprintf("describe factory %s: %v", TypeOf[S](), err))
	}
	return d
}

// DescribeInstance creates a singleton descriptor whose factory returns the
// given pre-built instance.
func DescribeInstance[S any](instance S) *Descriptor {
	return DescribeFactory[S](func(Provider) (S, error) {
		return instance, nil
	}, Singleton)
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf on a value,
// it yields interface types rather than their dynamic types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// satisfies reports whether an implementation type can serve the declared
// service type: interface satisfaction for interface services,
// assignability otherwise.
func satisfies(implementation, service reflect.Type) bool {
	if service.Kind() == reflect.Interface {
		return implementation.Implements(service)
	}
	return implementation.AssignableTo(service)
}
