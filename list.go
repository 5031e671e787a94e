package manifest

import "slices"

// List is a reference Collection backed by an ordered slice. It stores
// registrations and nothing more: it builds no providers and resolves no
// instances. Hosts with their own registry adapt it to Collection instead.
//
// List is not synchronized; it assumes a single logical owner.
type List struct {
	descriptors []*Descriptor
	readOnly    bool
}

// NewList creates an empty, writable List.
func NewList() *List {
	return &List{}
}

// Descriptors returns an ordered snapshot of the current registrations.
func (l *List) Descriptors() []*Descriptor {
	return slices.Clone(l.descriptors)
}

// Append adds a descriptor at the end of the list.
func (l *List) Append(d *Descriptor) error {
	if d == nil {
		return errNilArg("append", ErrNilDescriptor)
	}
	if l.readOnly {
		return errReadOnly("append")
	}
	l.descriptors = append(l.descriptors, d)
	return nil
}

// Remove deletes the given descriptor, matched by identity. Removing a
// descriptor that is not present is a no-op.
func (l *List) Remove(d *Descriptor) error {
	if d == nil {
		return errNilArg("remove", ErrNilDescriptor)
	}
	if l.readOnly {
		return errReadOnly("remove")
	}
	for i, existing := range l.descriptors {
		if existing == d {
			l.descriptors = slices.Delete(l.descriptors, i, i+1)
			return nil
		}
	}
	return nil
}

// ReadOnly reports whether the list rejects mutation.
func (l *List) ReadOnly() bool {
	return l.readOnly
}

// Freeze marks the list read-only. Hosts typically freeze once a provider
// has been built from the registrations. Freezing is irreversible.
func (l *List) Freeze() {
	l.readOnly = true
}

// Len returns the number of registrations.
func (l *List) Len() int {
	return len(l.descriptors)
}
