package manifest

// Hook intercepts collection mutations. Hooks can be used for logging,
// auditing, or enforcing registration policy in tests.
type Hook interface {
	// BeforeAppend is called before a descriptor is appended.
	// Return an error to abort the append.
	BeforeAppend(d *Descriptor) error

	// AfterAppend is called after a descriptor was appended.
	AfterAppend(d *Descriptor)

	// BeforeRemove is called before a descriptor is removed.
	// Return an error to abort the removal.
	BeforeRemove(d *Descriptor) error

	// AfterRemove is called after a descriptor was removed.
	AfterRemove(d *Descriptor)
}

// FuncHook wraps functions as a Hook. Nil fields are skipped.
type FuncHook struct {
	BeforeAppendFunc func(d *Descriptor) error
	AfterAppendFunc  func(d *Descriptor)
	BeforeRemoveFunc func(d *Descriptor) error
	AfterRemoveFunc  func(d *Descriptor)
}

// BeforeAppend implements Hook.
func (f *FuncHook) BeforeAppend(d *Descriptor) error {
	if f.BeforeAppendFunc != nil {
		return f.BeforeAppendFunc(d)
	}
	return nil
}

// AfterAppend implements Hook.
func (f *FuncHook) AfterAppend(d *Descriptor) {
	if f.AfterAppendFunc != nil {
		f.AfterAppendFunc(d)
	}
}

// BeforeRemove implements Hook.
func (f *FuncHook) BeforeRemove(d *Descriptor) error {
	if f.BeforeRemoveFunc != nil {
		return f.BeforeRemoveFunc(d)
	}
	return nil
}

// AfterRemove implements Hook.
func (f *FuncHook) AfterRemove(d *Descriptor) {
	if f.AfterRemoveFunc != nil {
		f.AfterRemoveFunc(d)
	}
}

// observed decorates a Collection with mutation hooks. Reads delegate to
// the wrapped collection.
type observed struct {
	Collection
	hooks []Hook
}

// Observe wraps a collection so that every Append and Remove passes through
// the given hooks, in order. A before-hook error aborts the mutation;
// after-hooks run only for mutations the wrapped collection accepted.
//
// The wrapper exposes only the Collection contract. Capabilities of the
// wrapped value beyond it, such as ProviderBuilder, are not forwarded; keep
// a reference to the original when those are needed.
func Observe(c Collection, hooks ...Hook) Collection {
	mustCollection(c)
	return &observed{Collection: c, hooks: hooks}
}

// Append implements Collection.
func (o *observed) Append(d *Descriptor) error {
	for _, h := range o.hooks {
		if err := h.BeforeAppend(d); err != nil {
			return err
		}
	}
	if err := o.Collection.Append(d); err != nil {
		return err
	}
	for _, h := range o.hooks {
		h.AfterAppend(d)
	}
	return nil
}

// Remove implements Collection.
func (o *observed) Remove(d *Descriptor) error {
	for _, h := range o.hooks {
		if err := h.BeforeRemove(d); err != nil {
			return err
		}
	}
	if err := o.Collection.Remove(d); err != nil {
		return err
	}
	for _, h := range o.hooks {
		h.AfterRemove(d)
	}
	return nil
}
