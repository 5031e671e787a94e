package manifest

import "fmt"

// Apply appends multiple descriptors in a single call, in the given order.
// Returns the first error encountered; descriptors appended before the
// failure stay in the collection.
//
// Example:
//
//	err := manifest.Apply(c,
//	    manifest.Describe[Logger, *ConsoleLogger](manifest.Singleton),
//	    manifest.Describe[Store, *MemStore](manifest.Scoped),
//	    manifest.DescribeInstance(cfg),
//	)
func Apply(c Collection, descriptors ...*Descriptor) error {
	if c == nil {
		return errNilArg("apply", ErrNilCollection)
	}
	if c.ReadOnly() {
		return errReadOnly("apply")
	}
	for _, d := range descriptors {
		if d == nil {
			return errNilArg("apply", ErrNilDescriptor)
		}
		if err := c.Append(d); err != nil {
			return fmt.Errorf("apply %s: %w", d, err)
		}
	}
	return nil
}
