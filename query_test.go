package manifest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains_MatchesDeclaredServiceType(t *testing.T) {
	c := New()
	require.NoError(t, AddIfAbsent[testLogger, *consoleLogger](c, Singleton))

	assert.True(t, Contains[testLogger](c))
	assert.False(t, Contains[testStore](c))

	// Contains matches the declared service type, not the implementation.
	assert.False(t, Contains[*consoleLogger](c))
}

func TestContains_NilArgumentsPanic(t *testing.T) {
	assert.Panics(t, func() {
		Contains[testLogger](nil)
	})
	assert.Panics(t, func() {
		ContainsType(New(), nil)
	})
}

func TestFind_FirstRegisteredWins(t *testing.T) {
	c := New()
	require.NoError(t, Apply(c,
		Describe[testLogger, *consoleLogger](Singleton),
		Describe[testLogger, *fileLogger](Transient),
	))

	d, ok := Find[testLogger](c)
	require.True(t, ok)
	assert.Equal(t, TypeOf[*consoleLogger](), d.Implementation())
}

func TestFind_NotFound(t *testing.T) {
	c := New()

	d, ok := Find[testLogger](c)
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestImplementedBy_MatchesConcreteCapability(t *testing.T) {
	c := New()
	require.NoError(t, AddIfAbsent[testLogger, *consoleLogger](c, Singleton))

	// *consoleLogger is a fmt.Stringer even though nothing is declared
	// under that service type.
	assert.True(t, ImplementedBy[fmt.Stringer](c))
	assert.False(t, Contains[fmt.Stringer](c))

	// *consoleLogger is not a store.
	assert.False(t, ImplementedBy[testStore](c))
}

func TestImplementedBy_IgnoresFactoryDescriptors(t *testing.T) {
	c := New()
	require.NoError(t, c.Append(DescribeFactory[testLogger](func(Provider) (testLogger, error) {
		return &consoleLogger{}, nil
	}, Transient)))

	// The factory's product type is not statically known.
	assert.False(t, ImplementedBy[fmt.Stringer](c))
}

func TestQuery_ByService(t *testing.T) {
	c := New()
	require.NoError(t, Apply(c,
		Describe[testLogger, *consoleLogger](Singleton),
		Describe[testStore, *memStore](Scoped),
		Describe[testLogger, *fileLogger](Transient),
	))

	results := Query(c, DescriptorQuery{Service: TypeOf[testLogger]()})
	require.Len(t, results, 2)
	assert.Equal(t, TypeOf[*consoleLogger](), results[0].Implementation())
	assert.Equal(t, TypeOf[*fileLogger](), results[1].Implementation())
}

func TestQuery_ByLifetime(t *testing.T) {
	c := New()
	require.NoError(t, Apply(c,
		Describe[testLogger, *consoleLogger](Singleton),
		Describe[testStore, *memStore](Scoped),
		Describe[testLogger, *fileLogger](Transient),
	))

	results := Query(c, DescriptorQuery{Lifetime: Scoped})
	require.Len(t, results, 1)
	assert.Equal(t, TypeOf[testStore](), results[0].Service())
}

func TestQuery_ByPredicate(t *testing.T) {
	c := New()
	require.NoError(t, Apply(c,
		Describe[testLogger, *consoleLogger](Singleton),
		Describe[testLogger, *fileLogger](Transient),
	))

	results := Query(c, DescriptorQuery{
		Predicate: func(d *Descriptor) bool {
			return d.Implementation() == TypeOf[*fileLogger]()
		},
	})
	require.Len(t, results, 1)
	assert.Equal(t, Transient, results[0].Lifetime())
}

func TestQuery_EmptyQueryReturnsAll(t *testing.T) {
	c := New()
	require.NoError(t, Apply(c,
		Describe[testLogger, *consoleLogger](Singleton),
		Describe[testStore, *memStore](Scoped),
	))

	assert.Len(t, Query(c, DescriptorQuery{}), 2)
	assert.Equal(t, 2, QueryCount(c, DescriptorQuery{}))
}
