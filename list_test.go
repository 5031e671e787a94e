package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AppendKeepsInsertionOrder(t *testing.T) {
	l := NewList()

	first := Describe[testLogger, *consoleLogger](Singleton)
	second := Describe[testStore, *memStore](Scoped)
	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	ds := l.Descriptors()
	require.Len(t, ds, 2)
	assert.Same(t, first, ds[0])
	assert.Same(t, second, ds[1])
}

func TestList_AppendNil(t *testing.T) {
	l := NewList()

	err := l.Append(nil)
	assert.ErrorIs(t, err, ErrNilDescriptor)
}

func TestList_RemoveMatchesByIdentity(t *testing.T) {
	l := NewList()

	// Two equivalent but distinct descriptors for the same binding.
	first := Describe[testLogger, *consoleLogger](Singleton)
	second := Describe[testLogger, *consoleLogger](Singleton)
	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	require.NoError(t, l.Remove(first))

	ds := l.Descriptors()
	require.Len(t, ds, 1)
	assert.Same(t, second, ds[0])
}

func TestList_RemoveAbsentIsNoOp(t *testing.T) {
	l := NewList()
	require.NoError(t, l.Append(Describe[testLogger, *consoleLogger](Singleton)))

	require.NoError(t, l.Remove(Describe[testStore, *memStore](Scoped)))
	assert.Equal(t, 1, l.Len())
}

func TestList_DescriptorsIsSnapshot(t *testing.T) {
	l := NewList()
	d := Describe[testLogger, *consoleLogger](Singleton)
	require.NoError(t, l.Append(d))

	snapshot := l.Descriptors()
	require.NoError(t, l.Remove(d))

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 0, l.Len())
}

func TestList_Freeze(t *testing.T) {
	l := NewList()
	d := Describe[testLogger, *consoleLogger](Singleton)
	require.NoError(t, l.Append(d))

	assert.False(t, l.ReadOnly())
	l.Freeze()
	assert.True(t, l.ReadOnly())

	assert.ErrorIs(t, l.Append(Describe[testStore, *memStore](Scoped)), ErrReadOnly)
	assert.ErrorIs(t, l.Remove(d), ErrReadOnly)
	assert.Equal(t, 1, l.Len())
}

func TestNew_ReturnsWritableList(t *testing.T) {
	c := New()

	assert.False(t, c.ReadOnly())
	assert.Equal(t, 0, c.Len())
}
