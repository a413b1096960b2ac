package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Z float32 }
type velocity struct{ X, Z float32 }
type tag struct{}

func TestStoreSwapRemoveKeepsIndex(t *testing.T) {
	s := NewStore[int]()
	a, b, c := newEntity(0, 1), newEntity(1, 1), newEntity(2, 1)
	s.Set(a, 10)
	s.Set(b, 20)
	s.Set(c, 30)

	require.True(t, s.Remove(a))
	assert.False(t, s.Has(a))
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get(c)
	require.True(t, ok)
	assert.Equal(t, 30, v)
	v, ok = s.Get(b)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	assert.False(t, s.Remove(a), "second remove is a no-op")
}

func TestStoreGenerationCheck(t *testing.T) {
	s := NewStore[string]()
	old := newEntity(3, 1)
	s.Set(old, "old")

	reused := newEntity(3, 2)
	_, ok := s.Get(reused)
	assert.False(t, ok, "a different generation in the same slot does not resolve")

	s.Set(reused, "new")
	_, ok = s.Get(old)
	assert.False(t, ok)
	v, _ := s.Get(reused)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, s.Len())
}

func TestStorePtrMutatesInPlace(t *testing.T) {
	s := NewStore[position]()
	e := newEntity(0, 1)
	s.Set(e, position{1, 2})
	s.Ptr(e).X = 5

	v, _ := s.Get(e)
	assert.Equal(t, float32(5), v.X)
	assert.Nil(t, s.Ptr(newEntity(9, 1)))
}

func TestEntityAllocatorRecycles(t *testing.T) {
	var a entityAllocator
	e1 := a.allocate()
	require.True(t, a.release(e1))
	e2 := a.allocate()

	assert.Equal(t, e1.Index(), e2.Index())
	assert.NotEqual(t, e1.Generation(), e2.Generation())
	assert.False(t, a.isAlive(e1))
	assert.True(t, a.isAlive(e2))
	assert.False(t, a.release(e1))
	assert.False(t, a.isAlive(NoEntity))
}
