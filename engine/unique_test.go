package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ N int }
type label struct{ S string }

func TestUniqueLifecycle(t *testing.T) {
	w := NewWorld()
	_, ok := Unique[counter](w)
	assert.False(t, ok)

	AddUnique(w, counter{N: 1})
	MustUniqueMut[counter](w).N++
	assert.Equal(t, 2, MustUnique[counter](w).N)

	assert.True(t, RemoveUnique[counter](w))
	assert.False(t, RemoveUnique[counter](w))
}

func TestMustUniquePanicsWhenMissing(t *testing.T) {
	w := NewWorld()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrMissingUnique))
	}()
	MustUnique[counter](w)
}

func TestClearUniquesKeeps(t *testing.T) {
	w := NewWorld()
	AddUnique(w, counter{})
	AddUnique(w, label{"keep"})

	ClearUniques(w, reflect.TypeFor[label]())
	assert.False(t, HasUnique[counter](w))
	assert.Equal(t, "keep", MustUnique[label](w).S)
}
