package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestRotateXZ(t *testing.T) {
	v := RotateXZ(UnitX, 0)
	assert.InDelta(t, 1, v.X, eps)
	assert.InDelta(t, 0, v.Z, eps)

	v = RotateXZ(UnitX, Tau/4)
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, 1, v.Z, eps)

	v = RotateXZ(UnitX, Tau/2)
	assert.InDelta(t, -1, v.X, eps)
	assert.InDelta(t, 0, v.Z, eps)
}

func TestNormalizedZeroSafe(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
	n := Vec3{3, 0, 4}.Normalized()
	assert.InDelta(t, 1, n.Mag(), eps)
}

func TestFloorNegative(t *testing.T) {
	assert.Equal(t, Vec2{-2, 1}, Vec2{-1.5, 1.9}.Floor())
	assert.Equal(t, Vec3{-1, 0, 2}, Vec3{-0.1, 0.5, 2.99}.Floor())
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		u := r.Float32Unit()
		assert.GreaterOrEqual(t, u, float32(0))
		assert.Less(t, u, float32(1))

		n := r.Float32NDC()
		assert.GreaterOrEqual(t, n, float32(-1))
		assert.Less(t, n, float32(1))
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
	assert.NotZero(t, NewFastRand(0).Next(), "zero seed must not lock the generator")
}
