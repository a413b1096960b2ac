package vmath

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// Tau is one full turn in radians
const Tau = float32(2 * math.Pi)

// --- Randomness ---

// fallbackSeed replaces a zero seed, xorshift never leaves the zero state
const fallbackSeed = 0x9E3779B97F4A7C15

// FastRand is a xorshift64 generator, one instance per world so draw order stays reproducible
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = fallbackSeed
	}
	return &FastRand{state: seed}
}

// NewEntropySeed reads a seed from the process entropy source
func NewEntropySeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fallbackSeed
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Uint32() uint32 {
	return uint32(r.Next() >> 32)
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float32Unit returns a value in [0, 1)
func (r *FastRand) Float32Unit() float32 {
	return float32(r.Next()>>40) / (1 << 24)
}

// Float32NDC returns a value in [-1, 1)
func (r *FastRand) Float32NDC() float32 {
	return r.Float32Unit()*2 - 1
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float32) bool {
	return r.Float32Unit() < p
}
