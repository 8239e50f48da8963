// Package rng provides the injectable randomness source for the duel engine.
//
// Every probabilistic decision in a duel (effect chances, variance rolls,
// tie-breaking between equal-priority candidates) routes through a Roller so
// that a duel played from the same seed is fully replayable.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Roller is the source of randomness for a single duel.
type Roller interface {
	// Chance rolls a percentage check and reports whether it passed.
	// percent is clamped to [0, 100]; Chance(100) is always true and
	// Chance(0) is always false.
	Chance(percent int) bool

	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int

	// Roll returns a uniform value in [0.0, 1.0).
	Roll() float64
}

type source struct {
	rng *rand.Rand
}

// New returns a Roller seeded with the provided seed.
//
// # Determinism
//
// Two Rollers created with the same seed produce identical call-for-call
// results. The engine never consults any other randomness source.
func New(seed int64) Roller {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

func (s *source) Chance(percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return s.rng.Intn(100) < percent
}

func (s *source) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *source) Roll() float64 {
	return s.rng.Float64()
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
