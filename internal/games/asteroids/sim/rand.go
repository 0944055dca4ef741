// Package sim contains the asteroids simulation: entity generators, motion,
// collision resolution and the menu/playing/gameover state machine.
// It has no platform dependencies; callers own the frame loop and feed
// Tick with an explicit State and Input.
package sim

import (
	"math"
	"math/rand"
)

// Rand is the source of randomness used by the generators.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// angle returns a uniform direction in [0, 2pi).
func angle(rng Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// jitter returns base + Intn(spread), treating a non-positive spread as zero.
func jitter(rng Rand, base, spread int) int {
	if spread <= 0 {
		return base
	}
	return base + rng.Intn(spread)
}
