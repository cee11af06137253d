// Package randutil centralises how random sources are built so that every
// consumer can be handed either a reproducible or a wall-clock seeded source.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The two 64-bit seeds required by rand/v2 are derived with splitmix so that
// nearby seeds still produce unrelated sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromClock seeds a source from the clock's current time and returns the
// seed alongside it so callers can log it for replay.
func NewFromClock(clock quartz.Clock) (*rand.Rand, int64) {
	seed := clock.Now().UnixNano()
	return New(seed), seed
}

// Resolve returns a source for seed when it is set, otherwise one seeded from clock.
func Resolve(seed *int64, clock quartz.Clock) (*rand.Rand, int64) {
	if seed != nil {
		return New(*seed), *seed
	}
	return NewFromClock(clock)
}

// Derive returns the seed for the n-th child stream of a parent seed.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
