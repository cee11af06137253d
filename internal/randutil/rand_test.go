package randutil

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 100 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for range 100 {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestResolve(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Unix(1800000000, 0))

	seed := int64(99)
	_, got := Resolve(&seed, clock)
	assert.Equal(t, int64(99), got)

	_, got = Resolve(nil, clock)
	assert.Equal(t, time.Unix(1800000000, 0).UnixNano(), got)
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(5, 3), Derive(5, 3))
	assert.NotEqual(t, Derive(5, 0), Derive(5, 1))
}
