package catalog

import (
	"math/rand/v2"
	"time"
)

// RandSource provides uniform random numbers for catalog jitter.
// This interface enables dependency injection for reproducible catalogs.
type RandSource interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// NewSeededRand returns a deterministic source; equal seeds give equal catalogs.
func NewSeededRand(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newTimeSeededRand() RandSource {
	return NewSeededRand(uint64(time.Now().UnixNano()))
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// NoJitter leaves every seller at its nominal figures.
var NoJitter RandSource = fixedRand(0.5)

// jitter scales base by a uniform factor in [1-pct, 1+pct).
func jitter(base, pct float64, rng RandSource) float64 {
	u := rng.Float64()*2 - 1
	return base * (1 + u*pct)
}
