package common

import "math/rand/v2"

// RNG is the randomness source shared by systems. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// NewRNG returns a seeded PCG generator. Equal seeds replay equal matches.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandRange draws uniformly from [min, max]. A reversed or empty range yields min.
func RandRange(rng RNG, min, max float64) float64 {
	if rng == nil || max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
