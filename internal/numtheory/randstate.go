package numtheory

import (
	"math/big"
	"math/rand"
)

// RandState is the randomness source consumed by primality testing and prime
// generation. A fixed seed yields a fully deterministic sequence.
//
// It is not safe for concurrent use; construct one per operation.
type RandState struct {
	rng *rand.Rand
}

// NewRandState returns a RandState seeded with seed.
func NewRandState(seed uint64) *RandState {
	return &RandState{rng: rand.New(rand.NewSource(int64(seed)))}
}

// UniformBelow returns a uniformly random integer in [0, max). max must be
// positive.
func (rs *RandState) UniformBelow(max *big.Int) *big.Int {
	return new(big.Int).Rand(rs.rng, max)
}

// UniformBits returns a uniformly random integer in [0, 2^bits).
func (rs *RandState) UniformBits(bits uint) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Rand(rs.rng, max)
}

// Intn returns a uniformly random int in [0, n). n must be positive.
func (rs *RandState) Intn(n int) int {
	return rs.rng.Intn(n)
}
