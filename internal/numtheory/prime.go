package numtheory

import (
	"fmt"
	"math/big"

	"sscrypt/internal/domain"
)

// makePrimeTriesPerBit caps rejection sampling in MakePrime. By the prime
// number theorem an odd candidate of b bits is prime with probability about
// 2/(b·ln 2), so the cap leaves two orders of magnitude of headroom.
const makePrimeTriesPerBit = 100

// IsPrime applies the Miller–Rabin primality test with the given number of
// random bases. It returns false for 1 and even numbers above 2, and true
// for 2 and 3 without sampling.
//
// A true result means n is prime with probability at least 1 − 4^-iterations.
func IsPrime(rs *RandState, n *big.Int, iterations uint) bool {
	switch {
	case n.Cmp(one) <= 0:
		return false
	case n.BitLen() == 2: // 2 and 3
		return true
	case n.Bit(0) == 0:
		return false
	}

	// Write n−1 = 2^s · r with r odd.
	nMinusOne := new(big.Int).Sub(n, one)
	r := new(big.Int).Set(nMinusOne)
	s := uint(0)
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
		s++
	}

	two := big.NewInt(2)
	baseRange := new(big.Int).Sub(n, big.NewInt(3)) // bases drawn from [2, n−2]

	for i := uint(0); i < iterations; i++ {
		base := rs.UniformBelow(baseRange)
		base.Add(base, two)

		witness := PowMod(base, r, n)
		if witness.Cmp(one) == 0 || witness.Cmp(nMinusOne) == 0 {
			continue
		}

		for j := uint(1); j <= s-1 && witness.Cmp(nMinusOne) != 0; j++ {
			witness = PowMod(witness, two, n)
			if witness.Cmp(one) == 0 {
				return false
			}
		}
		if witness.Cmp(nMinusOne) != 0 {
			return false
		}
	}
	return true
}

// MakePrime generates a random prime of exactly the given bit length by
// rejection sampling: candidates are drawn uniformly from
// [2^(bits−1), 2^bits) and tested with IsPrime.
//
// Sampling is capped; on pathological parameters MakePrime returns
// domain.ErrGenerationFailed instead of looping forever.
func MakePrime(rs *RandState, bits, iterations uint) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bit length %d below minimum 2", domain.ErrGenerationFailed, bits)
	}

	lowerBound := new(big.Int).Lsh(one, bits-1)
	maxTries := makePrimeTriesPerBit * int(bits)

	for try := 0; try < maxTries; try++ {
		candidate := rs.UniformBits(bits - 1)
		candidate.Add(candidate, lowerBound)
		if IsPrime(rs, candidate, iterations) {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime after %d candidates", domain.ErrGenerationFailed, bits, maxTries)
}
