package ss

import (
	"fmt"
	"math/big"

	"sscrypt/internal/domain"
	"sscrypt/internal/numtheory"
)

const (
	// minTotalBits is the smallest modulus size for which the p/q bit split
	// leaves a valid bit budget for q. Below this, p can claim so much of the
	// modulus that totalBits − bitlen(p²) drops under 2.
	minTotalBits = 10

	// maxKeyPairTries caps the p/q compatibility retry loop.
	maxKeyPairTries = 100
)

// MakePublicKey generates the public key material (p, q, n = p²·q).
//
// p's bit length is drawn uniformly from [totalBits/5, 2·totalBits/5] and
// q gets the remaining budget, totalBits − bitlen(p²). A pair is rejected
// and regenerated from scratch whenever p equals q, q divides p−1, or p
// divides q−1: equal primes break decryption outright and either
// divisibility would leave the private exponent undefined. Due to
// integer truncation in the bit split, n's bit length can deviate slightly
// from totalBits.
func MakePublicKey(rs *numtheory.RandState, totalBits, iterations uint) (domain.KeyPair, error) {
	if totalBits < minTotalBits {
		return domain.KeyPair{}, fmt.Errorf("%w: modulus size %d below minimum %d bits",
			domain.ErrGenerationFailed, totalBits, minTotalBits)
	}

	minPBits := totalBits / 5
	maxPBits := 2 * totalBits / 5

	for try := 0; try < maxKeyPairTries; try++ {
		pBits := minPBits + uint(rs.Intn(int(maxPBits-minPBits+1)))
		p, err := numtheory.MakePrime(rs, pBits, iterations)
		if err != nil {
			return domain.KeyPair{}, err
		}

		pSquared := new(big.Int).Mul(p, p)
		qBits := int(totalBits) - pSquared.BitLen()
		if qBits < 2 {
			continue
		}
		q, err := numtheory.MakePrime(rs, uint(qBits), iterations)
		if err != nil {
			return domain.KeyPair{}, err
		}

		// Equal primes slip past both divisibility checks and yield a key
		// that decrypts to garbage; possible whenever the p and q bit
		// budgets coincide.
		if p.Cmp(q) == 0 {
			continue
		}

		pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
		qMinusOne := new(big.Int).Sub(q, big.NewInt(1))
		if new(big.Int).Mod(qMinusOne, p).Sign() == 0 || new(big.Int).Mod(pMinusOne, q).Sign() == 0 {
			continue
		}

		n := pSquared.Mul(pSquared, q)
		return domain.KeyPair{P: p, Q: q, N: n}, nil
	}
	return domain.KeyPair{}, fmt.Errorf("%w: no compatible p/q pair after %d attempts",
		domain.ErrGenerationFailed, maxKeyPairTries)
}

// MakePrivateKey derives the private key (d, pq) from the prime factors:
// pq = p·q, λ(n) = (p−1)(q−1)/gcd(p−1, q−1), and d = n⁻¹ mod λ(n) with
// n recomputed as pq·p.
//
// For a pair produced by MakePublicKey the inverse always exists; the
// missing-inverse case is still guarded and reported rather than emitting an
// unusable key.
func MakePrivateKey(p, q *big.Int) (domain.PrivateKey, error) {
	pq := new(big.Int).Mul(p, q)
	n := new(big.Int).Mul(pq, p)

	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	qMinusOne := new(big.Int).Sub(q, big.NewInt(1))

	lambda := new(big.Int).Mul(pMinusOne, qMinusOne)
	lambda.Div(lambda, numtheory.GCD(pMinusOne, qMinusOne))

	d, ok := numtheory.ModInverse(n, lambda)
	if !ok {
		return domain.PrivateKey{}, domain.ErrNoInverse
	}
	return domain.PrivateKey{D: d, PQ: pq}, nil
}
