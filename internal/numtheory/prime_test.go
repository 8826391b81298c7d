package numtheory_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sscrypt/internal/domain"
	"sscrypt/internal/numtheory"
)

// sieve returns primality flags for 0..limit-1.
func sieve(limit int) []bool {
	prime := make([]bool, limit)
	for i := 2; i < limit; i++ {
		prime[i] = true
	}
	for i := 2; i*i < limit; i++ {
		if prime[i] {
			for j := i * i; j < limit; j += i {
				prime[j] = false
			}
		}
	}
	return prime
}

func TestIsPrimeSmallCases(t *testing.T) {
	rs := numtheory.NewRandState(1)

	assert.False(t, numtheory.IsPrime(rs, big.NewInt(1), 50))
	assert.True(t, numtheory.IsPrime(rs, big.NewInt(2), 50))
	assert.True(t, numtheory.IsPrime(rs, big.NewInt(3), 50))
	assert.False(t, numtheory.IsPrime(rs, big.NewInt(4), 50))
	assert.False(t, numtheory.IsPrime(rs, big.NewInt(100), 50))
}

func TestIsPrimeAgainstSieve(t *testing.T) {
	rs := numtheory.NewRandState(7)
	isPrime := sieve(1000)

	for i := 1; i < 1000; i++ {
		got := numtheory.IsPrime(rs, big.NewInt(int64(i)), 50)
		assert.Equal(t, isPrime[i], got, "n=%d", i)
	}
}

func TestIsPrimeKnownLargePrime(t *testing.T) {
	rs := numtheory.NewRandState(3)

	// 2^61 - 1 is a Mersenne prime.
	mersenne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	assert.True(t, numtheory.IsPrime(rs, mersenne, 50))

	// A Carmichael number; Fermat-fooling but not Miller-Rabin-fooling.
	assert.False(t, numtheory.IsPrime(rs, big.NewInt(561), 50))
}

func TestMakePrimeRange(t *testing.T) {
	rs := numtheory.NewRandState(99)

	for _, bits := range []uint{2, 3, 5, 8, 16, 24, 32} {
		p, err := numtheory.MakePrime(rs, bits, 30)
		require.NoError(t, err, "bits=%d", bits)

		assert.Equal(t, int(bits), p.BitLen(), "bits=%d", bits)
		assert.True(t, numtheory.IsPrime(rs, p, 30), "bits=%d p=%s", bits, p)
	}
}

func TestMakePrimeDeterministic(t *testing.T) {
	a, err := numtheory.MakePrime(numtheory.NewRandState(42), 64, 30)
	require.NoError(t, err)
	b, err := numtheory.MakePrime(numtheory.NewRandState(42), 64, 30)
	require.NoError(t, err)

	assert.Zero(t, a.Cmp(b))
}

func TestMakePrimeRejectsDegenerateBits(t *testing.T) {
	rs := numtheory.NewRandState(1)

	for _, bits := range []uint{0, 1} {
		_, err := numtheory.MakePrime(rs, bits, 10)
		assert.True(t, errors.Is(err, domain.ErrGenerationFailed), "bits=%d", bits)
	}
}
