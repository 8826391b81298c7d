package ss_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sscrypt/internal/domain"
	"sscrypt/internal/numtheory"
	"sscrypt/internal/ss"
)

func TestMakePublicKeyInvariants(t *testing.T) {
	rs := numtheory.NewRandState(1)
	kp, err := ss.MakePublicKey(rs, 64, 50)
	require.NoError(t, err)

	check := numtheory.NewRandState(2)
	assert.True(t, numtheory.IsPrime(check, kp.P, 50), "p must be prime")
	assert.True(t, numtheory.IsPrime(check, kp.Q, 50), "q must be prime")
	assert.NotZero(t, kp.P.Cmp(kp.Q), "p and q must differ")

	// n = p² · q
	n := new(big.Int).Mul(kp.P, kp.P)
	n.Mul(n, kp.Q)
	assert.Zero(t, kp.N.Cmp(n))

	// q ∤ p−1 and p ∤ q−1, so the private exponent exists.
	pMinusOne := new(big.Int).Sub(kp.P, big.NewInt(1))
	qMinusOne := new(big.Int).Sub(kp.Q, big.NewInt(1))
	assert.NotZero(t, new(big.Int).Mod(pMinusOne, kp.Q).Sign())
	assert.NotZero(t, new(big.Int).Mod(qMinusOne, kp.P).Sign())
}

func TestMakePublicKeyDeterministicForSeed(t *testing.T) {
	a, err := ss.MakePublicKey(numtheory.NewRandState(1234), 64, 50)
	require.NoError(t, err)
	b, err := ss.MakePublicKey(numtheory.NewRandState(1234), 64, 50)
	require.NoError(t, err)

	assert.Zero(t, a.P.Cmp(b.P))
	assert.Zero(t, a.Q.Cmp(b.Q))
	assert.Zero(t, a.N.Cmp(b.N))
}

func TestMakePublicKeyRejectsEqualPrimes(t *testing.T) {
	// At small modulus sizes the p and q bit budgets frequently coincide, so
	// the same prime can be drawn for both halves. Such a pair passes the
	// divisibility checks but decrypts to garbage, so it must be rejected.
	for seed := uint64(1); seed <= 40; seed++ {
		kp, err := ss.MakePublicKey(numtheory.NewRandState(seed), 15, 50)
		if err != nil {
			continue
		}
		require.NotZero(t, kp.P.Cmp(kp.Q), "seed=%d: p and q must differ", seed)

		priv, err := ss.MakePrivateKey(kp.P, kp.Q)
		require.NoError(t, err, "seed=%d", seed)

		// Every accepted pair must actually round-trip.
		m := new(big.Int).Sub(priv.PQ, big.NewInt(1))
		c, err := ss.EncryptBlock(m, kp.N)
		require.NoError(t, err, "seed=%d", seed)
		got := ss.DecryptBlock(c, priv.D, priv.PQ)
		assert.Zero(t, got.Cmp(m), "seed=%d", seed)
	}
}

func TestMakePublicKeyRejectsTinyModulus(t *testing.T) {
	rs := numtheory.NewRandState(1)
	_, err := ss.MakePublicKey(rs, 9, 50)
	assert.True(t, errors.Is(err, domain.ErrGenerationFailed))
}

func TestMakePrivateKey(t *testing.T) {
	rs := numtheory.NewRandState(5)
	kp, err := ss.MakePublicKey(rs, 64, 50)
	require.NoError(t, err)

	priv, err := ss.MakePrivateKey(kp.P, kp.Q)
	require.NoError(t, err)

	assert.Zero(t, priv.PQ.Cmp(new(big.Int).Mul(kp.P, kp.Q)))

	// d · n ≡ 1 mod λ(n) with λ(n) = (p−1)(q−1)/gcd(p−1, q−1).
	pMinusOne := new(big.Int).Sub(kp.P, big.NewInt(1))
	qMinusOne := new(big.Int).Sub(kp.Q, big.NewInt(1))
	lambda := new(big.Int).Mul(pMinusOne, qMinusOne)
	lambda.Div(lambda, numtheory.GCD(pMinusOne, qMinusOne))

	product := new(big.Int).Mul(priv.D, kp.N)
	product.Mod(product, lambda)
	assert.Zero(t, product.Cmp(big.NewInt(1)))
}

func TestBlockRoundTrip(t *testing.T) {
	rs := numtheory.NewRandState(7)
	kp, err := ss.MakePublicKey(rs, 64, 50)
	require.NoError(t, err)
	priv, err := ss.MakePrivateKey(kp.P, kp.Q)
	require.NoError(t, err)

	messages := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(0xFF),
		new(big.Int).Sub(priv.PQ, big.NewInt(1)),
	}
	for _, m := range messages {
		c, err := ss.EncryptBlock(m, kp.N)
		require.NoError(t, err)
		got := ss.DecryptBlock(c, priv.D, priv.PQ)
		assert.Zero(t, got.Cmp(m), "m=%s", m)
	}
}

func TestEncryptBlockRejectsOversizedMessage(t *testing.T) {
	rs := numtheory.NewRandState(7)
	kp, err := ss.MakePublicKey(rs, 64, 50)
	require.NoError(t, err)

	_, err = ss.EncryptBlock(kp.N, kp.N)
	assert.True(t, errors.Is(err, domain.ErrMessageTooLarge))

	_, err = ss.EncryptBlock(big.NewInt(-1), kp.N)
	assert.True(t, errors.Is(err, domain.ErrMessageTooLarge))
}
