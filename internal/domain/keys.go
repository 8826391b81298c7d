package domain

import "math/big"

// Username is the identity string recorded alongside a public key.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// KeyPair is the full output of public-key generation.
//
// Invariants: P and Q are distinct primes, Q does not divide P−1, P does not
// divide Q−1, and N = P²·Q. The first two guarantee the private exponent
// exists.
type KeyPair struct {
	P *big.Int
	Q *big.Int
	N *big.Int
}

// Public strips the prime factors, leaving only what an encrypting party
// needs.
func (kp KeyPair) Public(user Username) PublicKey {
	return PublicKey{N: kp.N, Username: user}
}

// PublicKey is the encryption key: the modulus n = p²·q plus the owner's
// username.
type PublicKey struct {
	N        *big.Int
	Username Username
}

// PrivateKey is the decryption key: the private exponent d and the modulus
// pq = p·q under which decryption is performed.
//
// Invariant: D ≡ N⁻¹ (mod λ(N)) where λ(N) = lcm(p−1, q−1).
type PrivateKey struct {
	D  *big.Int
	PQ *big.Int
}
