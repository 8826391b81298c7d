package ss

import (
	"math/big"

	"sscrypt/internal/domain"
	"sscrypt/internal/numtheory"
)

// Sentinel is the marker byte prefixed to every plaintext block. Keeping the
// most significant byte fixed and nonzero means big-endian export of the
// decrypted value always reproduces the full padded block, so the payload
// length survives the integer round trip.
const Sentinel = 0xFF

// EncryptBlock encrypts a single block value: c = m^n mod n.
// m must satisfy 0 ≤ m < n.
func EncryptBlock(m, n *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		return nil, domain.ErrMessageTooLarge
	}
	return numtheory.PowMod(m, n, n), nil
}

// DecryptBlock decrypts a single block value: m = c^d mod pq.
func DecryptBlock(c, d, pq *big.Int) *big.Int {
	return numtheory.PowMod(c, d, pq)
}

// BlockSizeFor returns the largest byte count such that any value assembled
// from that many bytes, with a nonzero leading byte, stays strictly below
// modulus.
func BlockSizeFor(modulus *big.Int) int {
	return (modulus.BitLen() - 1) / 8
}
