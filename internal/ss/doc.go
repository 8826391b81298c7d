// Package ss implements the Schmidt–Samoa cryptosystem: key-pair derivation
// over the modulus n = p²·q, the single-block encrypt/decrypt primitives,
// and the streaming codec that carries arbitrary byte streams through the
// block arithmetic.
//
// # Notes
//
// Encryption is c = m^n mod n; decryption is m = c^d mod pq and therefore
// only recovers messages below pq. The streaming encoder sizes its blocks
// from sqrt(n) (which is always below pq) so that every block value stays in
// the recoverable range. Each plaintext block carries a leading 0xFF
// sentinel byte that pins its numeric magnitude, letting the decoder recover
// the exact padded byte length of the block after big-endian export.
package ss
