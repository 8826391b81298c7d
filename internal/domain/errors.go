package domain

import "errors"

var (
	// ErrGenerationFailed is returned when a capped rejection-sampling loop
	// (prime generation or the p/q compatibility retry) exhausts its attempts.
	ErrGenerationFailed = errors.New("key generation failed: retry limit exhausted")

	// ErrNoInverse is returned when the private exponent does not exist, i.e.
	// gcd(n, λ(n)) > 1. Guarded against even though valid key pairs rule it out.
	ErrNoInverse = errors.New("private exponent does not exist")

	// ErrMessageTooLarge is returned when a block value is not strictly below
	// the encryption modulus. The block-size derivation makes this unreachable
	// for codec-produced blocks.
	ErrMessageTooLarge = errors.New("message block not below modulus")

	// ErrBadBlock is returned when a decrypted block does not start with the
	// 0xFF sentinel byte, which indicates a wrong key or corrupted ciphertext.
	ErrBadBlock = errors.New("decrypted block missing sentinel byte")

	// ErrModulusTooSmall is returned when a modulus is too small to carry
	// even one payload byte per block.
	ErrModulusTooSmall = errors.New("modulus too small to carry any payload")

	// ErrCiphertextFormat is returned when a ciphertext stream line is not a
	// hexadecimal integer.
	ErrCiphertextFormat = errors.New("malformed ciphertext stream")

	// ErrKeyFormat is returned when a key file cannot be parsed.
	ErrKeyFormat = errors.New("malformed key file")

	// ErrWrongPassphrase is returned when a protected private key file cannot
	// be opened with the supplied passphrase, or has been tampered with.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted private key file")
)
