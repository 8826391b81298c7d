package domain

import "io"

// KeyGenParams carries everything a key-generation run needs.
type KeyGenParams struct {
	TotalBits  uint     // target bit length for the modulus n
	Iterations uint     // Miller–Rabin rounds per primality check
	Seed       uint64   // PRNG seed; a fixed seed reproduces the key pair
	Username   Username // recorded in the public key file
	Passphrase string   // optional; protects the private key file at rest
}

// KeyService generates and persists key pairs.
type KeyService interface {
	Generate(params KeyGenParams) (KeyPair, PrivateKey, error)
}

// CipherService runs the streaming codec against stored keys.
type CipherService interface {
	Encrypt(in io.Reader, out io.Writer) (PublicKey, error)
	Decrypt(passphrase string, in io.Reader, out io.Writer) (PrivateKey, error)
}

// KeyStore persists key material.
//
// The passphrase selects the private key encoding: empty means the plain
// two-line hex format, non-empty means the encrypted envelope.
type KeyStore interface {
	SavePublic(pub PublicKey) error
	LoadPublic() (PublicKey, error)

	SavePrivate(passphrase string, priv PrivateKey) error
	LoadPrivate(passphrase string) (PrivateKey, error)
}
