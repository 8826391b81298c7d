package cipher

import (
	"io"

	"sscrypt/internal/domain"
	"sscrypt/internal/ss"
)

// Service runs streaming encryption and decryption against a key store.
type Service struct {
	store domain.KeyStore
}

// New returns a cipher service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Encrypt loads the public key and encrypts in to out. The key is returned
// for display.
func (s *Service) Encrypt(in io.Reader, out io.Writer) (domain.PublicKey, error) {
	pub, err := s.store.LoadPublic()
	if err != nil {
		return domain.PublicKey{}, err
	}
	return pub, ss.EncryptStream(in, out, pub.N)
}

// Decrypt loads the private key and decrypts in to out. The key is returned
// for display.
func (s *Service) Decrypt(passphrase string, in io.Reader, out io.Writer) (domain.PrivateKey, error) {
	priv, err := s.store.LoadPrivate(passphrase)
	if err != nil {
		return domain.PrivateKey{}, err
	}
	return priv, ss.DecryptStream(in, out, priv.D, priv.PQ)
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
