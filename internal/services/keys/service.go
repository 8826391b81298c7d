package keys

import (
	"sscrypt/internal/domain"
	"sscrypt/internal/numtheory"
	"sscrypt/internal/ss"
)

// Service manages key-pair creation using a backing store.
type Service struct {
	store domain.KeyStore
}

// New returns a key service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Generate derives a fresh key pair from params and persists both halves.
// The full material is returned so callers can display it.
//
// The randomness state lives only for this call; the same seed therefore
// always reproduces the same key pair.
func (s *Service) Generate(params domain.KeyGenParams) (domain.KeyPair, domain.PrivateKey, error) {
	rs := numtheory.NewRandState(params.Seed)

	kp, err := ss.MakePublicKey(rs, params.TotalBits, params.Iterations)
	if err != nil {
		return domain.KeyPair{}, domain.PrivateKey{}, err
	}
	priv, err := ss.MakePrivateKey(kp.P, kp.Q)
	if err != nil {
		return domain.KeyPair{}, domain.PrivateKey{}, err
	}

	if err := s.store.SavePublic(kp.Public(params.Username)); err != nil {
		return domain.KeyPair{}, domain.PrivateKey{}, err
	}
	if err := s.store.SavePrivate(params.Passphrase, priv); err != nil {
		return domain.KeyPair{}, domain.PrivateKey{}, err
	}
	return kp, priv, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
