package store

import (
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"sscrypt/internal/domain"
)

// KeyFileStore persists one public and one private key file at fixed paths.
type KeyFileStore struct {
	pubPath  string
	privPath string
	mu       sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore writing the public key to pubPath
// and the private key to privPath.
func NewKeyFileStore(pubPath, privPath string) *KeyFileStore {
	return &KeyFileStore{pubPath: pubPath, privPath: privPath}
}

// SavePublic writes the public key file: modulus hex, then username.
func (s *KeyFileStore) SavePublic(pub domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := fmt.Sprintf("%x\n%s\n", pub.N, pub.Username)
	return writeFile(s.pubPath, []byte(body), 0o600)
}

// LoadPublic reads and parses the public key file.
func (s *KeyFileStore) LoadPublic() (domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.pubPath)
	if err != nil {
		return domain.PublicKey{}, err
	}
	lines := strings.SplitN(string(b), "\n", 3)
	if len(lines) < 2 {
		return domain.PublicKey{}, fmt.Errorf("%w: public key file needs a modulus and a username line", domain.ErrKeyFormat)
	}
	n, err := parseHex(strings.TrimSpace(lines[0]))
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("public key modulus: %w", err)
	}
	return domain.PublicKey{N: n, Username: domain.Username(strings.TrimSpace(lines[1]))}, nil
}

// SavePrivate writes the private key file: pq hex, then d hex. With a
// non-empty passphrase the same body is sealed inside the scrypt envelope
// instead of being written in the clear.
func (s *KeyFileStore) SavePrivate(passphrase string, priv domain.PrivateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := []byte(fmt.Sprintf("%x\n%x\n", priv.PQ, priv.D))
	if passphrase != "" {
		N, r, p := scryptParamsDefault()
		sealed, err := seal(passphrase, body, N, r, p)
		if err != nil {
			return err
		}
		body = sealed
	}
	return writeFile(s.privPath, body, 0o600)
}

// LoadPrivate reads and parses the private key file, unsealing the envelope
// first when a passphrase is supplied.
func (s *KeyFileStore) LoadPrivate(passphrase string) (domain.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.privPath)
	if err != nil {
		return domain.PrivateKey{}, err
	}
	if passphrase != "" {
		if b, err = open(passphrase, b); err != nil {
			return domain.PrivateKey{}, err
		}
	}

	lines := strings.SplitN(string(b), "\n", 3)
	if len(lines) < 2 {
		return domain.PrivateKey{}, fmt.Errorf("%w: private key file needs pq and d lines", domain.ErrKeyFormat)
	}
	pq, err := parseHex(strings.TrimSpace(lines[0]))
	if err != nil {
		return domain.PrivateKey{}, fmt.Errorf("private key pq: %w", err)
	}
	d, err := parseHex(strings.TrimSpace(lines[1]))
	if err != nil {
		return domain.PrivateKey{}, fmt.Errorf("private key d: %w", err)
	}
	return domain.PrivateKey{D: d, PQ: pq}, nil
}

func parseHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hexadecimal integer", domain.ErrKeyFormat, s)
	}
	return v, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
