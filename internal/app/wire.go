package app

import (
	"sscrypt/internal/domain"
	ciphersvc "sscrypt/internal/services/cipher"
	keysvc "sscrypt/internal/services/keys"
	"sscrypt/internal/store"
)

// App bundles the store and services for the CLI.
type App struct {
	Store  domain.KeyStore
	Keys   domain.KeyService
	Cipher domain.CipherService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	keyStore := store.NewKeyFileStore(cfg.PubPath, cfg.PrivPath)
	return &App{
		Store:  keyStore,
		Keys:   keysvc.New(keyStore),
		Cipher: ciphersvc.New(keyStore),
	}
}
