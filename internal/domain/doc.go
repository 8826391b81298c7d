// Package domain holds the core types shared across sscrypt.
//
// Contents
//
//   - Key material for the Schmidt–Samoa cryptosystem (KeyPair, PublicKey,
//     PrivateKey)
//   - The persistence interface implemented by internal/store (KeyStore)
//   - The error taxonomy surfaced by key generation, the codec, and the
//     stores
//
// All big-integer fields are *math/big.Int and are treated as immutable once
// constructed; nothing in the codebase mutates a key after creation.
package domain
