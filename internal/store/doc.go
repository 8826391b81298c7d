// Package store provides file-based persistence for sscrypt key material.
//
// Two text formats are produced:
//
//   - Public key: the modulus n as lowercase hexadecimal on line one, the
//     owner's username on line two.
//   - Private key: pq then d, each as lowercase hexadecimal on its own line.
//
// When a passphrase is supplied the private key file is instead a versioned
// JSON envelope sealing the plain format with a scrypt-derived
// chacha20poly1305 key. All writes go through a temp file followed by an
// atomic rename, with owner-only permissions.
package store
