// Package keys orchestrates key-pair generation: it seeds the randomness
// state, derives the public and private halves through internal/ss, and
// persists both through the key store.
package keys
