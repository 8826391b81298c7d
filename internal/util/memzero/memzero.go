// Package memzero clears key material from byte slices.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. Best effort only: the subtle copy cannot be
// elided by the compiler, but copies of the data living elsewhere are
// untouched.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
