// Package cipher wires the streaming codec to stored keys: it loads the
// relevant key half from the store and runs the block pipeline over the
// caller's byte streams.
package cipher
