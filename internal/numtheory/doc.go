// Package numtheory implements the number-theoretic primitives behind the
// Schmidt–Samoa cryptosystem.
//
// Contents
//
//   - Iterative Euclidean gcd (GCD)
//   - Extended-Euclidean modular inverse (ModInverse)
//   - Right-to-left binary modular exponentiation (PowMod)
//   - Miller–Rabin probabilistic primality testing (IsPrime)
//   - Random prime generation by rejection sampling (MakePrime)
//
// # Notes
//
// Randomized operations take an explicit *RandState rather than reading
// ambient global state, so a fixed seed reproduces the exact same primes and
// witnesses. IsPrime is probabilistic: a composite survives the test with
// probability at most 4^-iterations, so its verdict is evidence, not proof.
package numtheory
