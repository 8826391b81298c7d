package numtheory

import "math/big"

var one = big.NewInt(1)

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. GCD(a, 0) = a.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}
	return x
}

// ModInverse returns the multiplicative inverse of a modulo n, normalized
// into [0, n), computed with the extended Euclidean algorithm.
//
// When gcd(a, n) > 1 no inverse exists and ModInverse reports (0, false).
func ModInverse(a, n *big.Int) (*big.Int, bool) {
	// Invariant: r0 = a·<dropped> + n·t0 and r1 = a·<dropped> + n·t1 along
	// the Euclidean remainder sequence; only the coefficient of a is kept.
	r0 := new(big.Int).Set(n)
	r1 := new(big.Int).Set(a)
	t0 := big.NewInt(0)
	t1 := big.NewInt(1)

	for r1.Sign() != 0 {
		q := new(big.Int).Div(r0, r1)

		r0, r1 = r1, r0.Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, t0.Sub(t0, new(big.Int).Mul(q, t1))
	}

	if r0.Cmp(one) > 0 {
		return big.NewInt(0), false
	}
	if t0.Sign() < 0 {
		t0.Add(t0, n)
	}
	return t0, true
}

// PowMod returns base^exponent mod modulus via right-to-left binary
// square-and-multiply. The exponent must be non-negative; a zero exponent
// yields 1 for any modulus greater than 1.
func PowMod(base, exponent, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Set(base)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}
