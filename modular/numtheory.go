package modular

import (
	"fmt"
	"math/big"
)

// ModInverse returns n⁻¹ mod m.
func ModInverse(n, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus %v: %w", m, ErrInvalidModulus)
	}
	inv := new(big.Int).ModInverse(val(n), m)
	if inv == nil {
		return nil, fmt.Errorf("%v mod %v: %w", n, m, ErrNotInvertible)
	}
	return inv, nil
}

// IsResidue reports whether x is a nonzero square mod the odd prime p
// (Euler's criterion: x^((p-1)/2) = 1). It is false when p is not an odd
// prime.
func IsResidue(x, p *big.Int) bool {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 || !p.ProbablyPrime(primalityRounds) {
		return false
	}
	e := new(big.Int).Sub(p, big.NewInt(1))
	e.Rsh(e, 1)
	r := new(big.Int).Mod(val(x), p)
	return r.Exp(r, e, p).Cmp(big.NewInt(1)) == 0
}

// SqrtMod returns r with r² ≡ n (mod p) for an odd prime p.
// The root of 0 is 0.
func SqrtMod(n, p *big.Int) (*big.Int, error) {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("modulus %v must be an odd prime: %w", p, ErrInvalidModulus)
	}
	r := new(big.Int).Mod(val(n), p)
	if r.Sign() == 0 {
		return r, nil
	}
	if !IsResidue(r, p) {
		return nil, fmt.Errorf("%v mod %v: %w", n, p, ErrNotResidue)
	}
	return new(big.Int).ModSqrt(r, p), nil
}
