package modular

import (
	"fmt"
	"math/big"
)

// -------- Quaternion arithmetic mod q ----------

// QuaternionMultiply returns the Hamilton product x·y mod q.
func (f *Field) QuaternionMultiply(x, y Quaternion) Quaternion {
	// terms[k] lists (sign, i, j) for z_k = Σ sign·x_i·y_j
	terms := [4][4]struct {
		neg  bool
		i, j int
	}{
		{{false, 0, 0}, {true, 1, 1}, {true, 2, 2}, {true, 3, 3}},
		{{false, 0, 1}, {false, 1, 0}, {false, 2, 3}, {true, 3, 2}},
		{{false, 0, 2}, {true, 1, 3}, {false, 2, 0}, {false, 3, 1}},
		{{false, 0, 3}, {false, 1, 2}, {true, 2, 1}, {false, 3, 0}},
	}

	var z Quaternion
	var prod big.Int
	for k, row := range terms {
		acc := new(big.Int)
		for _, t := range row {
			prod.Mul(val(x[t.i]), val(y[t.j]))
			if t.neg {
				acc.Sub(acc, &prod)
			} else {
				acc.Add(acc, &prod)
			}
		}
		z[k] = acc.Mod(acc, f.q)
	}
	return z
}

// QuaternionConjugate negates the imaginary components mod q.
func (f *Field) QuaternionConjugate(x Quaternion) Quaternion {
	z := Quaternion{f.reduce(x[0])}
	for i := 1; i < len(x); i++ {
		z[i] = f.reduce(new(big.Int).Neg(val(x[i])))
	}
	return z
}

func (f *Field) quaternionAdd(x, y Quaternion) Quaternion {
	var z Quaternion
	for i := range z {
		z[i] = f.reduce(new(big.Int).Add(val(x[i]), val(y[i])))
	}
	return z
}

func (f *Field) quaternionSub(x, y Quaternion) Quaternion {
	var z Quaternion
	for i := range z {
		z[i] = f.reduce(new(big.Int).Sub(val(x[i]), val(y[i])))
	}
	return z
}

func split(o Octonion) (a, b Quaternion) {
	copy(a[:], o[:4])
	copy(b[:], o[4:])
	return a, b
}

func join(a, b Quaternion) Octonion {
	var o Octonion
	copy(o[:4], a[:])
	copy(o[4:], b[:])
	return o
}

// -------- Octonion arithmetic mod q ----------

// Add returns x + y.
func (f *Field) Add(x, y Octonion) Octonion {
	var z Octonion
	for i := range z {
		z[i] = f.reduce(new(big.Int).Add(val(x[i]), val(y[i])))
	}
	return z
}

// Sub returns x - y.
func (f *Field) Sub(x, y Octonion) Octonion {
	var z Octonion
	for i := range z {
		z[i] = f.reduce(new(big.Int).Sub(val(x[i]), val(y[i])))
	}
	return z
}

// Scale returns s·x.
func (f *Field) Scale(s *big.Int, x Octonion) Octonion {
	var z Octonion
	for i := range z {
		z[i] = f.reduce(new(big.Int).Mul(val(s), val(x[i])))
	}
	return z
}

// Conj returns (a*, -b) for x = (a, b).
func (f *Field) Conj(x Octonion) Octonion {
	z := Octonion{f.reduce(x[0])}
	for i := 1; i < len(x); i++ {
		z[i] = f.reduce(new(big.Int).Neg(val(x[i])))
	}
	return z
}

// Mul returns x·y by Cayley–Dickson doubling over F_q.
func (f *Field) Mul(x, y Octonion) Octonion {
	a, b := split(x)
	c, d := split(y)

	re := f.quaternionSub(f.QuaternionMultiply(a, c), f.QuaternionMultiply(f.QuaternionConjugate(d), b))
	im := f.quaternionAdd(f.QuaternionMultiply(d, a), f.QuaternionMultiply(b, f.QuaternionConjugate(c)))
	return join(re, im)
}

// Norm2 returns the sum of squared components mod q.
func (f *Field) Norm2(x Octonion) *big.Int {
	n := new(big.Int)
	var sq big.Int
	for _, v := range x {
		w := val(v)
		n.Add(n, sq.Mul(w, w))
	}
	return n.Mod(n, f.q)
}

// HasInverse reports whether the norm of x is nonzero mod q.
func (f *Field) HasInverse(x Octonion) bool {
	return f.Norm2(x).Sign() != 0
}

// Inverse returns x* · N(x)⁻¹.
func (f *Field) Inverse(x Octonion) (Octonion, error) {
	inv, err := ModInverse(f.Norm2(x), f.q)
	if err != nil {
		return f.Zero(), fmt.Errorf("octonion %v has zero norm: %w", x, ErrNotInvertible)
	}
	return f.Scale(inv, f.Conj(x)), nil
}

// Div returns x·y⁻¹.
func (f *Field) Div(x, y Octonion) (Octonion, error) {
	inv, err := f.Inverse(y)
	if err != nil {
		return f.Zero(), err
	}
	return f.Mul(x, inv), nil
}

// Pow returns x^n by repeated squaring. Octonions are power-associative, so
// the grouping of the factors does not matter.
func (f *Field) Pow(x Octonion, n uint64) Octonion {
	result := f.One()
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}
	return result
}

// Order returns the smallest k in [1, limit] with x^k = 1.
func (f *Field) Order(x Octonion, limit int) (int, error) {
	if !f.HasInverse(x) {
		return 0, fmt.Errorf("octonion %v: %w", x, ErrNotInvertible)
	}
	one := f.One()
	acc := x
	for k := 1; k <= limit; k++ {
		if f.Equal(acc, one) {
			return k, nil
		}
		acc = f.Mul(acc, x)
	}
	return 0, fmt.Errorf("octonion %v after %d powers: %w", x, limit, ErrOrderLimit)
}
