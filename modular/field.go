// Package modular implements octonion arithmetic over the prime field F_q.
//
// Components are arbitrary-precision integers kept in [0, q). Multiplication
// uses the same Cayley–Dickson doubling as the float kernels, with every
// intermediate reduced mod q. Over F_q a nonzero octonion can have zero norm;
// such values have no inverse.
//
// A Field is immutable after NewField and every operation allocates its
// result, so one Field may be shared between goroutines.
package modular

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/sbl8/cayley/core"
)

var (
	// ErrInvalidModulus reports a modulus that is not a prime of at least 3.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrNotInvertible reports a value with no inverse mod q.
	ErrNotInvertible = errors.New("value has no inverse")
	// ErrNotResidue reports a value with no square root mod p.
	ErrNotResidue = errors.New("not a quadratic residue")
	// ErrOrderLimit reports that no power up to the limit reached one.
	ErrOrderLimit = errors.New("order exceeds limit")
	// ErrNilComponent reports a nil component passed to a constructor.
	ErrNilComponent = errors.New("nil component")
)

// zero stands in for nil components; it is never written.
var zero = new(big.Int)

// val reads a nil component as 0
func val(x *big.Int) *big.Int {
	if x == nil {
		return zero
	}
	return x
}

// primalityRounds is the Miller-Rabin round count used to validate moduli
const primalityRounds = 20

// Quaternion is a quaternion over F_q. Nil components read as 0, so the
// zero value is the zero quaternion.
type Quaternion [core.QuaternionDim]*big.Int

// Octonion is an octonion over F_q. Nil components read as 0, so the zero
// value is the zero octonion. Results returned by Field methods never hold
// nil components.
type Octonion [core.OctonionDim]*big.Int

// String formats the components as (a0, a1, ..., a7).
func (o Octonion) String() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = val(v).String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Field is the prime field F_q.
type Field struct {
	q *big.Int
}

// NewField validates q and returns F_q. q must be a prime of at least 3.
func NewField(q *big.Int) (*Field, error) {
	if q == nil || q.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("modulus %v is less than 3: %w", q, ErrInvalidModulus)
	}
	if !q.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("modulus %v is not prime: %w", q, ErrInvalidModulus)
	}
	return &Field{q: new(big.Int).Set(q)}, nil
}

// Modulus returns a copy of q.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.q) }

// reduce returns x mod q in [0, q)
func (f *Field) reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(val(x), f.q)
}

// Quaternion builds a reduced quaternion from exactly 4 components.
func (f *Field) Quaternion(vals ...int64) (Quaternion, error) {
	var q Quaternion
	if len(vals) != core.QuaternionDim {
		return Quaternion{new(big.Int), new(big.Int), new(big.Int), new(big.Int)}, fmt.Errorf("quaternion has %d components, want %d: %w", len(vals), core.QuaternionDim, core.ErrInvalidDimension)
	}
	for i, v := range vals {
		q[i] = f.reduce(big.NewInt(v))
	}
	return q, nil
}

// Octonion builds a reduced octonion from exactly 8 components.
func (f *Field) Octonion(vals ...int64) (Octonion, error) {
	comps := make([]*big.Int, len(vals))
	for i, v := range vals {
		comps[i] = big.NewInt(v)
	}
	return f.OctonionFromBig(comps)
}

// OctonionFromBig builds a reduced octonion from exactly 8 non-nil components.
func (f *Field) OctonionFromBig(vals []*big.Int) (Octonion, error) {
	if len(vals) != core.OctonionDim {
		return f.Zero(), fmt.Errorf("octonion has %d components, want %d: %w", len(vals), core.OctonionDim, core.ErrInvalidDimension)
	}
	var o Octonion
	for i, v := range vals {
		if v == nil {
			return f.Zero(), fmt.Errorf("octonion component %d: %w", i, ErrNilComponent)
		}
		o[i] = f.reduce(v)
	}
	return o, nil
}

// Zero returns the additive identity.
func (f *Field) Zero() Octonion {
	var o Octonion
	for i := range o {
		o[i] = new(big.Int)
	}
	return o
}

// One returns the multiplicative identity.
func (f *Field) One() Octonion {
	o := f.Zero()
	o[0].SetInt64(1)
	return o
}

// Basis returns the unit e_i, i in [0, 8).
func (f *Field) Basis(i int) Octonion {
	o := f.Zero()
	o[i].SetInt64(1)
	return o
}

// Equal reports whether x and y are congruent mod q component-wise.
func (f *Field) Equal(x, y Octonion) bool {
	for i := range x {
		if f.reduce(x[i]).Cmp(f.reduce(y[i])) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every component is 0 mod q.
func (f *Field) IsZero(x Octonion) bool {
	for _, v := range x {
		if f.reduce(v).Sign() != 0 {
			return false
		}
	}
	return true
}
