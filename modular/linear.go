package modular

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sbl8/cayley/core"
)

// LinearMap is an F_q-linear map on octonions, stored as the 8×8 coefficient
// matrix e[ie][ix]: component ie of the image is Σ e[ie][ix]·x[ix].
//
// LinearMaps are built by Field methods. Add and Mul combine maps over the
// same field; the result belongs to the receiver's field.
type LinearMap struct {
	f *Field
	e [core.OctonionDim][core.OctonionDim]*big.Int
}

// LinearMap tabulates fn, which must be linear, by applying it to each basis
// vector e_ix and storing the image as column ix.
func (f *Field) LinearMap(fn func(Octonion) Octonion) LinearMap {
	m := LinearMap{f: f}
	for ix := 0; ix < core.OctonionDim; ix++ {
		col := fn(f.Basis(ix))
		for ie := 0; ie < core.OctonionDim; ie++ {
			m.e[ie][ix] = f.reduce(col[ie])
		}
	}
	return m
}

// IdentityMap returns x ↦ x.
func (f *Field) IdentityMap() LinearMap {
	return f.LinearMap(func(x Octonion) Octonion { return x })
}

// LeftMultiplication returns x ↦ a·x.
func (f *Field) LeftMultiplication(a Octonion) LinearMap {
	return f.LinearMap(func(x Octonion) Octonion { return f.Mul(a, x) })
}

// RightMultiplication returns x ↦ x·a.
func (f *Field) RightMultiplication(a Octonion) LinearMap {
	return f.LinearMap(func(x Octonion) Octonion { return f.Mul(x, a) })
}

// Coefficient returns a copy of e[ie][ix].
func (m LinearMap) Coefficient(ie, ix int) *big.Int {
	return new(big.Int).Set(val(m.e[ie][ix]))
}

// Apply evaluates the map at x.
func (m LinearMap) Apply(x Octonion) Octonion {
	var z Octonion
	var prod big.Int
	for ie := range z {
		acc := new(big.Int)
		for ix := range x {
			acc.Add(acc, prod.Mul(val(m.e[ie][ix]), val(x[ix])))
		}
		z[ie] = acc.Mod(acc, m.f.q)
	}
	return z
}

// Add returns x ↦ m(x) + n(x).
func (m LinearMap) Add(n LinearMap) LinearMap {
	return m.f.LinearMap(func(x Octonion) Octonion {
		return m.f.Add(m.Apply(x), n.Apply(x))
	})
}

// Mul returns the composition x ↦ m(n(x)).
func (m LinearMap) Mul(n LinearMap) LinearMap {
	return m.f.LinearMap(func(x Octonion) Octonion {
		return m.Apply(n.Apply(x))
	})
}

// Equal reports whether both maps have the same coefficients mod q.
func (m LinearMap) Equal(n LinearMap) bool {
	for ie := range m.e {
		for ix := range m.e[ie] {
			if m.f.reduce(m.e[ie][ix]).Cmp(m.f.reduce(n.e[ie][ix])) != 0 {
				return false
			}
		}
	}
	return true
}

// String prints one row per output component:
//
//	e:
//	ie0 e00 e01 ... e07
//	...
func (m LinearMap) String() string {
	var sb strings.Builder
	sb.WriteString("e:\n")
	for ie := range m.e {
		fmt.Fprintf(&sb, "ie%d", ie)
		for ix := range m.e[ie] {
			sb.WriteString(" " + val(m.e[ie][ix]).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
