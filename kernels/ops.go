// Package kernels implements the quaternion and octonion arithmetic.
//
// Every kernel is a pure function over core value types: operands are passed
// by value and each call returns a new result, so kernels are safe to call
// from any number of goroutines.
//
// Available operations:
//   - Quaternions: Hamilton product, conjugate, norm, inverse
//   - Octonions: Cayley–Dickson product, conjugate, norm, inverse, division
//   - Slice entry points that validate dimensions before computing
//
// The slice entry points are also registered in the Catalog for dispatch by
// operation code.
package kernels

import (
	"errors"
	"fmt"

	"github.com/sbl8/cayley/core"
)

// ErrNotInvertible reports a division by a value of zero norm.
var ErrNotInvertible = errors.New("value has no inverse")

// -------- Quaternion kernels ----------

// QuaternionMultiply returns the Hamilton product x·y.
// The product is not commutative.
func QuaternionMultiply[T core.Scalar](x, y core.Quaternion[T]) core.Quaternion[T] {
	return core.Quaternion[T]{
		x[0]*y[0] - x[1]*y[1] - x[2]*y[2] - x[3]*y[3],
		x[0]*y[1] + x[1]*y[0] + x[2]*y[3] - x[3]*y[2],
		x[0]*y[2] - x[1]*y[3] + x[2]*y[0] + x[3]*y[1],
		x[0]*y[3] + x[1]*y[2] - x[2]*y[1] + x[3]*y[0],
	}
}

// QuaternionConjugate negates the three imaginary components.
func QuaternionConjugate[T core.Scalar](x core.Quaternion[T]) core.Quaternion[T] {
	return core.Quaternion[T]{x[0], -x[1], -x[2], -x[3]}
}

// QuaternionNorm2 returns the squared norm, x·x* = (norm2, 0, 0, 0).
func QuaternionNorm2[T core.Scalar](x core.Quaternion[T]) T {
	return x[0]*x[0] + x[1]*x[1] + x[2]*x[2] + x[3]*x[3]
}

// QuaternionInverse returns x* / |x|².
func QuaternionInverse[T core.Scalar](x core.Quaternion[T]) (core.Quaternion[T], error) {
	n := QuaternionNorm2(x)
	if n == 0 {
		return core.Quaternion[T]{}, fmt.Errorf("quaternion %v: %w", x, ErrNotInvertible)
	}
	return QuaternionConjugate(x).Scale(1 / n), nil
}

// -------- Octonion kernels ----------

// OctonionMultiply returns x·y by Cayley–Dickson doubling.
// With x = (a, b) and y = (c, d):
//
//	x·y = (a·c - d*·b, d·a + b·c*)
//
// The product is neither commutative nor associative.
func OctonionMultiply[T core.Scalar](x, y core.Octonion[T]) core.Octonion[T] {
	a, b := x.Split()
	c, d := y.Split()

	re := QuaternionMultiply(a, c).Sub(QuaternionMultiply(QuaternionConjugate(d), b))
	im := QuaternionMultiply(d, a).Add(QuaternionMultiply(b, QuaternionConjugate(c)))
	return core.Join(re, im)
}

// OctonionConjugate returns (a*, -b) for x = (a, b).
func OctonionConjugate[T core.Scalar](x core.Octonion[T]) core.Octonion[T] {
	a, b := x.Split()
	return core.Join(QuaternionConjugate(a), b.Scale(-1))
}

// OctonionNorm2 returns the sum of squares of the eight components.
func OctonionNorm2[T core.Scalar](x core.Octonion[T]) T {
	var n T
	for _, v := range x {
		n += v * v
	}
	return n
}

// OctonionInverse returns x* / |x|².
func OctonionInverse[T core.Scalar](x core.Octonion[T]) (core.Octonion[T], error) {
	n := OctonionNorm2(x)
	if n == 0 {
		return core.Octonion[T]{}, fmt.Errorf("octonion %v: %w", x, ErrNotInvertible)
	}
	return OctonionConjugate(x).Scale(1 / n), nil
}

// OctonionDivide returns x·y⁻¹. Octonions are alternative, so
// OctonionDivide(OctonionMultiply(x, y), y) recovers x.
func OctonionDivide[T core.Scalar](x, y core.Octonion[T]) (core.Octonion[T], error) {
	inv, err := OctonionInverse(y)
	if err != nil {
		return core.Octonion[T]{}, err
	}
	return OctonionMultiply(x, inv), nil
}

// -------- Slice entry points ----------

// QuaternionMultiplySlice multiplies two 4-component slices.
// Dimensions are checked before any arithmetic; on error the result is nil.
func QuaternionMultiplySlice(x, y []float64) ([]float64, error) {
	qx, err := core.QuaternionFrom(x)
	if err != nil {
		return nil, err
	}
	qy, err := core.QuaternionFrom(y)
	if err != nil {
		return nil, err
	}
	return QuaternionMultiply(qx, qy).Slice(), nil
}

// QuaternionConjugateSlice conjugates a 4-component slice.
func QuaternionConjugateSlice(x []float64) ([]float64, error) {
	q, err := core.QuaternionFrom(x)
	if err != nil {
		return nil, err
	}
	return QuaternionConjugate(q).Slice(), nil
}

// OctonionMultiplySlice multiplies two 8-component slices.
// Dimensions are checked before any arithmetic; on error the result is nil.
func OctonionMultiplySlice(x, y []float64) ([]float64, error) {
	ox, err := core.OctonionFrom(x)
	if err != nil {
		return nil, err
	}
	oy, err := core.OctonionFrom(y)
	if err != nil {
		return nil, err
	}
	return OctonionMultiply(ox, oy).Slice(), nil
}

// OctonionConjugateSlice conjugates an 8-component slice.
func OctonionConjugateSlice(x []float64) ([]float64, error) {
	o, err := core.OctonionFrom(x)
	if err != nil {
		return nil, err
	}
	return OctonionConjugate(o).Slice(), nil
}
