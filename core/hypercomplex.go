// Package core provides the fixed-dimension value types the kernels operate on.
//
// A Quaternion is four real components (w, x, y, z) and an Octonion is eight,
// read as two concatenated quaternions: the first half a, the second half b.
// Both are arrays, so a value always has the right number of components and
// is copied on assignment. Ragged input can only enter through the slice
// constructors, which reject it with ErrInvalidDimension.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDimension reports an operand with the wrong number of components.
var ErrInvalidDimension = errors.New("invalid dimension")

// Scalar is the component type of the hypercomplex values.
type Scalar interface {
	constraints.Float
}

// Quaternion is a 4-component hypercomplex number (w, x, y, z).
type Quaternion[T Scalar] [QuaternionDim]T

// Octonion is an 8-component hypercomplex number.
type Octonion[T Scalar] [OctonionDim]T

// Real returns the scalar part w.
func (q Quaternion[T]) Real() T { return q[0] }

// Add returns q + r component-wise.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	for i := range q {
		q[i] += r[i]
	}
	return q
}

// Sub returns q - r component-wise.
func (q Quaternion[T]) Sub(r Quaternion[T]) Quaternion[T] {
	for i := range q {
		q[i] -= r[i]
	}
	return q
}

// Scale returns s·q.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	for i := range q {
		q[i] *= s
	}
	return q
}

// Real returns the first component.
func (o Octonion[T]) Real() T { return o[0] }

// Add returns o + r component-wise.
func (o Octonion[T]) Add(r Octonion[T]) Octonion[T] {
	for i := range o {
		o[i] += r[i]
	}
	return o
}

// Sub returns o - r component-wise.
func (o Octonion[T]) Sub(r Octonion[T]) Octonion[T] {
	for i := range o {
		o[i] -= r[i]
	}
	return o
}

// Scale returns s·o.
func (o Octonion[T]) Scale(s T) Octonion[T] {
	for i := range o {
		o[i] *= s
	}
	return o
}

// QuaternionOne returns the multiplicative identity (1, 0, 0, 0).
func QuaternionOne[T Scalar]() Quaternion[T] { return Quaternion[T]{1} }

// OctonionOne returns the multiplicative identity (1, 0, ..., 0).
func OctonionOne[T Scalar]() Octonion[T] { return Octonion[T]{1} }

// OctonionBasis returns the unit e_i, i in [0, 8).
func OctonionBasis[T Scalar](i int) Octonion[T] {
	var o Octonion[T]
	o[i] = 1
	return o
}
