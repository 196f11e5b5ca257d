package core

import "fmt"

// Component counts of the fixed-dimension algebras
const (
	QuaternionDim = 4
	OctonionDim   = 2 * QuaternionDim
)

// checkDim rejects a slice whose length is not exactly want
func checkDim(kind string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s has %d components, want %d: %w", kind, got, want, ErrInvalidDimension)
	}
	return nil
}

// QuaternionFrom copies a 4-component slice into a Quaternion.
// Any other length fails with ErrInvalidDimension.
func QuaternionFrom[T Scalar](v []T) (Quaternion[T], error) {
	var q Quaternion[T]
	if err := checkDim("quaternion", len(v), QuaternionDim); err != nil {
		return q, err
	}
	copy(q[:], v)
	return q, nil
}

// OctonionFrom copies an 8-component slice into an Octonion.
// Any other length fails with ErrInvalidDimension.
func OctonionFrom[T Scalar](v []T) (Octonion[T], error) {
	var o Octonion[T]
	if err := checkDim("octonion", len(v), OctonionDim); err != nil {
		return o, err
	}
	copy(o[:], v)
	return o, nil
}

// Split returns the two quaternion halves (a, b) of o
func (o Octonion[T]) Split() (a, b Quaternion[T]) {
	copy(a[:], o[:QuaternionDim])
	copy(b[:], o[QuaternionDim:])
	return a, b
}

// Join concatenates a and b into an Octonion
func Join[T Scalar](a, b Quaternion[T]) Octonion[T] {
	var o Octonion[T]
	copy(o[:QuaternionDim], a[:])
	copy(o[QuaternionDim:], b[:])
	return o
}

// Slice returns a freshly allocated copy of the components.
func (q Quaternion[T]) Slice() []T {
	out := make([]T, QuaternionDim)
	copy(out, q[:])
	return out
}

// Slice returns a freshly allocated copy of the components.
func (o Octonion[T]) Slice() []T {
	out := make([]T, OctonionDim)
	copy(out, o[:])
	return out
}
