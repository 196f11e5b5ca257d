// Package cayley implements quaternion and octonion multiplication.
//
// Octonions are built from pairs of quaternions by Cayley–Dickson doubling:
// an octonion x = (a, b) multiplies y = (c, d) as
//
//	x·y = (a·c - d*·b, d·a + b·c*)
//
// where · is the Hamilton product and * the quaternion conjugate. The
// resulting product is neither commutative nor associative.
//
// # Package Structure
//
//   - core: fixed-size Quaternion and Octonion value types and dimension checks
//   - kernels: the quaternion and octonion arithmetic and an opcode Catalog
//   - modular: octonions over the prime field F_q with arbitrary-precision components
//   - cmd: the omul example program
//
// # Basic Usage
//
//	a := core.Octonion[float64]{0, 0, 0, 2, 2, 1, 4, 0}
//	b := core.Octonion[float64]{4, 2, 4, 3, 1, 2, 2, 0}
//	z := kernels.OctonionMultiply(b, a) // (-18, 5, -4, 2, -10, 16, 25, 0)
//
// Slices of the wrong length are rejected with core.ErrInvalidDimension:
//
//	z, err := kernels.OctonionMultiplySlice(b[:7], a[:])
//	if errors.Is(err, core.ErrInvalidDimension) {
//	    ...
//	}
package cayley
