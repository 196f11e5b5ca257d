package kernels

import (
	"errors"
	"fmt"
)

// KernelFn computes a result from one or two float64 operands.
// Unary kernels ignore y.
type KernelFn func(x, y []float64) ([]float64, error)

// Op is a kernel operation code
type Op uint8

// Kernel operation codes
const (
	OpNoop           Op = 0x00
	OpQuaternionMul  Op = 0x01
	OpQuaternionConj Op = 0x02
	OpOctonionMul    Op = 0x03
	OpOctonionConj   Op = 0x04
)

// ErrUnknownOp reports an operation code with no registered kernel.
var ErrUnknownOp = errors.New("unknown kernel op")

// Catalog maps opcodes to kernel implementations
var Catalog = [256]KernelFn{
	OpNoop:           noop,
	OpQuaternionMul:  QuaternionMultiplySlice,
	OpQuaternionConj: unary(QuaternionConjugateSlice),
	OpOctonionMul:    OctonionMultiplySlice,
	OpOctonionConj:   unary(OctonionConjugateSlice),
}

// Apply dispatches op through the Catalog.
func Apply(op Op, x, y []float64) ([]float64, error) {
	fn := Catalog[op]
	if fn == nil {
		return nil, fmt.Errorf("op 0x%02x: %w", uint8(op), ErrUnknownOp)
	}
	return fn(x, y)
}

// String names the opcode for diagnostics.
func (op Op) String() string {
	switch op {
	case OpNoop:
		return "noop"
	case OpQuaternionMul:
		return "qmul"
	case OpQuaternionConj:
		return "qconj"
	case OpOctonionMul:
		return "omul"
	case OpOctonionConj:
		return "oconj"
	}
	return fmt.Sprintf("op(0x%02x)", uint8(op))
}

// noop returns a copy of x
func noop(x, _ []float64) ([]float64, error) {
	out := make([]float64, len(x))
	copy(out, x)
	return out, nil
}

func unary(fn func([]float64) ([]float64, error)) KernelFn {
	return func(x, _ []float64) ([]float64, error) { return fn(x) }
}
