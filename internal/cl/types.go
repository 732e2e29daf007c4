// Package cl generates OpenCL-C compute kernels and their host-side launch
// parameters for the Flint inference delegate. Generation is pure: an
// operation is constructed once from an OperationDef and a DeviceInfo, and the
// resulting kernel source and workgroup never change. Only the scalar launch
// arguments are recomputed per dispatch, because runtime shapes can change.
package cl

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Int3 is an integer triple used for workgroup shapes and NDRange grids.
type Int3 struct {
	X, Y, Z int
}

// String returns the triple as "XxYxZ".
func (v Int3) String() string {
	return fmt.Sprintf("%dx%dx%d", v.X, v.Y, v.Z)
}

// Precision is the calculation precision of a generated kernel.
type Precision int

// Supported precisions. Reductions accumulate in float regardless of
// precision; Precision governs the FLT types of loads and stores.
const (
	PrecisionF32 Precision = iota
	PrecisionF16
)

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionF32:
		return "f32"
	case PrecisionF16:
		return "f16"
	default:
		return "unknown"
	}
}

// OperationDef describes one GPU operation: its calculation precision and the
// descriptors of its source and destination tensors.
type OperationDef struct {
	Precision Precision
	Src       []tensor.Descriptor
	Dst       []tensor.Descriptor
}
