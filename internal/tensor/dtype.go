// Package tensor provides the BHWC tensor model used by the Flint kernel
// generators: shapes, element types, layouts and a host-side tensor that
// mirrors device storage for verifying generated kernels.
package tensor

import "github.com/x448/float16"

// DataType represents the storage element type of a tensor.
type DataType int

// Supported storage types. Kernels always accumulate in float regardless of
// storage type; DataType only governs how values are read and written.
const (
	Float32 DataType = iota
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float16:
		return 2
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// Round rounds v the way a device store of this type would round it.
// Float16 goes through IEEE half precision; Float32 is returned unchanged.
func (dt DataType) Round(v float32) float32 {
	if dt == Float16 {
		return float16.Fromfloat32(v).Float32()
	}
	return v
}
