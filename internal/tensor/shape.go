package tensor

import "fmt"

// Shape represents the extents of a 4-D BHWC tensor.
type Shape struct {
	B int // batch
	H int // height
	W int // width
	C int // channels
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	return s.B * s.H * s.W * s.C
}

// SpatialSize returns the number of (H, W) positions.
func (s Shape) SpatialSize() int {
	return s.H * s.W
}

// Slices returns the number of packed 4-channel slices, ceil(C/4).
func (s Shape) Slices() int {
	return (s.C + 3) / 4
}

// Validate checks that all extents are positive.
func (s Shape) Validate() error {
	if s.B <= 0 || s.H <= 0 || s.W <= 0 || s.C <= 0 {
		return fmt.Errorf("invalid shape %v: all extents must be > 0", s)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// String returns the shape as "BxHxWxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", s.B, s.H, s.W, s.C)
}
