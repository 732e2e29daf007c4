package tensor

import "fmt"

// Tensor is a host-side BHWC tensor. Values are held as float32 but rounded
// through the storage type on every write, so a Float16 tensor holds exactly
// the values a device with half-precision storage would hold.
//
// The slice-of-4 accessors mirror the device tensor contract consumed by
// generated kernels: channels are packed into groups of 4, reads past C are
// zero and writes past C are dropped.
type Tensor struct {
	shape Shape
	dtype DataType
	data  []float32
}

// New allocates a zero-filled tensor.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor{
		shape: shape,
		dtype: dtype,
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor from BHWC row-major data. The data is copied and
// rounded through the storage type.
func FromSlice(data []float32, shape Shape, dtype DataType) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		t.data[i] = dtype.Round(v)
	}
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// DType returns the tensor's storage element type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Data returns the underlying BHWC row-major values.
func (t *Tensor) Data() []float32 {
	return t.data
}

func (t *Tensor) index(b, h, w, c int) int {
	return ((b*t.shape.H+h)*t.shape.W+w)*t.shape.C + c
}

// At returns the value at (b, h, w, c).
func (t *Tensor) At(b, h, w, c int) float32 {
	return t.data[t.index(b, h, w, c)]
}

// Set stores v at (b, h, w, c), rounded through the storage type.
func (t *Tensor) Set(b, h, w, c int, v float32) {
	t.data[t.index(b, h, w, c)] = t.dtype.Round(v)
}

// ReadSlice4 returns the 4-channel group s at spatial (x, y) of batch b.
// Channels beyond C read as zero.
func (t *Tensor) ReadSlice4(b, y, x, s int) [4]float32 {
	var v [4]float32
	for i := 0; i < 4; i++ {
		c := s*4 + i
		if c < t.shape.C {
			v[i] = t.At(b, y, x, c)
		}
	}
	return v
}

// WriteSlice4 stores the 4-channel group s at spatial (x, y) of batch b.
// Channels beyond C are dropped.
func (t *Tensor) WriteSlice4(b, y, x, s int, v [4]float32) {
	for i := 0; i < 4; i++ {
		c := s*4 + i
		if c < t.shape.C {
			t.Set(b, y, x, c, v[i])
		}
	}
}
