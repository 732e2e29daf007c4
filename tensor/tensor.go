// Copyright 2026 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/flint-ml/flint/internal/tensor"

// Shape represents the extents of a 4-D BHWC tensor.
type Shape = tensor.Shape

// DataType represents the storage element type of a tensor.
type DataType = tensor.DataType

// Supported storage types.
const (
	Float32 = tensor.Float32
	Float16 = tensor.Float16
)

// Axis identifies one dimension of a tensor.
type Axis = tensor.Axis

// Tensor axes in BHWC order.
const (
	Batch    = tensor.Batch
	Height   = tensor.Height
	Width    = tensor.Width
	Channels = tensor.Channels
)

// Layout describes which axes a tensor descriptor carries.
type Layout = tensor.Layout

// Supported layouts. LayoutHWC implies a batch of 1.
const (
	LayoutHWC  = tensor.LayoutHWC
	LayoutBHWC = tensor.LayoutBHWC
)

// Descriptor describes one tensor of an operation definition.
type Descriptor = tensor.Descriptor

// Tensor is a host-side BHWC tensor with storage-faithful rounding.
type Tensor = tensor.Tensor

// New allocates a zero-filled tensor.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.New(shape, dtype)
}

// FromSlice creates a tensor from BHWC row-major data.
func FromSlice(data []float32, shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.FromSlice(data, shape, dtype)
}
