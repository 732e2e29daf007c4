// Copyright 2026 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cl exposes the OpenCL kernel generators of the Flint inference
// delegate.
//
// An operation is constructed once from an OperationDef and a DeviceInfo and
// is immutable afterwards: the kernel source and workgroup never change. Per
// dispatch, the host binds the runtime tensor shapes and calls BindArguments
// to refresh the scalar launch arguments.
//
//	def := cl.OperationDef{
//	    Precision: cl.PrecisionF32,
//	    Src:       []tensor.Descriptor{{DataType: tensor.Float32, Layout: tensor.LayoutBHWC}},
//	    Dst:       []tensor.Descriptor{{DataType: tensor.Float32, Layout: tensor.LayoutBHWC}},
//	}
//	m := cl.NewMean(def, device.FromName("Adreno (TM) 640"))
//	source := m.Code()                  // compile with the host's OpenCL context
//	m.SetSrcShape(srcShape)             // per dispatch
//	m.SetDstShape(dstShape)
//	err := m.BindArguments(m.Args())
//	grid := m.GridSize()
package cl

import (
	internalcl "github.com/flint-ml/flint/internal/cl"
	"github.com/flint-ml/flint/internal/device"
)

// Int3 is an integer triple used for workgroup shapes and NDRange grids.
type Int3 = internalcl.Int3

// Precision is the calculation precision of a generated kernel.
type Precision = internalcl.Precision

// Supported precisions.
const (
	PrecisionF32 = internalcl.PrecisionF32
	PrecisionF16 = internalcl.PrecisionF16
)

// OperationDef describes one GPU operation.
type OperationDef = internalcl.OperationDef

// Arguments is the named scalar table of one operation.
type Arguments = internalcl.Arguments

// Mean is the spatial mean reduction operation: (B, H, W, C) -> (B, 1, 1, C).
type Mean = internalcl.Mean

// NewMean builds the mean operation for the given definition and device.
func NewMean(def OperationDef, dev device.DeviceInfo) *Mean {
	return internalcl.NewMean(def, dev)
}
