// Copyright 2026 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the BHWC tensor model consumed by the Flint kernel
// generators.
//
// # Overview
//
// Flint describes tensors the way mobile GPU delegates store them: 4-D BHWC
// shapes whose channels are packed into slices of 4. This package provides:
//   - Shape: BHWC extents with slice arithmetic
//   - Descriptor: storage type plus axis layout, the unit of operation
//     definitions
//   - Tensor: a host-side tensor with storage-faithful rounding, used to
//     verify generated kernels
//
// # Basic Usage
//
//	src, err := tensor.FromSlice(data, tensor.Shape{B: 1, H: 4, W: 4, C: 8}, tensor.Float32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	slices := src.Shape().Slices() // 2
//
// # Storage Types
//
// Float32 and Float16 are supported. A Float16 tensor rounds every write
// through IEEE half precision, so host values match what a half-precision
// device store would produce.
package tensor
