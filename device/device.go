// Copyright 2026 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device identifies the GPU a kernel is generated for.
//
// The kernel generators only need the vendor family and, for Adreno and Mali
// parts, the generation. Hosts that manage their own OpenCL context build the
// DeviceInfo from the device name string:
//
//	dev := device.FromName("Adreno (TM) 640")
//
// Unknown devices are valid and select the generator defaults; construction
// never fails on a device Flint has no tuning for.
package device

import "github.com/flint-ml/flint/internal/device"

// DeviceInfo identifies the target device family for kernel generation.
type DeviceInfo = device.DeviceInfo

// Vendor identifies a GPU vendor family.
type Vendor = device.Vendor

// Known vendor families.
const (
	VendorUnknown = device.VendorUnknown
	VendorAdreno  = device.VendorAdreno
	VendorMali    = device.VendorMali
	VendorNvidia  = device.VendorNvidia
	VendorAMD     = device.VendorAMD
	VendorIntel   = device.VendorIntel
	VendorPowerVR = device.VendorPowerVR
	VendorApple   = device.VendorApple
)

// AdrenoInfo carries the Adreno model number.
type AdrenoInfo = device.AdrenoInfo

// MaliInfo carries the Mali model.
type MaliInfo = device.MaliInfo

// FromName parses an OpenCL device name string into a DeviceInfo.
func FromName(name string) DeviceInfo {
	return device.FromName(name)
}
