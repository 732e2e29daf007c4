// Package device describes the GPU a kernel is generated for. The kernel
// generators only need the vendor family and, for Adreno and Mali, the
// generation; everything else about the device is handled by the host runtime.
package device

import (
	"strconv"
	"strings"
)

// Vendor identifies a GPU vendor family.
type Vendor int

// Known vendor families. Families without dedicated tuning fall through to the
// generator defaults, so an unknown vendor is never an error.
const (
	VendorUnknown Vendor = iota
	VendorAdreno
	VendorMali
	VendorNvidia
	VendorAMD
	VendorIntel
	VendorPowerVR
	VendorApple
)

// String returns a human-readable name for the vendor.
func (v Vendor) String() string {
	switch v {
	case VendorAdreno:
		return "Adreno"
	case VendorMali:
		return "Mali"
	case VendorNvidia:
		return "Nvidia"
	case VendorAMD:
		return "AMD"
	case VendorIntel:
		return "Intel"
	case VendorPowerVR:
		return "PowerVR"
	case VendorApple:
		return "Apple"
	default:
		return "unknown"
	}
}

// AdrenoInfo carries the Adreno model number, e.g. 330, 540, 640.
// A zero model number means the generation is unknown.
type AdrenoInfo struct {
	ModelNumber int
}

// IsAdreno3xx reports whether the device is a third-generation Adreno part.
func (a AdrenoInfo) IsAdreno3xx() bool {
	return a.ModelNumber >= 300 && a.ModelNumber < 400
}

// IsAdreno4xx reports whether the device is a fourth-generation Adreno part.
func (a AdrenoInfo) IsAdreno4xx() bool {
	return a.ModelNumber >= 400 && a.ModelNumber < 500
}

// IsAdreno5xx reports whether the device is a fifth-generation Adreno part.
func (a AdrenoInfo) IsAdreno5xx() bool {
	return a.ModelNumber >= 500 && a.ModelNumber < 600
}

// IsAdreno6xxOrHigher reports whether the device is Adreno 6xx or newer.
func (a AdrenoInfo) IsAdreno6xxOrHigher() bool {
	return a.ModelNumber >= 600
}

// MaliInfo carries the Mali model, e.g. "T880" or "G76". The T6xx, T7xx and
// T8xx Midgard parts prefer smaller workgroups than the newer G series.
type MaliInfo struct {
	Model string
}

// IsMaliT6xx reports whether the device is a Mali T6xx part.
func (m MaliInfo) IsMaliT6xx() bool {
	return strings.HasPrefix(m.Model, "T6")
}

// IsMaliT7xx reports whether the device is a Mali T7xx part.
func (m MaliInfo) IsMaliT7xx() bool {
	return strings.HasPrefix(m.Model, "T7")
}

// IsMaliT8xx reports whether the device is a Mali T8xx part.
func (m MaliInfo) IsMaliT8xx() bool {
	return strings.HasPrefix(m.Model, "T8")
}

// DeviceInfo identifies the target device family for kernel generation.
// The zero value is a valid unknown device.
type DeviceInfo struct {
	Name   string
	Vendor Vendor
	Adreno AdrenoInfo
	Mali   MaliInfo
}

// IsAdreno reports whether the device is a Qualcomm Adreno GPU.
func (d DeviceInfo) IsAdreno() bool {
	return d.Vendor == VendorAdreno
}

// IsMali reports whether the device is an ARM Mali GPU.
func (d DeviceInfo) IsMali() bool {
	return d.Vendor == VendorMali
}

// FromName parses an OpenCL device name string such as "Adreno (TM) 640",
// "Mali-T880" or "Mali-G76" into a DeviceInfo. Unrecognized names yield an
// unknown device, which selects the generator defaults.
func FromName(name string) DeviceInfo {
	d := DeviceInfo{Name: name}
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "adreno") || strings.Contains(lower, "qualcomm"):
		d.Vendor = VendorAdreno
		d.Adreno.ModelNumber = trailingNumber(name)
	case strings.Contains(lower, "mali") || strings.Contains(lower, "arm"):
		d.Vendor = VendorMali
		d.Mali.Model = maliModel(name)
	case strings.Contains(lower, "nvidia") || strings.Contains(lower, "geforce") || strings.Contains(lower, "quadro"):
		d.Vendor = VendorNvidia
	case strings.Contains(lower, "amd") || strings.Contains(lower, "radeon"):
		d.Vendor = VendorAMD
	case strings.Contains(lower, "intel"):
		d.Vendor = VendorIntel
	case strings.Contains(lower, "powervr") || strings.Contains(lower, "imagination"):
		d.Vendor = VendorPowerVR
	case strings.Contains(lower, "apple"):
		d.Vendor = VendorApple
	}
	return d
}

// trailingNumber extracts the last run of digits in s, e.g. 640 from
// "Adreno (TM) 640". Returns 0 when s carries no digits.
func trailingNumber(s string) int {
	end := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] >= '0' && s[i] <= '9' {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return 0
	}
	start := end - 1
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0
	}
	return n
}

// maliModel extracts the model token after "Mali-", e.g. "T880" from
// "Mali-T880" or "G76" from "ARM Mali-G76 MC4".
func maliModel(s string) string {
	lower := strings.ToLower(s)
	i := strings.Index(lower, "mali-")
	if i < 0 {
		return ""
	}
	rest := s[i+len("mali-"):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return ""
	}
	return strings.ToUpper(rest[:1]) + rest[1:]
}
