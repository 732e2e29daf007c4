package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name   string
		vendor Vendor
	}{
		{"Adreno (TM) 330", VendorAdreno},
		{"QUALCOMM Adreno(TM)", VendorAdreno},
		{"Mali-T880", VendorMali},
		{"ARM Mali-G76 MC4", VendorMali},
		{"NVIDIA GeForce RTX 3060", VendorNvidia},
		{"gfx90c [AMD Radeon Graphics]", VendorAMD},
		{"Intel(R) UHD Graphics 630", VendorIntel},
		{"PowerVR Rogue GE8320", VendorPowerVR},
		{"Apple M2", VendorApple},
		{"llvmpipe (LLVM 15.0.7)", VendorUnknown},
	}
	for _, tt := range tests {
		d := FromName(tt.name)
		assert.Equal(t, tt.vendor, d.Vendor, "vendor for %q", tt.name)
		assert.Equal(t, tt.name, d.Name)
	}
}

func TestAdrenoGenerations(t *testing.T) {
	d := FromName("Adreno (TM) 330")
	assert.Equal(t, 330, d.Adreno.ModelNumber)
	assert.True(t, d.Adreno.IsAdreno3xx())
	assert.False(t, d.Adreno.IsAdreno4xx())

	d = FromName("Adreno (TM) 640")
	assert.Equal(t, 640, d.Adreno.ModelNumber)
	assert.False(t, d.Adreno.IsAdreno3xx())
	assert.True(t, d.Adreno.IsAdreno6xxOrHigher())

	// No model number: not a 3xx part, falls through to the newer defaults.
	d = FromName("QUALCOMM Adreno(TM)")
	assert.Equal(t, 0, d.Adreno.ModelNumber)
	assert.False(t, d.Adreno.IsAdreno3xx())
}

func TestMaliGenerations(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		midgard bool
	}{
		{"Mali-T604", "T604", true},
		{"Mali-T760", "T760", true},
		{"Mali-T880", "T880", true},
		{"Mali-G52", "G52", false},
		{"ARM Mali-G76 MC4", "G76", false},
	}
	for _, tt := range tests {
		d := FromName(tt.name)
		assert.Equal(t, tt.model, d.Mali.Model, "model for %q", tt.name)
		old := d.Mali.IsMaliT6xx() || d.Mali.IsMaliT7xx() || d.Mali.IsMaliT8xx()
		assert.Equal(t, tt.midgard, old, "generation for %q", tt.name)
	}
}

func TestZeroValueIsUnknown(t *testing.T) {
	var d DeviceInfo
	assert.False(t, d.IsAdreno())
	assert.False(t, d.IsMali())
	assert.Equal(t, "unknown", d.Vendor.String())
}
