//go:build windows

package device

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
	"k8s.io/klog/v2"
)

// FromAdapter maps a WebGPU adapter description onto a DeviceInfo. The device
// string usually carries the family ("Adreno (TM) 640"); when it does not, the
// vendor string ("Qualcomm", "ARM") still selects the family.
func FromAdapter(info *wgpu.AdapterInfo) DeviceInfo {
	if info == nil {
		return DeviceInfo{}
	}
	d := FromName(info.Device)
	if d.Vendor == VendorUnknown {
		v := FromName(info.Vendor)
		v.Name = info.Device
		d = v
	}
	return d
}

// Detect probes the default GPU adapter through WebGPU and maps it onto a
// DeviceInfo. Hosts that manage their own OpenCL context should build the
// DeviceInfo from the OpenCL device name instead.
func Detect() (info DeviceInfo, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			info = DeviceInfo{}
			err = fmt.Errorf("device: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, adapterErr := instance.RequestAdapter(nil)
	if adapterErr != nil {
		return DeviceInfo{}, fmt.Errorf("device: no adapters available: %w", adapterErr)
	}
	defer adapter.Release()

	adapterInfo := adapter.GetInfo()
	info = FromAdapter(&adapterInfo)
	klog.V(2).Infof("device: detected %s (%s)", info.Name, info.Vendor)
	return info, nil
}
