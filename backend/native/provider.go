package native

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/factory"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by device providers (e.g., gogpu.App) that
// expose their HAL device.
type halProvider interface {
	HalDevice() any
}

// FromProvider creates a backend on the hal device shared by provider.
func FromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Backend, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return New(device, opts...)
}

// Module returns a registration routine for the native backend. The
// constructor reads the device provider from p each time it runs; it yields
// nil while p is empty or when the provider exposes no hal device.
func Module(p *factory.Provider[gpucontext.DeviceProvider], opts ...Option) factory.Module[gpures.Backend] {
	open := func(provider gpucontext.DeviceProvider) gpures.Backend {
		b, err := FromProvider(provider, opts...)
		if err != nil {
			gpures.Logger().Warn("native: backend unavailable", "err", err)
			return nil
		}
		return b
	}
	ctor := factory.Adapt(p, open)
	return func(r *factory.Registry[gpures.Backend]) {
		r.Register(Name, func() gpures.Backend {
			if !p.Installed() {
				gpures.Logger().Warn("native: no device provider installed")
				return nil
			}
			return ctor()
		}, Priority)
	}
}
