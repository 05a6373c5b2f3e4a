package backend

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/backend/gl"
	"github.com/gogpu/gpures/backend/memory"
	"github.com/gogpu/gpures/backend/native"
	"github.com/gogpu/gpures/factory"
)

// Registry is the backend registration table.
type Registry = factory.Registry[gpures.Backend]

// NewRegistry returns a registry holding the built-in backends.
// The native backend is registered only when provider is non-nil; it reads
// the device provider from it each time it is constructed.
func NewRegistry(provider *factory.Provider[gpucontext.DeviceProvider]) *Registry {
	r := factory.New[gpures.Backend]()
	r.RegisterModules(memory.Module, gl.Module)
	if provider != nil {
		r.RegisterModules(native.Module(provider))
	}
	return r
}

// Available returns the registered backend names in priority order.
func Available(r *Registry) []string {
	return r.Names()
}

// Open constructs the backend registered under name.
func Open(r *Registry, name string) (gpures.Backend, error) {
	b, ok := r.Create(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name, Available: r.Names()}
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotAvailable, name)
	}
	gpures.Logger().Debug("backend: opened", "name", name)
	return b, nil
}

// Default returns the first backend, in priority order, that can be
// constructed.
func Default(r *Registry) (gpures.Backend, error) {
	for i := 0; i < r.Len(); i++ {
		b, ok := r.CreateAt(i)
		if !ok {
			break
		}
		if b != nil {
			gpures.Logger().Debug("backend: selected default", "name", b.Name())
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}

// MustDefault returns the default backend or panics.
func MustDefault(r *Registry) gpures.Backend {
	b, err := Default(r)
	if err != nil {
		panic(err)
	}
	return b
}
