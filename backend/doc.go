// Package backend selects a gpures backing system at runtime.
//
// Backing systems register themselves into a factory.Registry through their
// Module functions. NewRegistry wires the built-in ones in priority order:
//
//   - "native": WebGPU through gogpu/wgpu hal (needs a device provider)
//   - "gl": OpenGL loaded at runtime with purego
//   - "memory": in-process handles, always available
//
// # Backend Selection
//
// Use Default to get the best available backend, or Open to request a
// specific backend by name:
//
//	r := backend.NewRegistry(nil)
//
//	// Get the default (best available) backend
//	b, err := backend.Default(r)
//
//	// Or request a specific backend
//	b, err := backend.Open(r, "memory")
//
// A backend constructor may yield nil when its system is missing (no GL
// library, no device provider); Default then falls through to the next one.
package backend
