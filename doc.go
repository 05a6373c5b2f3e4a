// Package gpures provides ownership wrappers for GPU object handles.
//
// # Overview
//
// Backing rendering systems (OpenGL, WebGPU HAL, or the in-process memory
// backend) hand out opaque integer names for buffers, textures, framebuffers
// and other objects. Every name obtained through this package is destroyed
// exactly once: a [Set] owns N handles of a single [Kind], an [Object] owns
// exactly one.
//
// # Quick Start
//
//	b := memory.New()
//	defer b.Close()
//
//	bufs, err := gpures.NewBuffers(b, 3) // one batch create call
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer bufs.Destroy()                 // one batch destroy call
//
// # Ownership
//
// Handles are never duplicated. Ownership moves with [Set.Move] or
// [Set.MoveFrom]; the source is left holding [Null] handles and its Destroy
// becomes a no-op. [Object.Release] detaches a handle from tracking and
// [AdoptObject] takes ownership of one obtained elsewhere.
//
// # Backends
//
// A backing system implements [Backend], returning a [Traits] per kind:
//
//   - backend/memory: sequential handles with call counters (tests, tools)
//   - backend/gl: OpenGL loaded at runtime through purego
//   - backend/native: Pure Go WebGPU HAL (gogpu/wgpu)
//
// Backends are selected through the backend package, which is built on the
// priority-ordered registry in package factory.
//
// # Concurrency
//
// A single Set or Object must not be mutated from several goroutines at once.
// Distinct wrappers may be used concurrently when the backing system allows
// concurrent create and destroy calls.
package gpures
