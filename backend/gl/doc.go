// Package gl provides an OpenGL backing system for gpures.
//
// The OpenGL library is loaded at runtime with purego, so no cgo toolchain
// is required. Functions are resolved either from the system library
// (libGL on Linux, the OpenGL framework on macOS) or through a
// [ProcAddressFunc] supplied by the windowing library that owns the context:
//
//	b, err := gl.Open(gl.WithProcAddress(glfw.GetProcAddress))
//	if err != nil {
//		log.Fatal(err)
//	}
//	vaos, err := gpures.NewVertexArrays(b, 4) // one glGenVertexArrays call
//
// All calls must be made on the goroutine (locked OS thread) that owns the
// current GL context, which is a property of OpenGL rather than of gpures.
//
// Shader objects need a stage at creation time and are therefore adopt-only:
// create them with glCreateShader and hand the name to gpures.AdoptShader.
package gl
