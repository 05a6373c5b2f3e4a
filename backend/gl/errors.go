package gl

import (
	"errors"
	"fmt"
)

// Package errors for the OpenGL backend.
var (
	// ErrLibraryNotFound is returned when no OpenGL library can be loaded.
	ErrLibraryNotFound = errors.New("gl: OpenGL library not found")

	// ErrMissingFunction is returned when a required entry point cannot be resolved.
	ErrMissingFunction = errors.New("gl: missing function")

	// ErrNotSupported is returned on platforms where the library cannot be
	// opened directly; supply WithProcAddress instead.
	ErrNotSupported = errors.New("gl: dynamic loading not supported on this platform")
)

// GL error codes reported by glGetError.
const (
	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	OutOfMemory      = 0x0505
)

// Error is a GL error raised by a create call.
type Error struct {
	// Op is the GL entry point that failed (e.g., "glGenBuffers").
	Op string

	// Code is the value returned by glGetError.
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("gl: %s: %s", e.Op, codeName(e.Code))
}

func codeName(code uint32) string {
	switch code {
	case NoError:
		return "no object created"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}
