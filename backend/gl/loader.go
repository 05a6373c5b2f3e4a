//go:build (darwin || freebsd || linux) && !android && !ios

package gl

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
	"github.com/gogpu/gpures"
)

// defaultLibraries returns the platform OpenGL library candidates in the
// order Open tries them.
func defaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	default:
		return []string{"libGL.so.1", "libGL.so", "libOpenGL.so.0"}
	}
}

// openLibrary loads the first available library and returns a lookup that
// resolves symbols from it.
func openLibrary(paths []string) (ProcAddressFunc, error) {
	for _, path := range paths {
		lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			continue
		}
		gpures.Logger().Debug("gl: library loaded", "path", path)
		return func(name string) uintptr {
			addr, err := purego.Dlsym(lib, name)
			if err != nil {
				return 0
			}
			return addr
		}, nil
	}
	return nil, fmt.Errorf("%w: tried %v", ErrLibraryNotFound, paths)
}
