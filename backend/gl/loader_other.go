//go:build !((darwin || freebsd || linux) && !android && !ios)

package gl

func defaultLibraries() []string { return nil }

func openLibrary([]string) (ProcAddressFunc, error) {
	return nil, ErrNotSupported
}
