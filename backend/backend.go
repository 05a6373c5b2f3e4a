package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a registered backend cannot be
	// constructed, or when no backend at all can.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// BackendNotFoundError is returned by Open for names that were never
// registered.
type BackendNotFoundError struct {
	Name      string
	Available []string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("backend: %q not registered (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
