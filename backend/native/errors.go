package native

import "errors"

// Package errors for the native backend.
var (
	// ErrNilDevice is returned when New is called without a device.
	ErrNilDevice = errors.New("native: nil hal device")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// hal.Device through HalDevice() any.
	ErrNoHALDevice = errors.New("native: provider does not expose a hal device")
)
