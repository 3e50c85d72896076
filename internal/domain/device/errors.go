package device

import "errors"

// Device domain errors
var (
	ErrDeviceNotFound = errors.New("device not found")
)
