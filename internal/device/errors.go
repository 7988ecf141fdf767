package device

import "errors"

// Domain-specific errors for the device package.
var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrTokenRequired   = errors.New("push token is required")
	ErrInvalidPlatform = errors.New("invalid platform")
)
