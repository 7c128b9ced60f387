package protocol

import "errors"

var (
	ErrNotConfigured   = errors.New("transmitter not configured")
	ErrInvalidPin      = errors.New("invalid output pin")
	ErrInvalidSensorID = errors.New("invalid sensor id (valid range: 0-255)")
)
