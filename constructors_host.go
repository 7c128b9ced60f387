//go:build !linux && !tinygo && !baremetal

// This file is built only for hosts without a supported GPIO interface.
package owlsender

import (
	"fmt"
	"runtime"
)

// Open is not available on this platform; use NewDryRun.
func Open(pin int, sensorID byte) (*Transmitter, Output, error) {
	return nil, nil, fmt.Errorf("gpio %d on %s: %w", pin, runtime.GOOS, ErrInvalidPin)
}
