//go:build tinygo || baremetal

// Package board drives the transmitter data line from a microcontroller pin.
package board

import (
	"machine"

	"github.com/ystepanoff/owlsender/transport"
)

// Open configures pin as an output, drives it low and returns it. machine.Pin
// already has the High and Low methods the transmitter needs.
func Open(pin machine.Pin) transport.OutputPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return pin
}
