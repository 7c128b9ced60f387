// Package owlsender emits OWL CM160 power readings as Oregon Scientific v2.1
// frames on a 433MHz OOK transmitter wired to a single output pin.
package owlsender

import (
	"github.com/ystepanoff/owlsender/driver/stub"
	"github.com/ystepanoff/owlsender/protocol"
	"github.com/ystepanoff/owlsender/transport"
)

// The hardware constructors are split into build-tag specific files:
// - constructors_tinygo.go - microcontrollers (//go:build tinygo || baremetal)
// - constructors_linux.go  - Linux sysfs GPIO (//go:build linux && !tinygo && !baremetal)
// - constructors_host.go   - everything else, no hardware output

type (
	Message     = protocol.Message
	Transmitter = transport.Transmitter
	OutputPin   = transport.OutputPin
	Clock       = transport.Clock
)

// Output is the hardware line behind a transmitter returned by Open. Level
// changes cannot fail mid-frame, so Err must be checked after every Send.
type Output interface {
	Err() error
	Close() error
}

var (
	ErrNotConfigured   = protocol.ErrNotConfigured
	ErrInvalidPin      = protocol.ErrInvalidPin
	ErrInvalidSensorID = protocol.ErrInvalidSensorID
)

const (
	MessageSize   = protocol.MessageSize
	HalfPeriod    = protocol.HalfPeriod
	FrameDuration = protocol.FrameDuration
)

// NewDryRun returns a transmitter that records its waveform on a stub line
// instead of driving hardware.
func NewDryRun(sensorID byte) (*Transmitter, *stub.Line) {
	line := stub.New()
	return transport.NewTransmitter(line, line, sensorID), line
}
