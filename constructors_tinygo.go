//go:build tinygo || baremetal

// This file is built only for embedded targets.
package owlsender

import (
	"machine"

	"github.com/ystepanoff/owlsender/driver/board"
	"github.com/ystepanoff/owlsender/transport"
)

func NewTransmitter(pin machine.Pin, sensorID byte) *Transmitter {
	return transport.NewTransmitter(board.Open(pin), transport.BusyClock{}, sensorID)
}
