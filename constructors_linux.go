//go:build linux && !tinygo && !baremetal

// This file is built only for Linux hosts with sysfs GPIO.
package owlsender

import (
	"github.com/ystepanoff/owlsender/driver/gpio"
	"github.com/ystepanoff/owlsender/transport"
)

// Open exports the given GPIO pin and returns a configured transmitter along
// with the pin, which reports write failures and must be closed.
func Open(pin int, sensorID byte) (*Transmitter, Output, error) {
	p, err := gpio.Open(pin)
	if err != nil {
		return nil, nil, err
	}
	return transport.NewTransmitter(p, transport.BusyClock{}, sensorID), p, nil
}
