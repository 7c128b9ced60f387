//go:build linux && !tinygo && !baremetal

// Package gpio drives the transmitter data line through the Linux sysfs GPIO
// interface, e.g. on a Raspberry Pi.
package gpio

import (
	"fmt"

	"github.com/davecheney/gpio"

	"github.com/ystepanoff/owlsender/transport"
)

// Pin is an output pin opened through sysfs.
type Pin struct {
	number int
	pin    gpio.Pin
	err    error
}

var _ transport.OutputPin = (*Pin)(nil)

// Open exports the pin, sets it as an output and drives it low.
func Open(number int) (*Pin, error) {
	if number < 0 {
		return nil, fmt.Errorf("gpio %d: negative pin number", number)
	}
	p, err := gpio.OpenPin(number, gpio.ModeOutput)
	if err != nil {
		return nil, fmt.Errorf("open gpio %d: %w", number, err)
	}
	out := Wrap(number, p)
	out.Low()
	if err := out.Err(); err != nil {
		p.Close()
		return nil, err
	}
	return out, nil
}

// Wrap uses an already opened pin as the transmitter output.
func Wrap(number int, p gpio.Pin) *Pin {
	return &Pin{number: number, pin: p}
}

func (p *Pin) High() {
	p.pin.Set()
	p.latch()
}

func (p *Pin) Low() {
	p.pin.Clear()
	p.latch()
}

// latch keeps the first failure; the underlying pin only remembers the last write.
func (p *Pin) latch() {
	if p.err == nil {
		p.err = p.pin.Err()
	}
}

func (p *Pin) Number() int { return p.number }

// Err returns the first failed level change since the previous call and
// clears it. High and Low cannot report errors while a frame is being
// clocked out, so callers check this after every send.
func (p *Pin) Err() error {
	err := p.err
	p.err = nil
	if err != nil {
		return fmt.Errorf("gpio %d: %w", p.number, err)
	}
	return nil
}

// Close leaves the line low and releases the pin.
func (p *Pin) Close() error {
	p.pin.Clear()
	return p.pin.Close()
}
