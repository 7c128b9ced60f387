package transport

import (
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	proto "github.com/ystepanoff/owlsender/protocol"
)

// Transmitter encodes OWL CM160 messages and clocks them out on a pin.
// It owns the pin exclusively; sends are serialised.
type Transmitter struct {
	mu      sync.Mutex
	pin     OutputPin
	clock   Clock
	message proto.Message
}

// New returns an unconfigured transmitter. Setup must be called before Send.
func New(clock Clock) *Transmitter {
	return &Transmitter{clock: clock}
}

// NewTransmitter returns a transmitter bound to pin and identified by sensorID.
// A nil pin leaves it unconfigured, so Send reports ErrNotConfigured; use New
// and Setup to get ErrInvalidPin up front.
func NewTransmitter(pin OutputPin, clock Clock, sensorID byte) *Transmitter {
	t := New(clock)
	_ = t.Setup(pin, sensorID)
	return t
}

// Setup binds the pin and writes the sensor type and id. Calling it again
// replaces the previous configuration.
func (t *Transmitter) Setup(pin OutputPin, sensorID byte) error {
	if err := t.SetPin(pin); err != nil {
		return err
	}

	t.mu.Lock()
	t.message.SetType()
	t.message.SetID(sensorID)
	t.mu.Unlock()

	return nil
}

func (t *Transmitter) SetPin(pin OutputPin) error {
	if pin == nil {
		return proto.ErrInvalidPin
	}
	t.mu.Lock()
	t.pin = pin
	t.mu.Unlock()
	return nil
}

func (t *Transmitter) SetSensorID(sensorID byte) {
	t.mu.Lock()
	t.message.SetID(sensorID)
	t.mu.Unlock()
}

// Configured reports whether Send can be called.
func (t *Transmitter) Configured() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.configured()
}

func (t *Transmitter) configured() bool {
	return t.pin != nil && t.clock != nil
}

// Message returns a copy of the last encoded message.
func (t *Transmitter) Message() proto.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Send encodes the readings and transmits one frame. It blocks for the whole
// frame (about 115ms) and leaves the line low. There is no acknowledgement.
func (t *Transmitter) Send(realtimeWatts int, accumulatedWh int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.configured() {
		return proto.ErrNotConfigured
	}

	t.message.SetConsumption(realtimeWatts, accumulatedWh)
	t.message.SetChecksum()

	start := time.Now()
	t.sendOregon(t.message[:])
	t.pin.Low()
	elapsed := time.Since(start)

	// Logging only once the line is idle; it must not disturb the waveform.
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{
			"component":   "transmitter",
			"sensor_id":   t.message.ID(),
			"realtime_w":  realtimeWatts,
			"accu_wh":     accumulatedWh,
			"message":     t.message.String(),
			"duration_ms": elapsed.Milliseconds(),
		}).Debug("frame sent")
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("[Transmitter] message: %s", spew.Sdump(t.message))
	}

	return nil
}

// sendOregon transmits preamble, data and postamble in that order.
func (t *Transmitter) sendOregon(data []byte) {
	t.sendPreamble()
	t.sendData(data)
	t.sendPostamble()
}

// sendPreamble sends the sync run of "1" bits.
func (t *Transmitter) sendPreamble() {
	for i := 0; i < proto.PreambleBits; i++ {
		t.sendOne()
	}
}

// sendData sends every byte least significant bit first.
func (t *Transmitter) sendData(data []byte) {
	for _, b := range data {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				t.sendOne()
			} else {
				t.sendZero()
			}
		}
	}
}

// sendPostamble sends the "0" terminator.
func (t *Transmitter) sendPostamble() {
	for i := 0; i < proto.PostambleBits; i++ {
		t.sendZero()
	}
}

// sendZero is an off-to-on transition in the middle of the bit period.
func (t *Transmitter) sendZero() {
	t.pin.Low()
	t.clock.DelayMicroseconds(proto.HalfPeriodMicros)
	t.pin.High()
	t.clock.DelayMicroseconds(proto.HalfPeriodMicros)
}

// sendOne is an on-to-off transition in the middle of the bit period.
func (t *Transmitter) sendOne() {
	t.pin.High()
	t.clock.DelayMicroseconds(proto.HalfPeriodMicros)
	t.pin.Low()
	t.clock.DelayMicroseconds(proto.HalfPeriodMicros)
}
