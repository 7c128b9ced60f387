package transport

import "time"

// OutputPin is the digital output wired to the RF transmitter's data line.
type OutputPin interface {
	High()
	Low()
}

// Clock provides the blocking delay between level changes.
type Clock interface {
	DelayMicroseconds(us uint32)
}

// BusyClock spins on the monotonic clock instead of sleeping, so the
// scheduler cannot stretch a half period.
type BusyClock struct{}

func (BusyClock) DelayMicroseconds(us uint32) {
	deadline := time.Now().Add(time.Duration(us) * time.Microsecond)
	for time.Now().Before(deadline) {
	}
}
