package stub

import (
	"sync"
	"time"

	proto "github.com/ystepanoff/owlsender/protocol"
	"github.com/ystepanoff/owlsender/transport"
)

// Pulse is a stretch of time the line spent at one level.
type Pulse struct {
	High   bool
	Micros uint32
}

// Line is a host-side OutputPin and Clock pair. Delays are virtual: nothing
// sleeps, the line just accounts the time at the current level.
type Line struct {
	mu      sync.Mutex
	level   bool
	writes  int
	pulses  []Pulse
	elapsed time.Duration
}

var (
	_ transport.OutputPin = (*Line)(nil)
	_ transport.Clock     = (*Line)(nil)
)

func New() *Line { return &Line{} }

func (l *Line) High() { l.set(true) }
func (l *Line) Low()  { l.set(false) }

func (l *Line) set(level bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.writes++
}

func (l *Line) DelayMicroseconds(us uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.elapsed += time.Duration(us) * time.Microsecond
	if n := len(l.pulses); n > 0 && l.pulses[n-1].High == l.level {
		l.pulses[n-1].Micros += us
		return
	}
	l.pulses = append(l.pulses, Pulse{High: l.level, Micros: us})
}

// Level returns the current output level.
func (l *Line) Level() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Writes returns the number of High/Low calls.
func (l *Line) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}

// Elapsed returns the virtual time spent in delays.
func (l *Line) Elapsed() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.elapsed
}

// Pulses returns a copy of the recorded waveform.
func (l *Line) Pulses() []Pulse {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Pulse, len(l.pulses))
	copy(out, l.pulses)
	return out
}

// Bits reads the waveform back as logical bits, one per pair of half periods:
// high then low is a 1, low then high is a 0. Returns false if the waveform
// is not a whole number of bit periods.
func (l *Line) Bits() ([]bool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var halves []bool
	for _, p := range l.pulses {
		if p.Micros%proto.HalfPeriodMicros != 0 {
			return nil, false
		}
		for i := uint32(0); i < p.Micros/proto.HalfPeriodMicros; i++ {
			halves = append(halves, p.High)
		}
	}
	if len(halves)%2 != 0 {
		return nil, false
	}

	bits := make([]bool, 0, len(halves)/2)
	for i := 0; i < len(halves); i += 2 {
		if halves[i] == halves[i+1] {
			return nil, false
		}
		bits = append(bits, halves[i])
	}
	return bits, true
}

// Reset clears the recording.
func (l *Line) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = false
	l.writes = 0
	l.pulses = nil
	l.elapsed = 0
}
