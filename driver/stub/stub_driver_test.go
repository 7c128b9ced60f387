package stub

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proto "github.com/ystepanoff/owlsender/protocol"
	"github.com/ystepanoff/owlsender/transport"
)

func TestLine_MergesPulses(t *testing.T) {
	l := New()
	l.High()
	l.DelayMicroseconds(488)
	l.High()
	l.DelayMicroseconds(488)
	l.Low()
	l.DelayMicroseconds(100)

	want := []Pulse{{High: true, Micros: 976}, {High: false, Micros: 100}}
	if diff := cmp.Diff(want, l.Pulses()); diff != "" {
		t.Errorf("pulses mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, l.Writes())
	assert.False(t, l.Level())

	_, ok := l.Bits()
	assert.False(t, ok, "100us is not a half period")

	l.Reset()
	assert.Empty(t, l.Pulses())
	assert.Zero(t, l.Elapsed())
}

func TestLine_RecordsFrame(t *testing.T) {
	l := New()
	tx := transport.NewTransmitter(l, l, 0x12)
	require.NoError(t, tx.Send(1000, 50000))

	msg := tx.Message()
	bits, ok := l.Bits()
	require.True(t, ok)
	if diff := cmp.Diff(proto.EncodeFrame(msg[:]), bits); diff != "" {
		t.Errorf("bits mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, proto.FrameDuration, l.Elapsed())
	assert.Equal(t, 2*proto.FrameBits+1, l.Writes())
	assert.False(t, l.Level(), "line must idle low")
}
