package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendByteBits(t *testing.T) {
	got := AppendByteBits(nil, 0b10110000)
	assert.Equal(t, []bool{false, false, false, false, true, true, false, true}, got)
}

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty payload", data: nil},
		{name: "single byte", data: []byte{0b10110000}},
		{name: "full message", data: make([]byte, MessageSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := EncodeFrame(tt.data)
			require.Len(t, bits, PreambleBits+len(tt.data)*8+PostambleBits)

			for i := 0; i < PreambleBits; i++ {
				assert.True(t, bits[i], "preamble bit %d", i)
			}
			for i := len(bits) - PostambleBits; i < len(bits); i++ {
				assert.False(t, bits[i], "postamble bit %d", i)
			}

			data := bits[PreambleBits : len(bits)-PostambleBits]
			for i, b := range tt.data {
				assert.Equal(t, AppendByteBits(nil, b), data[i*8:(i+1)*8], "byte %d", i)
			}
		})
	}
}

func TestEncodeFrameLength(t *testing.T) {
	var m Message
	assert.Len(t, EncodeFrame(m[:]), FrameBits)
	assert.Equal(t, 118, FrameBits)
}

func TestFormatBits(t *testing.T) {
	assert.Equal(t, "1111111111000011010000", FormatBits(EncodeFrame([]byte{0b10110000})))
	assert.Equal(t, "", FormatBits(nil))
}
