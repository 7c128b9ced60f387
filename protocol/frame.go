package protocol

import "strings"

// A frame on air is a sync run, the message bytes and a terminator:
//
//	Preamble (10 x "1") | Data (13 bytes, LSB first) | Postamble (4 x "0")
//
// EncodeFrame returns the logical bits in transmission order. The transmitter
// does not need it (it walks the bytes directly); it is used for dry runs and
// to check recorded waveforms.
func EncodeFrame(data []byte) []bool {
	bits := make([]bool, 0, PreambleBits+len(data)*8+PostambleBits)

	for i := 0; i < PreambleBits; i++ {
		bits = append(bits, true)
	}
	for _, b := range data {
		bits = AppendByteBits(bits, b)
	}
	for i := 0; i < PostambleBits; i++ {
		bits = append(bits, false)
	}

	return bits
}

// AppendByteBits appends the 8 bits of b, bit 0 first.
func AppendByteBits(bits []bool, b byte) []bool {
	for i := 0; i < 8; i++ {
		bits = append(bits, b&(1<<i) != 0)
	}
	return bits
}

// FormatBits renders bits as a string of '0' and '1'.
func FormatBits(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
