package protocol

import (
	"encoding/hex"
	"strings"
)

// Message is the 13-byte Oregon v2.1 payload sent by an OWL CM160 sensor.
// Layout:
//
//	+------+------+----+-------------------------------+----------+
//	| 0-1  | 2    | 3  | 4  | 5         | 6 .. 10      | 11 - 12  |
//	+------+------+----+----+-----------+--------------+----------+
//	| type | id   | rt | rt | rt | acc  | acc          | checksum |
//	+------+------+----+----+-----------+--------------+----------+
//
// Type and ID are written once at configuration; every other byte is rewritten
// on each send.
type Message [MessageSize]byte

// SetType writes the fixed sensor type.
func (m *Message) SetType() {
	m[typeOffset] = SensorTypeHigh
	m[typeOffset+1] = SensorTypeLow
}

// SetID writes the sensor identifier.
func (m *Message) SetID(id byte) {
	m[idOffset] = id
}

func (m *Message) ID() byte { return m[idOffset] }

// ScaleRealtime converts a real-time reading in watts to the on-air unit.
func ScaleRealtime(watts int) uint32 {
	return uint32(int64(watts) * realtimeNum / realtimeDen / realtimeUnit)
}

// ScaleAccumulated converts an accumulated reading in watt-hours to the on-air
// unit. Values wider than the 44 bits available are truncated by SetConsumption.
func ScaleAccumulated(wattHours int64) uint64 {
	return uint64(wattHours * accumulatedNum / accumulatedDen)
}

// SetConsumption packs both readings into bytes 3 to 10. Inputs are not
// validated: negative readings wrap to the field width like unsigned C
// arithmetic.
func (m *Message) SetConsumption(realtimeWatts int, accumulatedWh int64) {
	rt := ScaleRealtime(realtimeWatts)
	acc := ScaleAccumulated(accumulatedWh)

	m[3] = byte((rt & 0x0F) << 4)
	m[4] = byte((rt >> 4) & 0xFF)
	m[5] = byte((rt>>12)&0x0F) | byte((acc&0x0F)<<4)

	m[6] = byte((acc >> 4) & 0xFF)
	m[7] = byte((acc >> 12) & 0xFF)
	m[8] = byte((acc >> 20) & 0xFF)
	m[9] = byte((acc >> 28) & 0xFF)
	m[10] = byte((acc >> 36) & 0xFF)
}

// Sum adds the low and high nibble of each of the first count bytes and
// subtracts ChecksumCorrection.
func Sum(count int, data []byte) int {
	count = min(count, len(data))

	s := 0
	for i := 0; i < count; i++ {
		s += int(data[i]&0x0F) + int(data[i]>>4)
	}

	return s - ChecksumCorrection
}

// SetChecksum computes the checksum over bytes 0-10 and stores it in bytes
// 11 and 12. The nibble order is what CM160 receivers expect and must not be
// "fixed": byte 12 only keeps bits 4-7 of the sum.
func (m *Message) SetChecksum() {
	s := Sum(ChecksumSpan, m[:])

	m[checksumOffset] = byte((s&0x0F)<<4) | byte((s>>8)&0x0F)
	m[checksumOffset+1] = byte((s >> 4) & 0x0F)
}

// Checksum returns the two checksum bytes.
func (m *Message) Checksum() [2]byte {
	return [2]byte{m[checksumOffset], m[checksumOffset+1]}
}

// String renders the message as upper-case hex, high nibble first.
func (m Message) String() string {
	return strings.ToUpper(hex.EncodeToString(m[:]))
}
