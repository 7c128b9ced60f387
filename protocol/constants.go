package protocol

import "time"

// Oregon Scientific v2.1 constants for the OWL CM160 power sensor. All higher
// layers should depend on this file rather than repeat the numbers.
const (
	// Message layout
	//   Type (2) | ID (1) | Realtime+Accumulated (8, nibble packed) | Checksum (2)
	MessageSize = 13

	typeOffset     = 0
	idOffset       = 2
	checksumOffset = 11

	// Bytes covered by the checksum (everything before it)
	ChecksumSpan = checksumOffset

	// Sensor type bytes written at configuration time
	SensorTypeHigh = 0x62
	SensorTypeLow  = 0x80

	// Subtracted from the nibble sum for this sensor type
	ChecksumCorrection = 2

	// Framing, in bits
	PreambleBits  = 10 // "1" bits, minimum sync run
	PostambleBits = 4  // "0" bits
	DataBits      = MessageSize * 8

	// FrameBits is the number of bit periods in one transmission
	FrameBits = PreambleBits + DataBits + PostambleBits

	// Half a bit period in microseconds. Fixed by the protocol.
	HalfPeriodMicros = 488

	// Fixed-point scaling of the readings before packing
	realtimeNum  = 497
	realtimeDen  = 500
	realtimeUnit = 16

	accumulatedNum = 223666
	accumulatedDen = 1000
)

const (
	HalfPeriod = HalfPeriodMicros * time.Microsecond
	BitPeriod  = 2 * HalfPeriod

	// FrameDuration is the on-air time of one message (~115ms)
	FrameDuration = FrameBits * BitPeriod
)
