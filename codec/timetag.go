package codec

import (
	"encoding/binary"
	"time"
)

// secondsFrom1900To1970 is the offset between the OSC/NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01).
const secondsFrom1900To1970 = 2208988800

// Immediate is the special Timetag value meaning "now" / "as soon as
// possible" rather than a specific point in time.
const Immediate = Timetag(1)

// Timetag is an OSC 64-bit fixed-point NTP time tag: the high 32 bits
// are seconds since midnight 1900-01-01, the low 32 bits are the
// fractional part of a second.
type Timetag uint64

// NewTimetagFromTime converts a time.Time to a Timetag.
func NewTimetagFromTime(t time.Time) Timetag {
	return Timetag(timeToTimetag(t))
}

// Time converts t to a time.Time.
func (t Timetag) Time() time.Time {
	return timetagToTime(t)
}

// SecondsSinceEpoch returns the high 32 bits: seconds since 1900-01-01.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// FractionalSecond returns the low 32 bits: the fractional second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// ExpiresIn returns the duration until t, or zero if t is in the past
// or is Immediate.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= Immediate {
		return 0
	}
	d := t.Time().Sub(time.Now())
	if d < 0 {
		return 0
	}
	return d
}

// put writes t as a big-endian 8-byte value into b, which must have
// length >= Bit64.
func (t Timetag) put(b []byte) {
	binary.BigEndian.PutUint64(b, uint64(t))
}

func timeToTimetag(t time.Time) uint64 {
	seconds := uint64(secondsFrom1900To1970+t.Unix()) << 32
	frac := uint64(t.Nanosecond()) * (uint64(1) << 32) / 1e9
	return seconds + frac
}

func timetagToTime(t Timetag) time.Time {
	seconds := int64(t>>32) - secondsFrom1900To1970
	frac := uint64(t) & 0xffffffff
	nanos := int64(frac * 1e9 / (uint64(1) << 32))
	return time.Unix(seconds, nanos)
}
