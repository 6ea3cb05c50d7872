package date

import (
	"math"
	"time"

	"github.com/roach88/chrono/interval"
)

// unixToReference is the number of seconds from 1970-01-01 to 2001-01-01, UTC.
const unixToReference = 978307200

// Date is an instant. The zero Date is ReferenceEpoch.
//
// Dates are values: every operation returns a new Date. Two Dates are equal
// under == exactly when their offsets are equal.
type Date struct {
	offset interval.Seconds
}

var (
	// UnixEpoch is 1970-01-01 00:00:00 UTC.
	UnixEpoch = Date{offset: -unixToReference}
	// ReferenceEpoch is 2001-01-01 00:00:00 UTC.
	ReferenceEpoch = Date{offset: 0}
	// DistantFuture is 4001-01-01 00:00:00 UTC.
	DistantFuture = Date{offset: 63113904000}
	// DistantPast is 0001-01-01 00:00:00 UTC, proleptic Gregorian.
	DistantPast = Date{offset: -63114076800}
)

// Now returns the current instant read from the host clock.
func Now() Date {
	return NowFrom(SystemClock{})
}

// NowFrom returns the current instant read from c.
func NowFrom(c Clock) Date {
	return FromTime(c.Now())
}

// FromReference returns the Date offset from ReferenceEpoch.
func FromReference(offset interval.Interval) Date {
	return Date{offset: offset.Seconds()}
}

// FromNow returns the Date offset from the current instant.
func FromNow(offset interval.Interval) Date {
	return Now().Add(offset)
}

// FromNowFrom returns the Date offset from the current instant of c.
func FromNowFrom(c Clock, offset interval.Interval) Date {
	return NowFrom(c).Add(offset)
}

// FromUnixEpoch returns the Date offset from UnixEpoch.
func FromUnixEpoch(offset interval.Interval) Date {
	return UnixEpoch.Add(offset)
}

// UnixEpochToReference returns the span from UnixEpoch to ReferenceEpoch in
// unit U.
func UnixEpochToReference[U interval.Unit]() U {
	return interval.To[U](interval.Seconds(unixToReference))
}

// SinceReference returns the offset from ReferenceEpoch.
func (d Date) SinceReference() interval.Seconds {
	return d.offset
}

// SinceUnixEpoch returns the offset from UnixEpoch.
func (d Date) SinceUnixEpoch() interval.Seconds {
	return interval.Seconds(unixToReference) + d.offset
}

// Since returns d minus other.
func (d Date) Since(other Date) interval.Seconds {
	return d.offset - other.offset
}

// SinceNow returns d minus the current instant. Negative for past dates.
func (d Date) SinceNow() interval.Seconds {
	return d.Since(Now())
}

// OffsetSinceReference returns d's offset from ReferenceEpoch in unit U.
func OffsetSinceReference[U interval.Unit](d Date) U {
	return interval.To[U](d.SinceReference())
}

// OffsetSinceUnixEpoch returns d's offset from UnixEpoch in unit U.
func OffsetSinceUnixEpoch[U interval.Unit](d Date) U {
	return interval.To[U](d.SinceUnixEpoch())
}

// OffsetSince returns d minus other in unit U.
func OffsetSince[U interval.Unit](d, other Date) U {
	return interval.To[U](d.Since(other))
}

// OffsetSinceNow returns d minus the current instant in unit U.
func OffsetSinceNow[U interval.Unit](d Date) U {
	return interval.To[U](d.SinceNow())
}

// Add returns d shifted forward by offset.
func (d Date) Add(offset interval.Interval) Date {
	return Date{offset: d.offset + offset.Seconds()}
}

// Subtract returns d shifted backward by offset.
func (d Date) Subtract(offset interval.Interval) Date {
	return Date{offset: d.offset - offset.Seconds()}
}

// Equal reports whether d and other are the same instant.
func (d Date) Equal(other Date) bool {
	return d.offset == other.offset
}

// EqualWithin reports whether d and other are strictly less than within
// apart.
func (d Date) EqualWithin(other Date, within interval.Interval) bool {
	return interval.Abs(d.Since(other)) < within.Seconds()
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.offset < other.offset
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	return interval.Compare(d.offset, other.offset)
}

// Earlier returns the earlier of d and other.
// On a tie d counts as the later one, so other is returned.
func (d Date) Earlier(other Date) Date {
	if d.Before(other) {
		return d
	}
	return other
}

// Later returns the later of d and other. On a tie d is returned.
func (d Date) Later(other Date) Date {
	if d.Before(other) {
		return other
	}
	return d
}

// IsPastNow reports whether d is after the current instant.
// The host clock is read on every call.
func (d Date) IsPastNow() bool {
	return d.After(Now())
}

// IsBeforeNow reports whether d is before the current instant.
// The host clock is read on every call.
func (d Date) IsBeforeNow() bool {
	return d.Before(Now())
}

// Time converts d to a UTC time.Time, rounded to the nanosecond.
// FromTime(d.Time()) == d whenever d is at least 2^23 s (about 97 days)
// from ReferenceEpoch, which covers every present-day instant. Closer in,
// adjacent offsets are under a nanosecond apart and may share a time.Time.
// Offsets that are not finite yield the zero time.Time.
func (d Date) Time() time.Time {
	s := float64(d.offset)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return time.Time{}
	}
	sec := math.Floor(s)
	nsec := math.Round((s - sec) * 1e9)
	return time.Unix(int64(sec)+unixToReference, int64(nsec)).UTC()
}

// FromTime converts a time.Time to a Date. The offset keeps as much of t as a
// float64 count of seconds can hold, about a tenth of a microsecond for
// present-day instants.
func FromTime(t time.Time) Date {
	sec := t.Unix() - unixToReference
	return Date{offset: interval.Seconds(float64(sec) + float64(t.Nanosecond())/1e9)}
}

// String renders d in UTC for diagnostics, e.g. "2001-01-01 00:00:00 +0000".
func (d Date) String() string {
	s := float64(d.offset)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return d.offset.String() + " since reference epoch"
	}
	return d.Time().Format("2006-01-02 15:04:05 -0700")
}
