package interval

import (
	"math"
	"strconv"
)

// Nanoseconds is a count of nanoseconds.
type Nanoseconds float64

func (Nanoseconds) Kind() Kind { return Nanosecond }

func (n Nanoseconds) Magnitude() float64 { return float64(n) }

func (n Nanoseconds) String() string { return format(n) }

func (n Nanoseconds) Nanoseconds() Nanoseconds { return n }

func (n Nanoseconds) Microseconds() Microseconds { return To[Microseconds](n) }

func (n Nanoseconds) Milliseconds() Milliseconds { return To[Milliseconds](n) }

func (n Nanoseconds) Seconds() Seconds { return To[Seconds](n) }

func (n Nanoseconds) Minutes() Minutes { return To[Minutes](n) }

func (n Nanoseconds) Hours() Hours { return To[Hours](n) }

func (n Nanoseconds) Days() Days { return To[Days](n) }

func (n Nanoseconds) Weeks() Weeks { return To[Weeks](n) }

// Microseconds is a count of microseconds.
type Microseconds float64

func (Microseconds) Kind() Kind { return Microsecond }

func (m Microseconds) Magnitude() float64 { return float64(m) }

func (m Microseconds) String() string { return format(m) }

func (m Microseconds) Nanoseconds() Nanoseconds { return To[Nanoseconds](m) }

func (m Microseconds) Microseconds() Microseconds { return m }

func (m Microseconds) Milliseconds() Milliseconds { return To[Milliseconds](m) }

func (m Microseconds) Seconds() Seconds { return To[Seconds](m) }

func (m Microseconds) Minutes() Minutes { return To[Minutes](m) }

func (m Microseconds) Hours() Hours { return To[Hours](m) }

func (m Microseconds) Days() Days { return To[Days](m) }

func (m Microseconds) Weeks() Weeks { return To[Weeks](m) }

// Milliseconds is a count of milliseconds.
type Milliseconds float64

func (Milliseconds) Kind() Kind { return Millisecond }

func (m Milliseconds) Magnitude() float64 { return float64(m) }

func (m Milliseconds) String() string { return format(m) }

func (m Milliseconds) Nanoseconds() Nanoseconds { return To[Nanoseconds](m) }

func (m Milliseconds) Microseconds() Microseconds { return To[Microseconds](m) }

func (m Milliseconds) Milliseconds() Milliseconds { return m }

func (m Milliseconds) Seconds() Seconds { return To[Seconds](m) }

func (m Milliseconds) Minutes() Minutes { return To[Minutes](m) }

func (m Milliseconds) Hours() Hours { return To[Hours](m) }

func (m Milliseconds) Days() Days { return To[Days](m) }

func (m Milliseconds) Weeks() Weeks { return To[Weeks](m) }

// Seconds is a count of seconds, the canonical unit every other unit
// converts through.
type Seconds float64

func (Seconds) Kind() Kind { return Second }

func (s Seconds) Magnitude() float64 { return float64(s) }

func (s Seconds) String() string { return format(s) }

func (s Seconds) Nanoseconds() Nanoseconds { return To[Nanoseconds](s) }

func (s Seconds) Microseconds() Microseconds { return To[Microseconds](s) }

func (s Seconds) Milliseconds() Milliseconds { return To[Milliseconds](s) }

func (s Seconds) Seconds() Seconds { return s }

func (s Seconds) Minutes() Minutes { return To[Minutes](s) }

func (s Seconds) Hours() Hours { return To[Hours](s) }

func (s Seconds) Days() Days { return To[Days](s) }

func (s Seconds) Weeks() Weeks { return To[Weeks](s) }

// Minutes is a count of minutes.
type Minutes float64

func (Minutes) Kind() Kind { return Minute }

func (m Minutes) Magnitude() float64 { return float64(m) }

func (m Minutes) String() string { return format(m) }

func (m Minutes) Nanoseconds() Nanoseconds { return To[Nanoseconds](m) }

func (m Minutes) Microseconds() Microseconds { return To[Microseconds](m) }

func (m Minutes) Milliseconds() Milliseconds { return To[Milliseconds](m) }

func (m Minutes) Seconds() Seconds { return To[Seconds](m) }

func (m Minutes) Minutes() Minutes { return m }

func (m Minutes) Hours() Hours { return To[Hours](m) }

func (m Minutes) Days() Days { return To[Days](m) }

func (m Minutes) Weeks() Weeks { return To[Weeks](m) }

// Hours is a count of hours.
type Hours float64

func (Hours) Kind() Kind { return Hour }

func (h Hours) Magnitude() float64 { return float64(h) }

func (h Hours) String() string { return format(h) }

func (h Hours) Nanoseconds() Nanoseconds { return To[Nanoseconds](h) }

func (h Hours) Microseconds() Microseconds { return To[Microseconds](h) }

func (h Hours) Milliseconds() Milliseconds { return To[Milliseconds](h) }

func (h Hours) Seconds() Seconds { return To[Seconds](h) }

func (h Hours) Minutes() Minutes { return To[Minutes](h) }

func (h Hours) Hours() Hours { return h }

func (h Hours) Days() Days { return To[Days](h) }

func (h Hours) Weeks() Weeks { return To[Weeks](h) }

// Days is a count of days.
type Days float64

func (Days) Kind() Kind { return Day }

func (d Days) Magnitude() float64 { return float64(d) }

func (d Days) String() string { return format(d) }

func (d Days) Nanoseconds() Nanoseconds { return To[Nanoseconds](d) }

func (d Days) Microseconds() Microseconds { return To[Microseconds](d) }

func (d Days) Milliseconds() Milliseconds { return To[Milliseconds](d) }

func (d Days) Seconds() Seconds { return To[Seconds](d) }

func (d Days) Minutes() Minutes { return To[Minutes](d) }

func (d Days) Hours() Hours { return To[Hours](d) }

func (d Days) Days() Days { return d }

func (d Days) Weeks() Weeks { return To[Weeks](d) }

// Weeks is a count of weeks.
type Weeks float64

func (Weeks) Kind() Kind { return Week }

func (w Weeks) Magnitude() float64 { return float64(w) }

func (w Weeks) String() string { return format(w) }

func (w Weeks) Nanoseconds() Nanoseconds { return To[Nanoseconds](w) }

func (w Weeks) Microseconds() Microseconds { return To[Microseconds](w) }

func (w Weeks) Milliseconds() Milliseconds { return To[Milliseconds](w) }

func (w Weeks) Seconds() Seconds { return To[Seconds](w) }

func (w Weeks) Minutes() Minutes { return To[Minutes](w) }

func (w Weeks) Hours() Hours { return To[Hours](w) }

func (w Weeks) Days() Days { return To[Days](w) }

func (w Weeks) Weeks() Weeks { return w }

// format renders a value as "<magnitude> <unit name>".
// Magnitudes use plain decimal notation between 1e-6 and 1e21, scientific
// notation outside that range.
func format[T Unit](v T) string {
	m := float64(v)
	verb := byte('f')
	if abs := math.Abs(m); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		verb = 'e'
	}
	return strconv.FormatFloat(m, verb, -1, 64) + " " + v.Kind().Name()
}
