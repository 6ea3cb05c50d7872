// Package parse reads interval and date notation typed by people, such as
// "4.5m", "90 seconds", "250 µs" or "reference".
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/chrono/date"
	"github.com/roach88/chrono/interval"
)

// Error reports input that could not be parsed.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

var aliases = map[string]interval.Kind{
	"ns": interval.Nanosecond, "nsec": interval.Nanosecond,
	"nanosecond": interval.Nanosecond, "nanoseconds": interval.Nanosecond,

	// NFKC maps the micro sign (U+00B5) onto the Greek mu (U+03BC).
	"us": interval.Microsecond, "μs": interval.Microsecond, "usec": interval.Microsecond,
	"microsecond": interval.Microsecond, "microseconds": interval.Microsecond,

	"ms": interval.Millisecond, "msec": interval.Millisecond,
	"millisecond": interval.Millisecond, "milliseconds": interval.Millisecond,

	"s": interval.Second, "sec": interval.Second, "secs": interval.Second,
	"second": interval.Second, "seconds": interval.Second,

	"m": interval.Minute, "min": interval.Minute, "mins": interval.Minute,
	"minute": interval.Minute, "minutes": interval.Minute,

	"h": interval.Hour, "hr": interval.Hour, "hrs": interval.Hour,
	"hour": interval.Hour, "hours": interval.Hour,

	"d": interval.Day, "day": interval.Day, "days": interval.Day,

	"w": interval.Week, "wk": interval.Week, "wks": interval.Week,
	"week": interval.Week, "weeks": interval.Week,
}

// Kind resolves a unit name or abbreviation, ignoring case.
func Kind(s string) (interval.Kind, error) {
	key := cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
	k, ok := aliases[key]
	if !ok {
		return 0, &Error{Input: s, Reason: "unknown unit"}
	}
	return k, nil
}

var intervalPattern = regexp.MustCompile(`^([+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|[Ii]nf|NaN))\s*(\S+)$`)

// Interval parses a magnitude followed by a unit, with or without a space
// between them. The result has the unit's own type, e.g. interval.Minutes.
func Interval(s string) (interval.Interval, error) {
	m := intervalPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, &Error{Input: s, Reason: "expected <number><unit>"}
	}
	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &Error{Input: s, Reason: "invalid number"}
	}
	k, err := Kind(m[2])
	if err != nil {
		return nil, &Error{Input: s, Reason: fmt.Sprintf("unknown unit %q", m[2])}
	}
	return k.New(magnitude), nil
}

// Names accepted by Date.
const (
	DateNow           = "now"
	DateUnix          = "unix"
	DateReference     = "reference"
	DateDistantFuture = "distant_future"
	DateDistantPast   = "distant_past"
)

// Date resolves a named instant or a count of seconds since the Unix epoch.
// "now" is read from clock.
func Date(s string, clock date.Clock) (date.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DateNow:
		return date.NowFrom(clock), nil
	case DateUnix:
		return date.UnixEpoch, nil
	case DateReference:
		return date.ReferenceEpoch, nil
	case DateDistantFuture:
		return date.DistantFuture, nil
	case DateDistantPast:
		return date.DistantPast, nil
	}
	sec, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return date.Date{}, &Error{Input: s, Reason: "expected a date name or unix seconds"}
	}
	return date.FromUnixEpoch(interval.Seconds(sec)), nil
}
