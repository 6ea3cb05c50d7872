// Package interval models time durations whose unit is part of their type.
//
// There are eight unit types, each a named float64 counting "how many of this
// unit": Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours,
// Days and Weeks. A value of one unit cannot be mixed with a value of another
// unit by accident: Go's operators only accept operands of the same type.
//
// # Literals
//
// Untyped constants adopt the unit of the context they appear in:
//
//	var timeout interval.Minutes = 5 // five minutes
//	d := interval.Hours(1.5)         // an hour and a half
//
// Of is the explicit builder for typed numbers of any kind:
//
//	n := 90
//	s := interval.Of[interval.Seconds](n)
//
// # Same-unit arithmetic
//
// Values of the same unit use Go's own operators (+ - * / unary -, == <).
// The floating remainder is Mod, since Go has no % for floats.
//
// # Cross-unit arithmetic
//
// Operations across units go through seconds, the canonical unit. Every
// conversion, comparison and cross-unit arithmetic result is computed by
// converting each operand to seconds first and then converting the seconds
// result to the requested unit:
//
//	total := interval.Add[interval.Milliseconds](interval.Minutes(1), interval.Seconds(30))
//	// total == interval.Milliseconds(90000)
//
// The result unit is always chosen by the caller, never by the operands.
//
// # Precision
//
// Magnitudes are float64. Integral equivalences between units (1 minute is 60
// seconds, 1 millisecond is 1e6 nanoseconds, ...) are exact. Repeated
// round-trips through other units may drift in the last bits; compare such
// results with a tolerance. NaN and infinities are accepted everywhere and
// propagate under the usual IEEE 754 rules.
package interval
