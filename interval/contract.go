package interval

import (
	"iter"
	"math"
)

// Interval is implemented by all eight unit types. It is the form used
// where values of different units are accepted side by side.
type Interval interface {
	// Kind reports the unit.
	Kind() Kind
	// Magnitude is the count of the unit.
	Magnitude() float64
	// Seconds re-expresses the value in the canonical unit.
	Seconds() Seconds
	// String renders "<magnitude> <unit name>" for diagnostics.
	String() string
}

// Unit is the type constraint satisfied by exactly the eight unit types.
type Unit interface {
	~float64
	Interval
}

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Of builds a value of unit T from n, which counts units of T.
// It is the typed-number counterpart of writing an untyped constant
// where a T is expected.
func Of[T Unit, N Number](n N) T {
	return T(float64(n))
}

// To converts v to unit T through seconds.
func To[T Unit](v Interval) T {
	return T(convert(v.Kind(), v.Magnitude(), kindOf[T]()))
}

// kindOf returns the unit of T without needing a value.
func kindOf[T Unit]() Kind {
	var zero T
	return zero.Kind()
}

func seconds[T Unit](v T) float64 {
	return v.Kind().toSeconds(float64(v))
}

// crossApply evaluates op for a result of unit R.
// When both operands and the result share a unit, op is applied to the raw
// magnitudes, matching Go's operators on that type. Otherwise both operands
// are converted to seconds and the seconds result is converted to R.
func crossApply[R, A, B Unit](a A, b B, op func(x, y float64) float64) R {
	k := kindOf[R]()
	if a.Kind() == k && b.Kind() == k {
		return R(op(float64(a), float64(b)))
	}
	return R(k.fromSeconds(op(seconds(a), seconds(b))))
}

// Add returns a+b expressed in unit R.
func Add[R, A, B Unit](a A, b B) R {
	return crossApply[R](a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a-b expressed in unit R.
func Sub[R, A, B Unit](a A, b B) R {
	return crossApply[R](a, b, func(x, y float64) float64 { return x - y })
}

// Mul multiplies the operands. Mixed-unit operands are multiplied as
// seconds, so Mul[Seconds](Minutes(2), Seconds(3)) is 360 seconds.
func Mul[R, A, B Unit](a A, b B) R {
	return crossApply[R](a, b, func(x, y float64) float64 { return x * y })
}

// Div divides the operands. Mixed-unit operands are divided as seconds.
func Div[R, A, B Unit](a A, b B) R {
	return crossApply[R](a, b, func(x, y float64) float64 { return x / y })
}

// Rem is the floating remainder of the operands, see Mod.
// Mixed-unit operands are reduced as seconds.
func Rem[R, A, B Unit](a A, b B) R {
	return crossApply[R](a, b, math.Mod)
}

// Mod is the floating remainder of a/b for values of the same unit.
// The result has the sign of a.
func Mod[T Unit](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

// Equal reports whether a and b describe the same duration.
// Values of the same unit compare magnitudes exactly; values of different
// units compare their seconds.
func Equal[A, B Unit](a A, b B) bool {
	if a.Kind() == b.Kind() {
		return float64(a) == float64(b)
	}
	return seconds(a) == seconds(b)
}

// Less reports whether a is shorter than b, under the same rules as Equal.
func Less[A, B Unit](a A, b B) bool {
	if a.Kind() == b.Kind() {
		return float64(a) < float64(b)
	}
	return seconds(a) < seconds(b)
}

// Compare returns -1 if a is shorter than b, +1 if it is longer and 0
// otherwise. NaN magnitudes compare as 0 against everything.
func Compare[A, B Unit](a A, b B) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// IsNegative reports whether v is below zero. -0 is not negative.
func IsNegative[T Unit](v T) bool {
	return math.Signbit(float64(v)) && IsNotZero(v)
}

// IsPositive reports whether v is above zero.
func IsPositive[T Unit](v T) bool {
	return !math.Signbit(float64(v)) && IsNotZero(v)
}

// IsZero reports whether v is +0 or -0.
func IsZero[T Unit](v T) bool {
	return float64(v) == 0
}

// IsNotZero reports whether v is neither +0 nor -0.
func IsNotZero[T Unit](v T) bool {
	return float64(v) != 0
}

// RoundUp returns the least integral magnitude not below v.
func RoundUp[T Unit](v T) T {
	return T(math.Ceil(float64(v)))
}

// RoundDown returns the greatest integral magnitude not above v.
func RoundDown[T Unit](v T) T {
	return T(math.Floor(float64(v)))
}

// Round returns the nearest integral magnitude, halves to even.
func Round[T Unit](v T) T {
	return T(math.RoundToEven(float64(v)))
}

// Abs returns v with a non-negative magnitude.
func Abs[T Unit](v T) T {
	return T(math.Abs(float64(v)))
}

// Neg returns v with its sign flipped.
func Neg[T Unit](v T) T {
	return -v
}

// Successor returns v plus one unit.
func Successor[T Unit](v T) T {
	return v + 1
}

// Predecessor returns v minus one unit.
func Predecessor[T Unit](v T) T {
	return v - 1
}

// Range yields from, Successor(from), ... while the value is below to.
func Range[T Unit](from, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := from; v < to; v = Successor(v) {
			if !yield(v) {
				return
			}
		}
	}
}
