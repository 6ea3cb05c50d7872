package interval

import "math"

// The methods below mirror Add, Sub, Mul, Div, Rem and Compare for values
// whose unit is only known at run time. Results are identical to the generic
// forms with R set to the receiver's unit.

// Add returns a+b in unit k.
func (k Kind) Add(a, b Interval) Interval {
	return k.apply(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a-b in unit k.
func (k Kind) Sub(a, b Interval) Interval {
	return k.apply(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a*b in unit k.
func (k Kind) Mul(a, b Interval) Interval {
	return k.apply(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a/b in unit k.
func (k Kind) Div(a, b Interval) Interval {
	return k.apply(a, b, func(x, y float64) float64 { return x / y })
}

// Rem returns the floating remainder of a/b in unit k.
func (k Kind) Rem(a, b Interval) Interval {
	return k.apply(a, b, math.Mod)
}

func (k Kind) apply(a, b Interval, op func(x, y float64) float64) Interval {
	if a.Kind() == k && b.Kind() == k {
		return k.New(op(a.Magnitude(), b.Magnitude()))
	}
	x := a.Kind().toSeconds(a.Magnitude())
	y := b.Kind().toSeconds(b.Magnitude())
	return k.New(k.fromSeconds(op(x, y)))
}

// CompareValues is Compare for values whose units are only known at run time.
func CompareValues(a, b Interval) int {
	x, y := a.Magnitude(), b.Magnitude()
	if a.Kind() != b.Kind() {
		x, y = a.Kind().toSeconds(x), b.Kind().toSeconds(y)
	}
	switch {
	case x < y:
		return -1
	case y < x:
		return 1
	default:
		return 0
	}
}
