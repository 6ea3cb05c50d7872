package interval

// Kind identifies one of the eight units.
type Kind int

// The eight units, smallest first.
const (
	Nanosecond Kind = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

// scale describes how a unit relates to seconds.
// Sub-second units store how many of them fit in one second, larger units
// store how many seconds they span. Keeping both factors integral makes
// equivalences such as 1ms == 1e6ns exact.
type scale struct {
	name      string
	factor    float64
	subSecond bool
}

var scales = [...]scale{
	Nanosecond:  {name: "nanoseconds", factor: 1e9, subSecond: true},
	Microsecond: {name: "microseconds", factor: 1e6, subSecond: true},
	Millisecond: {name: "milliseconds", factor: 1e3, subSecond: true},
	Second:      {name: "seconds", factor: 1},
	Minute:      {name: "minutes", factor: 60},
	Hour:        {name: "hours", factor: 3600},
	Day:         {name: "days", factor: 86400},
	Week:        {name: "weeks", factor: 604800},
}

// Kinds returns all units, smallest first.
func Kinds() []Kind {
	return []Kind{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day, Week}
}

// KindNamed returns the unit whose Name is name.
// Only the canonical plural lowercase names are recognised.
func KindNamed(name string) (Kind, bool) {
	for k, s := range scales {
		if s.name == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Valid reports whether k is one of the eight units.
func (k Kind) Valid() bool {
	return k >= Nanosecond && k <= Week
}

// Name returns the plural lowercase unit name, e.g. "minutes".
func (k Kind) Name() string {
	if !k.Valid() {
		return "unknown"
	}
	return scales[k].name
}

func (k Kind) String() string {
	return k.Name()
}

// New returns a value of unit k with the given magnitude.
func (k Kind) New(magnitude float64) Interval {
	switch k {
	case Nanosecond:
		return Nanoseconds(magnitude)
	case Microsecond:
		return Microseconds(magnitude)
	case Millisecond:
		return Milliseconds(magnitude)
	case Second:
		return Seconds(magnitude)
	case Minute:
		return Minutes(magnitude)
	case Hour:
		return Hours(magnitude)
	case Day:
		return Days(magnitude)
	case Week:
		return Weeks(magnitude)
	}
	panic("interval: invalid kind")
}

// Convert re-expresses v in unit k.
func (k Kind) Convert(v Interval) Interval {
	return k.New(convert(v.Kind(), v.Magnitude(), k))
}

// toSeconds converts a magnitude of unit k to seconds.
func (k Kind) toSeconds(m float64) float64 {
	s := scales[k]
	if s.subSecond {
		return m / s.factor
	}
	return m * s.factor
}

// fromSeconds converts seconds to a magnitude of unit k.
func (k Kind) fromSeconds(sec float64) float64 {
	s := scales[k]
	if s.subSecond {
		return sec * s.factor
	}
	return sec / s.factor
}

// convert moves a magnitude from one unit to another through seconds.
// Same-unit conversion is the identity.
func convert(from Kind, m float64, to Kind) float64 {
	if from == to {
		return m
	}
	return to.fromSeconds(from.toSeconds(m))
}
