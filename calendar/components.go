package calendar

import (
	"fmt"
	"strings"
)

// Components holds civil fields. A nil field is absent.
//
// Weekday counts 1 (Sunday) through 7 (Saturday). Era is 1 for AD and 0 for
// BC; Year counts within the era. WeekOfYear and YearForWeekOfYear follow
// ISO 8601.
type Components struct {
	Era               *int
	Year              *int
	Month             *int
	Day               *int
	Hour              *int
	Minute            *int
	Second            *int
	Nanosecond        *int
	Weekday           *int
	WeekdayOrdinal    *int
	Quarter           *int
	WeekOfMonth       *int
	WeekOfYear        *int
	YearForWeekOfYear *int
}

// Int returns a pointer to v, for filling Components literals.
func Int(v int) *int {
	return &v
}

type field struct {
	name  string
	value *int
}

func (c Components) fields() []field {
	return []field{
		{"era", c.Era},
		{"year", c.Year},
		{"month", c.Month},
		{"day", c.Day},
		{"hour", c.Hour},
		{"minute", c.Minute},
		{"second", c.Second},
		{"nanosecond", c.Nanosecond},
		{"weekday", c.Weekday},
		{"weekdayOrdinal", c.WeekdayOrdinal},
		{"quarter", c.Quarter},
		{"weekOfMonth", c.WeekOfMonth},
		{"weekOfYear", c.WeekOfYear},
		{"yearForWeekOfYear", c.YearForWeekOfYear},
	}
}

// Map returns the present fields keyed by name.
func (c Components) Map() map[string]int {
	m := make(map[string]int)
	for _, f := range c.fields() {
		if f.value != nil {
			m[f.name] = *f.value
		}
	}
	return m
}

// String lists the present fields in a fixed order, e.g.
// "{year: 2026 month: 10 day: 15}".
func (c Components) String() string {
	var parts []string
	for _, f := range c.fields() {
		if f.value != nil {
			parts = append(parts, fmt.Sprintf("%s: %d", f.name, *f.value))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}
