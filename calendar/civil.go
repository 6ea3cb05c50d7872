package calendar

import (
	"time"

	"github.com/roach88/chrono/date"
)

// Era values.
const (
	EraBC = 0
	EraAD = 1
)

// Decompose returns every civil field of d in the calendar's location.
func (c *Calendar) Decompose(d date.Date) Components {
	return c.fields(c.local(d))
}

func (c *Calendar) fields(t time.Time) Components {
	era, year := EraAD, t.Year()
	if year <= 0 {
		era, year = EraBC, 1-year
	}
	isoYear, isoWeek := t.ISOWeek()

	return Components{
		Era:               Int(era),
		Year:              Int(year),
		Month:             Int(int(t.Month())),
		Day:               Int(t.Day()),
		Hour:              Int(t.Hour()),
		Minute:            Int(t.Minute()),
		Second:            Int(t.Second()),
		Nanosecond:        Int(t.Nanosecond()),
		Weekday:           Int(int(t.Weekday()) + 1),
		WeekdayOrdinal:    Int((t.Day()-1)/7 + 1),
		Quarter:           Int((int(t.Month())-1)/3 + 1),
		WeekOfMonth:       Int(c.weekOfMonth(t)),
		WeekOfYear:        Int(isoWeek),
		YearForWeekOfYear: Int(isoYear),
	}
}

// weekOfMonth numbers the weeks of t's month, weeks starting on the
// calendar's first weekday. The partial week holding the 1st is week 1.
func (c *Calendar) weekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	lead := (int(first.Weekday()) - int(c.firstWeekday) + 7) % 7
	return (t.Day()+lead-1)/7 + 1
}

// Compose builds the Date the fields name in the calendar's location.
//
// Absent Era means AD, absent Month and Day mean 1, absent time fields mean
// 0. Year is required, except that YearForWeekOfYear, WeekOfYear and Weekday
// together may replace Year, Month and Day.
//
// The second result is false when the fields name no instant; see the
// package documentation.
func (c *Calendar) Compose(comp Components) (date.Date, bool) {
	hour, minute, second, nsec := or(comp.Hour, 0), or(comp.Minute, 0), or(comp.Second, 0), or(comp.Nanosecond, 0)
	if !inRange(hour, 0, 23) || !inRange(minute, 0, 59) || !inRange(second, 0, 59) || !inRange(nsec, 0, 999999999) {
		return date.Date{}, false
	}

	var (
		t  time.Time
		ok bool
	)
	if comp.Year == nil {
		t, ok = c.composeWeekDate(comp, hour, minute, second, nsec)
	} else {
		t, ok = c.composeCalendarDate(comp, hour, minute, second, nsec)
	}
	if !ok {
		return date.Date{}, false
	}

	if hour != t.Hour() || minute != t.Minute() || second != t.Second() {
		// Skipped by a daylight-saving transition.
		return date.Date{}, false
	}
	if !c.consistent(comp, t) {
		return date.Date{}, false
	}
	return date.FromTime(t), true
}

func (c *Calendar) composeCalendarDate(comp Components, hour, minute, second, nsec int) (time.Time, bool) {
	era, year := or(comp.Era, EraAD), *comp.Year
	month, day := or(comp.Month, 1), or(comp.Day, 1)

	if year < 1 || !inRange(month, 1, 12) || !inRange(day, 1, 31) {
		return time.Time{}, false
	}
	switch era {
	case EraAD:
	case EraBC:
		year = 1 - year
	default:
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, c.loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		// time.Date normalised an impossible day such as February 30.
		return time.Time{}, false
	}
	return t, true
}

func (c *Calendar) composeWeekDate(comp Components, hour, minute, second, nsec int) (time.Time, bool) {
	if comp.Month != nil || comp.Day != nil || comp.Era != nil {
		return time.Time{}, false
	}
	if comp.YearForWeekOfYear == nil || comp.WeekOfYear == nil || comp.Weekday == nil {
		return time.Time{}, false
	}
	isoYear, week, weekday := *comp.YearForWeekOfYear, *comp.WeekOfYear, *comp.Weekday
	if !inRange(week, 1, 53) || !inRange(weekday, 1, 7) {
		return time.Time{}, false
	}

	// Week 1 is the week holding January 4th; weeks start on Monday.
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, c.loc)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	offset := (week-1)*7 + (weekday+5)%7
	day := monday.AddDate(0, 0, offset)

	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, nsec, c.loc)
	if y, w := t.ISOWeek(); y != isoYear || w != week {
		// Week 53 of a year that only has 52.
		return time.Time{}, false
	}
	return t, true
}

// consistent reports whether every supplied derived field matches t.
func (c *Calendar) consistent(comp Components, t time.Time) bool {
	got := c.fields(t)
	pairs := []struct{ want, have *int }{
		{comp.Weekday, got.Weekday},
		{comp.WeekdayOrdinal, got.WeekdayOrdinal},
		{comp.Quarter, got.Quarter},
		{comp.WeekOfMonth, got.WeekOfMonth},
		{comp.WeekOfYear, got.WeekOfYear},
		{comp.YearForWeekOfYear, got.YearForWeekOfYear},
	}
	for _, p := range pairs {
		if p.want != nil && *p.want != *p.have {
			return false
		}
	}
	return true
}

func or(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
