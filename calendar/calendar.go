package calendar

import (
	"time"

	"github.com/roach88/chrono/date"
)

// Calendar is the context civil fields are interpreted in.
type Calendar struct {
	loc          *time.Location
	firstWeekday time.Weekday
	clock        date.Clock
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLocation sets the time zone fields are read and written in.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithFirstWeekday sets the day weeks start on for WeekOfMonth.
func WithFirstWeekday(d time.Weekday) Option {
	return func(c *Calendar) {
		c.firstWeekday = d
	}
}

// WithClock sets where "today" is read from.
func WithClock(clock date.Clock) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// New creates a Calendar. Defaults: UTC, weeks starting Monday, the system
// clock.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		loc:          time.UTC,
		firstWeekday: time.Monday,
		clock:        date.SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// FirstWeekday returns the day weeks start on.
func (c *Calendar) FirstWeekday() time.Weekday {
	return c.firstWeekday
}

// Now reads the calendar's clock, so a Calendar can stand in as a
// date.Clock.
func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

var _ date.Clock = (*Calendar)(nil)

func (c *Calendar) local(d date.Date) time.Time {
	return d.Time().In(c.loc)
}

// StartOfDay returns midnight of d's day in the calendar's location.
func (c *Calendar) StartOfDay(d date.Date) date.Date {
	t := c.local(d)
	return date.FromTime(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc))
}

// IsSameDay reports whether a and b fall on the same civil day.
func (c *Calendar) IsSameDay(a, b date.Date) bool {
	return sameDay(c.local(a), c.local(b))
}

// IsToday reports whether d falls on the clock's current day.
func (c *Calendar) IsToday(d date.Date) bool {
	return c.isDaysFromToday(d, 0)
}

// IsYesterday reports whether d falls on the day before the clock's current day.
func (c *Calendar) IsYesterday(d date.Date) bool {
	return c.isDaysFromToday(d, -1)
}

// IsTomorrow reports whether d falls on the day after the clock's current day.
func (c *Calendar) IsTomorrow(d date.Date) bool {
	return c.isDaysFromToday(d, 1)
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (c *Calendar) IsWeekend(d date.Date) bool {
	switch c.local(d).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

func (c *Calendar) isDaysFromToday(d date.Date, days int) bool {
	now := c.clock.Now().In(c.loc)
	return sameDay(c.local(d), now.AddDate(0, 0, days))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
