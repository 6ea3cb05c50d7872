package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/chrono/date"
	"github.com/roach88/chrono/internal/testutil"
	"github.com/roach88/chrono/interval"
)

func newTestCalendar(now time.Time, opts ...Option) *Calendar {
	return New(append([]Option{WithClock(testutil.NewClock(now))}, opts...)...)
}

func TestNew_Defaults(t *testing.T) {
	cal := New()
	assert.Equal(t, time.UTC, cal.Location())
	assert.Equal(t, time.Monday, cal.FirstWeekday())

	cal = New(WithLocation(nil), WithClock(nil))
	assert.Equal(t, time.UTC, cal.Location(), "nil options keep defaults")
	assert.NotNil(t, cal.Now())
}

func TestStartOfDay(t *testing.T) {
	cal := New()
	d := date.FromTime(time.Date(2026, 10, 15, 13, 45, 30, 0, time.UTC))
	assert.Equal(t, date.FromTime(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)), cal.StartOfDay(d))

	tokyo := time.FixedZone("JST", 9*60*60)
	inTokyo := New(WithLocation(tokyo)).StartOfDay(d)
	assert.Equal(t, time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC), inTokyo.Time(),
		"midnight of the 16th in Tokyo is 15:00 UTC on the 15th")
}

func TestIsSameDay(t *testing.T) {
	cal := New()
	morning := date.FromTime(time.Date(2026, 10, 15, 0, 0, 1, 0, time.UTC))
	night := morning.Add(interval.Hours(23))
	next := morning.Add(interval.Hours(24))

	assert.True(t, cal.IsSameDay(morning, night))
	assert.False(t, cal.IsSameDay(morning, next))

	// Five hours west of UTC the two instants fall on the 14th and the 15th.
	west := New(WithLocation(time.FixedZone("UTC-5", -5*60*60)))
	assert.False(t, west.IsSameDay(morning, night))
}

func TestTodayYesterdayTomorrow(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	cal := newTestCalendar(now)
	today := date.FromTime(now)

	assert.True(t, cal.IsToday(today))
	assert.True(t, cal.IsToday(today.Add(interval.Hours(11))))
	assert.False(t, cal.IsToday(today.Add(interval.Hours(13))))

	assert.True(t, cal.IsYesterday(today.Subtract(interval.Days(1))))
	assert.False(t, cal.IsYesterday(today))

	assert.True(t, cal.IsTomorrow(today.Add(interval.Days(1))))
	assert.False(t, cal.IsTomorrow(today.Add(interval.Days(2))))
}

func TestIsWeekend(t *testing.T) {
	cal := New()
	friday := date.FromTime(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))

	assert.False(t, cal.IsWeekend(friday))
	assert.True(t, cal.IsWeekend(friday.Add(interval.Days(1))))
	assert.True(t, cal.IsWeekend(friday.Add(interval.Days(2))))
	assert.False(t, cal.IsWeekend(friday.Add(interval.Days(3))))
}
