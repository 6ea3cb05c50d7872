package date

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chrono/internal/testutil"
	"github.com/roach88/chrono/interval"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, interval.Seconds(0), ReferenceEpoch.SinceReference())
	assert.Equal(t, interval.Seconds(-978307200), UnixEpoch.SinceReference())
	assert.Equal(t, interval.Seconds(63113904000), DistantFuture.SinceReference())
	assert.Equal(t, interval.Seconds(-63114076800), DistantPast.SinceReference())

	assert.True(t, DistantFuture.After(DistantPast))
	assert.True(t, DistantPast.Before(UnixEpoch))
	assert.True(t, UnixEpoch.Before(ReferenceEpoch))
	assert.Equal(t, Date{}, ReferenceEpoch)
}

func TestConstants_MatchTimePackage(t *testing.T) {
	assert.Equal(t, time.Unix(0, 0).UTC(), UnixEpoch.Time())
	assert.Equal(t, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), ReferenceEpoch.Time())
	assert.Equal(t, time.Date(4001, 1, 1, 0, 0, 0, 0, time.UTC), DistantFuture.Time())
	assert.Equal(t, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), DistantPast.Time())
}

func TestUnixEpochToReference(t *testing.T) {
	assert.Equal(t, interval.Seconds(978307200), UnixEpochToReference[interval.Seconds]())
	assert.Equal(t, interval.Days(11323), UnixEpochToReference[interval.Days]())
	assert.Equal(t, interval.Seconds(978307200), UnixEpoch.Since(ReferenceEpoch)*-1)
}

func TestFromReference_AnyUnit(t *testing.T) {
	assert.Equal(t, interval.Seconds(86400), FromReference(interval.Days(1)).SinceReference())
	assert.Equal(t, interval.Seconds(0.5), FromReference(interval.Milliseconds(500)).SinceReference())
	assert.Equal(t, FromReference(interval.Hours(1)), FromReference(interval.Minutes(60)))
}

func TestFromUnixEpoch(t *testing.T) {
	d := FromUnixEpoch(interval.Seconds(978307200))
	assert.Equal(t, ReferenceEpoch, d)

	d = FromUnixEpoch(interval.Days(1))
	assert.Equal(t, interval.Seconds(86400), d.SinceUnixEpoch())
	assert.Equal(t, interval.Hours(24), OffsetSinceUnixEpoch[interval.Hours](d))
}

func TestNowFrom_UsesClock(t *testing.T) {
	clock := testutil.NewUnixClock(978307200 + 3600)
	now := NowFrom(clock)
	assert.Equal(t, interval.Seconds(3600), now.SinceReference())

	later := FromNowFrom(clock, interval.Minutes(30))
	assert.Equal(t, interval.Seconds(5400), later.SinceReference())

	clock.Advance(time.Hour)
	assert.Equal(t, interval.Seconds(7200), NowFrom(clock).SinceReference())
}

func TestNow_CloseToHostClock(t *testing.T) {
	before := time.Now()
	now := Now()
	after := time.Now()

	assert.False(t, now.Before(FromTime(before).Subtract(interval.Microseconds(1))))
	assert.False(t, now.After(FromTime(after).Add(interval.Microseconds(1))))
}

func TestNow_OffsetRoundTrip(t *testing.T) {
	now := Now()
	offset := OffsetSinceReference[interval.Minutes](now)
	rebuilt := FromReference(offset)
	assert.True(t, rebuilt.EqualWithin(now, interval.Microseconds(1)))
}

func TestFromNow(t *testing.T) {
	d := FromNow(interval.Hours(1))
	assert.True(t, d.IsPastNow())
	assert.InDelta(t, 60, float64(OffsetSinceNow[interval.Minutes](d)), 1)
}

func TestOffsets_InRequestedUnit(t *testing.T) {
	a := FromReference(interval.Days(2))
	b := FromReference(interval.Hours(12))

	assert.Equal(t, interval.Seconds(129600), a.Since(b))
	assert.Equal(t, interval.Hours(36), OffsetSince[interval.Hours](a, b))
	assert.Equal(t, interval.Days(-1.5), OffsetSince[interval.Days](b, a))
	assert.Equal(t, interval.Weeks(2.0/7.0), OffsetSinceReference[interval.Weeks](a))
}

func TestAddSubtract(t *testing.T) {
	d := ReferenceEpoch.Add(interval.Weeks(1))
	assert.Equal(t, interval.Seconds(604800), d.SinceReference())

	d = d.Subtract(interval.Days(7))
	assert.Equal(t, ReferenceEpoch, d)

	orig := FromReference(interval.Seconds(10))
	_ = orig.Add(interval.Hours(5))
	assert.Equal(t, interval.Seconds(10), orig.SinceReference(), "Add must not mutate the receiver")
}

func TestEarlierLater(t *testing.T) {
	early := FromReference(interval.Seconds(1))
	late := FromReference(interval.Seconds(2))

	assert.Equal(t, early, early.Earlier(late))
	assert.Equal(t, early, late.Earlier(early))
	assert.Equal(t, late, early.Later(late))
	assert.Equal(t, late, late.Later(early))
}

func TestEarlierLater_TieBreak(t *testing.T) {
	// +0 and -0 are equal offsets but distinguishable, which makes the tie
	// rule observable: the receiver is the later of two equal dates.
	self := Date{offset: interval.Seconds(math.Copysign(0, -1))}
	other := Date{offset: 0}
	require.True(t, self.Equal(other))

	later := self.Later(other)
	assert.True(t, math.Signbit(float64(later.SinceReference())), "Later returns self on a tie")

	earlier := self.Earlier(other)
	assert.False(t, math.Signbit(float64(earlier.SinceReference())), "Earlier returns other on a tie")
}

func TestEqualWithin_IsStrict(t *testing.T) {
	a := FromReference(interval.Seconds(10))
	b := FromReference(interval.Seconds(11))

	assert.True(t, a.EqualWithin(b, interval.Seconds(1.5)))
	assert.False(t, a.EqualWithin(b, interval.Seconds(1)), "exactly within apart is not equal")
	assert.True(t, b.EqualWithin(a, interval.Milliseconds(1001)))
	assert.False(t, a.EqualWithin(b, interval.Milliseconds(999)))
}

func TestCompare(t *testing.T) {
	a := FromReference(interval.Minutes(1))
	b := FromReference(interval.Seconds(60))
	c := FromReference(interval.Seconds(61))

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.True(t, a == b)
}

func TestIsPastNowIsBeforeNow(t *testing.T) {
	assert.True(t, DistantFuture.IsPastNow())
	assert.False(t, DistantFuture.IsBeforeNow())
	assert.True(t, DistantPast.IsBeforeNow())
	assert.False(t, DistantPast.IsPastNow())
}

func TestTime_RoundTripIsIdentity(t *testing.T) {
	dates := []Date{
		Now(),
		UnixEpoch,
		DistantFuture,
		DistantPast,
		FromUnixEpoch(interval.Seconds(1760000000.123456)),
		FromReference(interval.Days(-3650.25)),
	}

	for _, d := range dates {
		assert.Equal(t, d, FromTime(d.Time()), "round trip of %s", d)
	}
}

func TestTime_RoundTripPrecisionBoundary(t *testing.T) {
	const boundary = 1 << 23
	const steps = 2000

	roundTrips := func(start float64, dir float64) (failures int) {
		s := start
		for i := 0; i < steps; i++ {
			for _, sign := range []float64{1, -1} {
				d := FromReference(interval.Seconds(sign * s))
				if FromTime(d.Time()) != d {
					failures++
				}
			}
			s = math.Nextafter(s, dir)
		}
		return failures
	}

	assert.Zero(t, roundTrips(boundary, math.Inf(1)), "offsets from 2^23 s round-trip")
	assert.NotZero(t, roundTrips(math.Nextafter(boundary, 0), 0), "offsets just under 2^23 s share nanoseconds")
}

func TestFromTime_PreservesNativeInstant(t *testing.T) {
	native := time.Date(2026, 10, 15, 8, 30, 15, 250000000, time.UTC)
	d := FromTime(native)
	assert.Equal(t, native, d.Time())

	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, d, FromTime(native.In(loc)), "location does not change the instant")
}

func TestTime_NonFinite(t *testing.T) {
	nan := FromReference(interval.Seconds(math.NaN()))
	assert.True(t, nan.Time().IsZero())
	assert.Equal(t, "NaN seconds since reference epoch", nan.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "2001-01-01 00:00:00 +0000", ReferenceEpoch.String())
	assert.Equal(t, "1970-01-01 00:00:00 +0000", UnixEpoch.String())
	assert.Equal(t, "2001-01-02 01:00:00 +0000", FromReference(interval.Hours(25)).String())
}

func TestNegativeOffsetRestores(t *testing.T) {
	start := FromReference(interval.Minutes(5))
	end := FromReference(interval.Hours(1))

	gap := OffsetSince[interval.Minutes](start, end)
	assert.True(t, interval.IsNegative(gap))
	assert.Equal(t, start, end.Add(gap))
}
