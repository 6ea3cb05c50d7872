package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartsAtGivenTime(t *testing.T) {
	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	clock := NewClock(start)
	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start, clock.Now(), "reads do not move the clock")
}

func TestClock_NewUnixClock(t *testing.T) {
	clock := NewUnixClock(978307200)
	assert.Equal(t, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), clock.Now())
}

func TestClock_Advance(t *testing.T) {
	clock := NewUnixClock(0)

	got := clock.Advance(90 * time.Second)
	assert.Equal(t, int64(90), got.Unix())
	assert.Equal(t, got, clock.Now())

	clock.Advance(-30 * time.Second)
	assert.Equal(t, int64(60), clock.Now().Unix())
}

func TestClock_SetAndReset(t *testing.T) {
	clock := NewUnixClock(100)

	clock.Set(time.Unix(5, 0))
	assert.Equal(t, int64(5), clock.Now().Unix())

	clock.Reset()
	assert.Equal(t, int64(100), clock.Now().Unix())
}

func TestClock_ThreadSafe(t *testing.T) {
	clock := NewUnixClock(0)
	const goroutines = 50
	const advancesPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < advancesPerGoroutine; j++ {
				clock.Advance(time.Second)
				_ = clock.Now()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*advancesPerGoroutine), clock.Now().Unix())
}
