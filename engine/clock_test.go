package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPausableClock_FreezesWhilePaused(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	pc := NewPausableClock(tp)

	tp.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, pc.Elapsed())

	pc.Pause()
	assert.True(t, pc.IsPaused())
	tp.Advance(5 * time.Second)
	assert.Equal(t, 2*time.Second, pc.Elapsed())
	assert.Equal(t, 5*time.Second, pc.TotalPaused())

	pc.Resume()
	tp.Advance(time.Second)
	assert.Equal(t, 3*time.Second, pc.Elapsed())
	assert.Equal(t, 5*time.Second, pc.TotalPaused())
}

func TestPausableClock_Toggle(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	pc := NewPausableClock(tp)

	assert.True(t, pc.Toggle())
	assert.True(t, pc.IsPaused())
	assert.False(t, pc.Toggle())
	assert.False(t, pc.IsPaused())
}

func TestPausableClock_RepeatedPauseIsIdempotent(t *testing.T) {
	tp := NewMockTimeProvider(epoch)
	pc := NewPausableClock(tp)

	pc.Pause()
	tp.Advance(time.Second)
	pc.Pause()
	tp.Advance(time.Second)
	pc.Resume()
	pc.Resume()
	assert.Equal(t, 2*time.Second, pc.TotalPaused())
	assert.Zero(t, pc.Elapsed())
}

func TestPausableClock_DefaultsToMonotonic(t *testing.T) {
	pc := NewPausableClock(nil)
	assert.GreaterOrEqual(t, pc.Elapsed(), time.Duration(0))
}

func TestAccumulator_Steps(t *testing.T) {
	a := NewAccumulator(10*time.Millisecond, 5)

	assert.Zero(t, a.Add(4*time.Millisecond))
	assert.InDelta(t, 0.4, a.Alpha(), 1e-9)
	assert.Equal(t, 1, a.Add(8*time.Millisecond))
	assert.InDelta(t, 0.2, a.Alpha(), 1e-9)
	assert.Equal(t, 3, a.Add(28*time.Millisecond))
	assert.Zero(t, a.Add(-time.Second), "negative frames are ignored")
}

func TestAccumulator_DropsBacklogAfterStall(t *testing.T) {
	a := NewAccumulator(10*time.Millisecond, 5)

	assert.Equal(t, 5, a.Add(time.Second))
	assert.Equal(t, 950*time.Millisecond, a.Dropped())
	assert.Zero(t, a.Alpha())
	assert.Zero(t, a.Add(0))
}
