package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock measures game time: real time elapsed since creation minus time spent paused
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused      atomic.Bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a clock on the given provider, monotonic when nil
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider, start: provider.Now()}
}

// Elapsed is the game time since start, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.provider.Now()
	if pc.paused.Load() {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPaused
}

func (pc *PausableClock) Pause() {
	if pc.paused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStart = pc.provider.Now()
		pc.mu.Unlock()
	}
}

func (pc *PausableClock) Resume() {
	if pc.paused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.totalPaused += pc.provider.Now().Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
		pc.mu.Unlock()
	}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.paused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool { return pc.paused.Load() }

// TotalPaused includes the pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused.Load() {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
