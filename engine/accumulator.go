package engine

import "time"

// Accumulator converts variable frame time into a count of fixed steps
type Accumulator struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	dropped  time.Duration
}

// NewAccumulator caps catch-up at maxSteps per frame; the backlog beyond is discarded
func NewAccumulator(step time.Duration, maxSteps int) *Accumulator {
	return &Accumulator{step: step, maxSteps: max(maxSteps, 1)}
}

// Add banks frame time and returns how many steps are due
func (a *Accumulator) Add(frame time.Duration) int {
	if frame > 0 {
		a.acc += frame
	}
	n := int(a.acc / a.step)
	if n > a.maxSteps {
		a.dropped += a.acc - time.Duration(a.maxSteps)*a.step
		a.acc = time.Duration(a.maxSteps) * a.step
		n = a.maxSteps
	}
	a.acc -= time.Duration(n) * a.step
	return n
}

// Alpha is the fraction of a step left in the bank
func (a *Accumulator) Alpha() float64 { return float64(a.acc) / float64(a.step) }

// Dropped is the total frame time discarded after stalls
func (a *Accumulator) Dropped() time.Duration { return a.dropped }

func (a *Accumulator) Step() time.Duration { return a.step }
