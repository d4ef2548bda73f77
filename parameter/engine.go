package parameter

import "time"

// Simulation Timing
const (
	// TickRate is the fixed simulation step frequency (Hz)
	TickRate = 60

	// FixedStep is the duration of one simulation step
	FixedStep = time.Second / TickRate

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepsPerFrame caps catch-up steps after a stall so the accumulator cannot spiral
	MaxStepsPerFrame = 5
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// EventDispatchPasses bounds how many times the router drains events pushed during dispatch
const EventDispatchPasses = 4

// Keeper Contact
const (
	// PossessionSpeed is the ball speed below which a ball at the keeper's feet is held (m/s)
	PossessionSpeed = 0.5

	// ReleaseDistanceFactor scales reach into the distance at which possession is lost
	ReleaseDistanceFactor = 2.0
)
