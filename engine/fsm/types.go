package fsm

import (
	"time"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/vmath"
)

// StateID is a unique identifier for a state within a machine
// Values are owned by the package that registers the states
type StateID int

const StateNone StateID = 0

// ContactPhase is the lifecycle stage of a collision or overlap
type ContactPhase uint8

const (
	PhaseBegin ContactPhase = iota
	PhaseStay
	PhaseEnd
)

func (p ContactPhase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseStay:
		return "stay"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// Contact describes a collision or trigger overlap reported by the physics pass
type Contact struct {
	Tag           string // Tag of the other body ("ball", "goal")
	Point         vmath.Vec3F
	Normal        vmath.Vec3F
	RelativeSpeed float64
}

// State is the capability set a machine drives
// Embed BaseState to get no-op defaults and override only the hooks needed
type State[T any] interface {
	Name() string

	// Initialize runs once when the owning machine initializes
	Initialize(ctx T) error

	Enter(ctx T)
	Exit(ctx T)

	// Execute is the frame tick
	Execute(ctx T, dt time.Duration)
	// ManualExecute is the custom-interval tick
	ManualExecute(ctx T)
	PhysicsExecute(ctx T, dt time.Duration)
	PostExecute(ctx T, dt time.Duration)

	OnCollision(ctx T, phase ContactPhase, c Contact)
	OnTrigger(ctx T, phase ContactPhase, c Contact)
	OnAnimatorIK(ctx T, layer int, dt time.Duration)
	OnAnimatorMove(ctx T, dt time.Duration)

	// HandleEvent receives events forwarded from the owner's inbox
	HandleEvent(ctx T, ev events.GameEvent)

	bind(id StateID, m, root *Machine[T])
}
