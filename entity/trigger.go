package entity

import (
	"math"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/vmath"
)

// GoalTrigger is the volume behind the goal line
// Fires EventGoalScored once when the ball has fully crossed, then deactivates
// until Rearm is called
type GoalTrigger struct {
	frame  vmath.Transform
	halfW  float64
	height float64
	depth  float64
	active bool
}

func NewGoalTrigger(frame vmath.Transform, width, height, depth float64) *GoalTrigger {
	return &GoalTrigger{
		frame:  frame,
		halfW:  width / 2,
		height: height,
		depth:  depth,
		active: true,
	}
}

func (t *GoalTrigger) Active() bool { return t.active }

// Rearm reactivates the trigger for a new round
func (t *GoalTrigger) Rearm() { t.active = true }

// Deactivate disables the trigger without firing
func (t *GoalTrigger) Deactivate() { t.active = false }

// Contains reports whether a sphere of the given radius is wholly past the goal line
// and inside the net volume
func (t *GoalTrigger) Contains(center vmath.Vec3F, radius float64) bool {
	rel := t.frame.InverseTransformPoint(center)
	return rel.Z < -radius && rel.Z > -t.depth &&
		math.Abs(rel.X) < t.halfW &&
		rel.Y < t.height
}

// Check tests the ball against the volume and emits EventGoalScored on entry
// Returns true only on the step that fired
func (t *GoalTrigger) Check(ball *Ball, emitter events.Emitter) bool {
	if !t.active || !t.Contains(ball.Position(), ball.Radius) {
		return false
	}
	t.active = false
	if emitter != nil {
		emitter.Push(events.GameEvent{Type: events.EventGoalScored})
	}
	return true
}
