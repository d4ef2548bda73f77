package entity

import (
	"fmt"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/physics"
	"github.com/lixenwraith/super-goalie/vmath"
)

// Ball is a sphere under constant downward gravity
type Ball struct {
	body    physics.Kinetic
	Gravity float64
	Radius  float64

	ground  *physics.GroundProfile
	emitter events.Emitter
}

// NewBall creates a resting ball at pos; emitter may be nil
func NewBall(pos vmath.Vec3F, gravity, radius float64, emitter events.Emitter) *Ball {
	return &Ball{
		body: physics.Kinetic{
			Position: pos,
			Accel:    vmath.Vec3F{Y: -gravity},
		},
		Gravity: gravity,
		Radius:  radius,
		ground:  &physics.Pitch,
		emitter: emitter,
	}
}

func (b *Ball) Position() vmath.Vec3F     { return b.body.Position }
func (b *Ball) SetPosition(p vmath.Vec3F) { b.body.Position = p }
func (b *Ball) Velocity() vmath.Vec3F     { return b.body.Velocity }
func (b *Ball) SetVelocity(v vmath.Vec3F) { physics.SetImpulse(&b.body, v) }
func (b *Ball) Speed() float64            { return physics.Speed(&b.body) }

// FuturePosition predicts the ball position t seconds ahead without mutating it
// Negative t is treated as zero
func (b *Ball) FuturePosition(t float64) vmath.Vec3F {
	if t < 0 {
		t = 0
	}
	return physics.FuturePosition(b.body.Position, b.body.Velocity, b.Gravity, t)
}

// Launch sets the velocity that reaches target at the given horizontal power
// and emits EventBallLaunched
func (b *Ball) Launch(power float64, target vmath.Vec3F) error {
	initial := b.body.Position
	vel, flight, err := physics.SolveLaunch(initial, target, power, b.Gravity)
	if err != nil {
		return fmt.Errorf("launch to %+v: %w", target, err)
	}
	physics.SetImpulse(&b.body, vel)

	if b.emitter != nil {
		b.emitter.Push(events.GameEvent{
			Type: events.EventBallLaunched,
			Payload: &events.BallLaunchedPayload{
				FlightTime: flight,
				Speed:      power,
				Initial:    initial,
				Target:     target,
			},
		})
	}
	return nil
}

// Stop zeroes the velocity
func (b *Ball) Stop() {
	physics.SetImpulse(&b.body, vmath.Vec3F{})
}

// Reset places the ball at pos at rest
func (b *Ball) Reset(pos vmath.Vec3F) {
	b.Stop()
	b.body.Position = pos
}

// Step integrates the ball for one physics tick, bouncing off the ground
// Returns true if the ball touched the ground
func (b *Ball) Step(dt float64) bool {
	if b.Grounded() && vmath.V3FMagSq(b.body.Velocity) == 0 {
		return true
	}
	physics.Integrate(&b.body, dt)
	return physics.ReflectGround(&b.body, b.Radius, b.ground, dt)
}

// Grounded reports whether the ball rests on the pitch
func (b *Ball) Grounded() bool {
	return physics.Grounded(&b.body, b.Radius, b.ground)
}
