package physics

import (
	"math"

	"github.com/lixenwraith/super-goalie/vmath"
)

// Kinetic is the integrated state of a free body
type Kinetic struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Accel    vmath.Vec3F
}

// Integrate advances the body under constant acceleration over dt
// Uses the exact closed form so integration agrees with FuturePosition
func Integrate(k *Kinetic, dt float64) {
	k.Position = vmath.V3FAdd(k.Position, vmath.V3FAdd(
		vmath.V3FScale(k.Velocity, dt),
		vmath.V3FScale(k.Accel, 0.5*dt*dt),
	))
	k.Velocity = vmath.V3FAdd(k.Velocity, vmath.V3FScale(k.Accel, dt))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *Kinetic, dv vmath.Vec3F) {
	k.Velocity = vmath.V3FAdd(k.Velocity, dv)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *Kinetic, v vmath.Vec3F) {
	k.Velocity = v
}

// Speed returns the body's velocity magnitude
func Speed(k *Kinetic) float64 {
	return vmath.V3FMag(k.Velocity)
}

// ReflectGround bounces a sphere of the given radius off the ground plane
// Returns true if the sphere touched the ground this step
func ReflectGround(k *Kinetic, radius float64, profile *GroundProfile, dt float64) bool {
	floor := profile.Height + radius
	if k.Position.Y > floor {
		return false
	}

	k.Position.Y = floor
	if k.Velocity.Y < 0 {
		k.Velocity.Y = -k.Velocity.Y * profile.Restitution
		if k.Velocity.Y < profile.SettleSpeed {
			k.Velocity.Y = 0
		}
	}

	// Rolling drag while in contact
	if k.Velocity.Y == 0 && profile.RollingDrag > 0 {
		keep := math.Max(0, 1-profile.RollingDrag*dt)
		k.Velocity.X *= keep
		k.Velocity.Z *= keep
	}
	return true
}

// Grounded reports whether the sphere is resting on the ground plane
func Grounded(k *Kinetic, radius float64, profile *GroundProfile) bool {
	return k.Position.Y <= profile.Height+radius+vmath.Epsilon && k.Velocity.Y == 0
}
