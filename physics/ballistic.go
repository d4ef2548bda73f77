package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/super-goalie/vmath"
)

// ErrInvalidLaunch is returned when a launch cannot be solved (non-positive power or no horizontal travel)
var ErrInvalidLaunch = errors.New("invalid launch")

// FuturePosition predicts where a body will be after t seconds under constant downward gravity
// Vertical axis: y0 + vy*t - g*t²/2; horizontal plane: constant velocity
// Pure function, t is expected to be >= 0
func FuturePosition(pos, vel vmath.Vec3F, gravity, t float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: pos.X + vel.X*t,
		Y: pos.Y + vel.Y*t - 0.5*gravity*t*t,
		Z: pos.Z + vel.Z*t,
	}
}

// FutureVelocity returns the velocity after t seconds under constant downward gravity
func FutureVelocity(vel vmath.Vec3F, gravity, t float64) vmath.Vec3F {
	return vmath.Vec3F{X: vel.X, Y: vel.Y - gravity*t, Z: vel.Z}
}

// SolveLaunch finds the initial velocity that carries a body from `from` to `to`
// while covering the horizontal distance at `power` m/s
// xz = v_xz*t, y = v_y*t - g*t²/2 solved for v_y with t = |xz|/power
func SolveLaunch(from, to vmath.Vec3F, power, gravity float64) (vel vmath.Vec3F, flightTime float64, err error) {
	if power <= 0 {
		return vmath.Vec3F{}, 0, fmt.Errorf("%w: power %.3f", ErrInvalidLaunch, power)
	}

	toTarget := vmath.V3FSub(to, from)
	flat := vmath.V3FFlat(toTarget)
	dist := vmath.V3FMag(flat)
	if dist <= vmath.Epsilon {
		return vmath.Vec3F{}, 0, fmt.Errorf("%w: target has no horizontal offset", ErrInvalidLaunch)
	}

	flightTime = dist / power
	vel = vmath.V3FScale(flat, 1/flightTime)
	vel.Y = toTarget.Y/flightTime + 0.5*gravity*flightTime
	return vel, flightTime, nil
}

// TimeToHorizontalDistance returns how long a body moving at `speed` takes to cover `dist`
// Zero speed resolves to zero time
func TimeToHorizontalDistance(dist, speed float64) float64 {
	if speed <= vmath.Epsilon {
		return 0
	}
	return dist / speed
}
