package vmath

import (
	"math"
)

// Transform is a position plus a rotation about the vertical axis
// Yaw 0 faces +Z; positive yaw turns toward +X
type Transform struct {
	Position Vec3F
	Yaw      float64
}

// Forward returns the unit facing direction on the ground plane
func (t Transform) Forward() Vec3F {
	s, c := math.Sincos(t.Yaw)
	return Vec3F{X: s, Z: c}
}

// Right returns the unit lateral direction, perpendicular to Forward
func (t Transform) Right() Vec3F {
	s, c := math.Sincos(t.Yaw)
	return Vec3F{X: c, Z: -s}
}

// TransformPoint maps a local-space point into world space
func (t Transform) TransformPoint(local Vec3F) Vec3F {
	return V3FAdd(t.Position, t.TransformDirection(local))
}

// InverseTransformPoint maps a world-space point into local space
func (t Transform) InverseTransformPoint(world Vec3F) Vec3F {
	return t.InverseTransformDirection(V3FSub(world, t.Position))
}

// TransformDirection rotates a local direction into world space, ignoring position
func (t Transform) TransformDirection(local Vec3F) Vec3F {
	right, fwd := t.Right(), t.Forward()
	return Vec3F{
		X: right.X*local.X + fwd.X*local.Z,
		Y: local.Y,
		Z: right.Z*local.X + fwd.Z*local.Z,
	}
}

// InverseTransformDirection rotates a world direction into local space
func (t Transform) InverseTransformDirection(world Vec3F) Vec3F {
	return Vec3F{
		X: V3FDot(world, t.Right()),
		Y: world.Y,
		Z: V3FDot(world, t.Forward()),
	}
}

// LookYaw returns the yaw facing from one point toward another on the ground plane
// Returns fallback when the points coincide horizontally
func LookYaw(from, to Vec3F, fallback float64) float64 {
	dx, dz := to.X-from.X, to.Z-from.Z
	if IsZero(dx) && IsZero(dz) {
		return fallback
	}
	return math.Atan2(dx, dz)
}
