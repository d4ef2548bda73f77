package physics

import (
	"math"

	"github.com/lixenwraith/super-goalie/vmath"
)

// Steering moves an owner transform toward a target point on the ground plane
// When steering is off no translation is applied; facing still tracks the face target
type Steering struct {
	body    *vmath.Transform
	profile *SteeringProfile

	target   vmath.Vec3F
	speed    float64
	on       bool
	velocity vmath.Vec3F

	facePos vmath.Vec3F
	faceOn  bool
}

// NewSteering creates a mover bound to the given transform
func NewSteering(body *vmath.Transform, profile *SteeringProfile) *Steering {
	if profile == nil {
		profile = &KeeperSteering
	}
	return &Steering{
		body:    body,
		profile: profile,
		target:  body.Position,
	}
}

func (s *Steering) SetMoveTarget(p vmath.Vec3F) {
	s.target = vmath.V3FWithY(p, s.body.Position.Y)
}

func (s *Steering) MoveTarget() vmath.Vec3F { return s.target }

func (s *Steering) SetSteeringOn()  { s.on = true }
func (s *Steering) SetSteeringOff() { s.on = false; s.velocity = vmath.Vec3F{} }

// SetSteering toggles steering, equivalent to SetSteeringOn/Off
func (s *Steering) SetSteering(on bool) {
	if on {
		s.SetSteeringOn()
	} else {
		s.SetSteeringOff()
	}
}

func (s *Steering) IsSteering() bool { return s.on }

func (s *Steering) Speed() float64 { return s.speed }

// SetSpeed sets the travel speed, negative values clamp to zero
func (s *Steering) SetSpeed(v float64) { s.speed = math.Max(0, v) }

// SetRotateFacePosition makes the owner turn toward p each update
func (s *Steering) SetRotateFacePosition(p vmath.Vec3F) {
	s.facePos = p
	s.faceOn = true
}

// ClearRotateFacePosition stops facing rotation
func (s *Steering) ClearRotateFacePosition() { s.faceOn = false }

// Velocity returns the velocity applied during the last update
func (s *Steering) Velocity() vmath.Vec3F { return s.velocity }

// Update moves and rotates the owner for one physics step
// Returns true if the owner is settled on the move target
func (s *Steering) Update(dt float64) bool {
	s.rotate(dt)

	if !s.on || dt <= 0 {
		s.velocity = vmath.Vec3F{}
		return false
	}

	delta := vmath.V3FFlat(vmath.V3FSub(s.target, s.body.Position))
	dist := vmath.V3FMag(delta)

	// Dead zone snap: land exactly on target
	if dist <= s.profile.DeadZone {
		s.body.Position = vmath.V3FWithY(s.target, s.body.Position.Y)
		s.velocity = vmath.Vec3F{}
		return true
	}

	speed := s.speed
	if s.profile.ArrivalRadius > 0 && dist < s.profile.ArrivalRadius {
		factor := math.Max(dist/s.profile.ArrivalRadius, s.profile.ArrivalMinFactor)
		speed *= factor
	}

	// Clamp step to remaining distance to prevent overshoot
	step := math.Min(speed*dt, dist)
	dir := vmath.V3FScale(delta, 1/dist)
	move := vmath.V3FScale(dir, step)

	s.body.Position = vmath.V3FAdd(s.body.Position, move)
	s.velocity = vmath.V3FScale(move, 1/dt)
	return step >= dist
}

func (s *Steering) rotate(dt float64) {
	if !s.faceOn {
		return
	}
	want := vmath.LookYaw(s.body.Position, s.facePos, s.body.Yaw)
	if s.profile.TurnRate <= 0 {
		s.body.Yaw = want
		return
	}

	diff := math.Remainder(want-s.body.Yaw, 2*math.Pi)
	maxTurn := s.profile.TurnRate * dt
	s.body.Yaw += vmath.Clamp(diff, -maxTurn, maxTurn)
}
