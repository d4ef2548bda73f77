package goalkeeper

import (
	"github.com/lixenwraith/super-goalie/vmath"
)

// Movement is the locomotion capability the states drive
// With steering on the mover carries the keeper toward the move target at Speed;
// with steering off it applies no translation
type Movement interface {
	SetMoveTarget(p vmath.Vec3F)
	SetSteeringOn()
	SetSteeringOff()
	Speed() float64
	SetSpeed(v float64)
	SetRotateFacePosition(p vmath.Vec3F)
	Velocity() vmath.Vec3F
}

// drivenMovement is a mover the keeper advances itself during the physics tick
type drivenMovement interface {
	Update(dt float64) bool
}

func setSteering(m Movement, on bool) {
	if on {
		m.SetSteeringOn()
	} else {
		m.SetSteeringOff()
	}
}
