package physics

import (
	"github.com/lixenwraith/super-goalie/parameter"
)

// Ground and steering profiles - pre-defined for zero allocation in hot path

// GroundProfile defines how a body interacts with the pitch surface
type GroundProfile struct {
	Height      float64 // World Y of the surface
	Restitution float64 // Vertical velocity retained on bounce
	SettleSpeed float64 // Bounce speed below which the body comes to rest vertically
	RollingDrag float64 // Fraction of horizontal speed lost per second while rolling
}

// Pitch is the default grass surface
var Pitch = GroundProfile{
	Height:      parameter.GroundHeight,
	Restitution: parameter.BallRestitution,
	SettleSpeed: parameter.BallSettleSpeed,
	RollingDrag: parameter.BallRollingDrag,
}

// SteeringProfile defines mover behavior parameters
type SteeringProfile struct {
	// Arrival steering (0 = disabled): speed ramps down inside this radius
	ArrivalRadius float64
	// ArrivalMinFactor keeps a minimum fraction of speed during arrival
	ArrivalMinFactor float64
	// DeadZone snaps the mover onto the target when closer than this
	DeadZone float64
	// TurnRate limits facing rotation (rad/s), 0 = instant
	TurnRate float64
}

// KeeperSteering is the goalkeeper's movement profile
// Arrival is disabled so dive timing matches the computed speed exactly
var KeeperSteering = SteeringProfile{
	DeadZone: parameter.SteeringDeadZone,
	TurnRate: parameter.SteeringTurnRate,
}
