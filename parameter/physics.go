package parameter

// Ball Physics
const (
	// BallGravity is the downward acceleration applied to the ball (m/s²)
	BallGravity = 9.0

	// BallRadius is the collision radius of the ball (m)
	BallRadius = 0.11

	// BallRestitution is the vertical velocity retained on a ground bounce
	BallRestitution = 0.55

	// BallRollingDrag is the fraction of horizontal speed lost per second while grounded
	BallRollingDrag = 0.8

	// BallSettleSpeed is the vertical speed below which a bounce is absorbed
	BallSettleSpeed = 0.3

	// GroundHeight is the world Y of the pitch surface
	GroundHeight = 0.0
)

// Steering
const (
	// SteeringDeadZone is the snap-to-target distance for the mover (m)
	SteeringDeadZone = 0.02

	// SteeringTurnRate is the maximum facing rotation speed (rad/s), 0 turns instantly
	SteeringTurnRate = 12.0
)
