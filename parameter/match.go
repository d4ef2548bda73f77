package parameter

import "time"

// Shoot-out Rules
const (
	// ShotsPerPlayer is the number of kicks each shooter takes
	ShotsPerPlayer = 5

	// KickSpeed is the horizontal launch speed of a penalty (m/s)
	KickSpeed = 20.0

	// OnTargetRatio is the probability the shooter aims inside the goal mouth
	OnTargetRatio = 0.75
)

// Shot Resolution
const (
	// MaxShotTime resolves an unresolved shot as missed
	MaxShotTime = 2500 * time.Millisecond

	// StopSpeed is the ball speed below which the shot is considered dead (m/s)
	StopSpeed = 0.6

	// StopGrace is how long the ball must stay below StopSpeed
	StopGrace = 250 * time.Millisecond
)

// Round Flow
const (
	// KickDelay is the run-up before each kick, long enough for the keeper to settle
	KickDelay = 1500 * time.Millisecond

	// ResetDelay is the pause between shot resolution and scene reset
	ResetDelay = 5 * time.Second

	// RearmDelay is the pause between scene reset and goal trigger reactivation
	RearmDelay = 1 * time.Second
)

// Shooter Aim
const (
	// TargetPostMargin keeps on-target aims inside the posts (m)
	TargetPostMargin = 0.3

	// TargetBarMargin keeps on-target aims off the ground and under the bar (m)
	TargetBarMargin = 0.2

	// WideMin and WideMax bound how far outside a post a wide aim lands (m)
	WideMin = 0.4
	WideMax = 2.5

	// HighMin and HighMax bound how far over the bar a high aim lands (m)
	HighMin = 0.3
	HighMax = 1.5

	// NetDamping is the fraction of velocity the net leaves on a scored ball
	NetDamping = 0.1
)
