package parameter

// Goalkeeper Defaults
const (
	KeeperReach            = 0.5
	KeeperJumpDistance     = 1.0
	KeeperJumpHeight       = 0.5
	KeeperDiveSpeed        = 4.0
	KeeperGoalkeeping      = 0.85
	KeeperHeight           = 1.9
	KeeperTendGoalDistance = 3.0
	KeeperTendGoalSpeed    = 3.0
)

// Goalkeeper Awareness
const (
	// ThreateningDistance is the ball-to-goal distance at which the keeper starts tending goal (m)
	ThreateningDistance = 30.0

	// ChasingDistance is the ball-to-goal distance at which the keeper would leave the line (m)
	ChasingDistance = 20.0
)

// Tend Goal Positioning
const (
	// TendLateralScale divides the ball's lateral offset before clamping
	TendLateralScale = 3.0

	// TendLateralLimit clamps the patrol point to stay inside the posts (m)
	TendLateralLimit = 2.14

	// TendSteerThreshold is the distance to the patrol point below which steering idles (m)
	TendSteerThreshold = 1.0

	// TendPeriodMax is the reposition period at zero goalkeeping (s)
	TendPeriodMax = 2.0

	// TendPeriodFloor is the shortest reposition period (s)
	TendPeriodFloor = 0.2

	// TendForwardMin and TendForwardMax bound the animator's forward locomotion float
	TendForwardMin = -1.0
	TendForwardMax = 0.5
)

// Shot Interception
const (
	// InterceptArriveDistance disables dive steering once this close to the dive target (m)
	InterceptArriveDistance = 0.1

	// InterceptForwardBias scales reach when biasing the intercept point ahead of the keeper
	InterceptForwardBias = 0.5

	// InterceptIKRange is the ball distance, in multiples of reach, where hand IK starts engaging
	InterceptIKRange = 5.0
)

// Punch Resolution
const (
	// PunchSideDeadband is the lateral offset beyond which the ball is punched sideways (m)
	PunchSideDeadband = 0.1

	// PunchSpeedFactor is the fraction of pre-contact speed kept after a punch
	PunchSpeedFactor = 0.5

	// PunchIKDecayRate is how fast hand IK weight releases after a punch (1/s)
	PunchIKDecayRate = 10.0
)

// Animator Smoothing
const (
	// AnimatorDampTime is the smoothing time for locomotion floats (s)
	AnimatorDampTime = 0.1
)

// KeeperStartDistance is the spawn distance off the goal line (m)
const KeeperStartDistance = 0.5
