package parameter

// Goal Geometry (regulation 7.32 x 2.44)
const (
	GoalWidth  = 7.32
	GoalHeight = 2.44

	// GoalDepth is the net depth behind the goal line, used by the goal trigger volume
	GoalDepth = 2.0

	// PenaltyDistance is the kick spot distance from the goal line (m)
	PenaltyDistance = 11.0
)
