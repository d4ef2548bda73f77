package events

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/super-goalie/vmath"
)

// ShootRequestPayload aims a requested kick; a nil payload lets the director choose
type ShootRequestPayload struct {
	Target vmath.Vec3F
}

// BallLaunchedPayload carries the solved kick
type BallLaunchedPayload struct {
	FlightTime float64     // Seconds until the ball reaches Target
	Speed      float64     // Horizontal launch speed (m/s)
	Initial    vmath.Vec3F // Ball position at launch
	Target     vmath.Vec3F // Aimed point
}

// BallDeflectedPayload carries the post-punch velocity
type BallDeflectedPayload struct {
	Velocity vmath.Vec3F
}

// ShotOutcome is the resolution of a single kick
type ShotOutcome int

const (
	OutcomePending ShotOutcome = iota
	OutcomeScored
	OutcomeSaved
	OutcomeMissed
)

func (o ShotOutcome) String() string {
	switch o {
	case OutcomeScored:
		return "scored"
	case OutcomeSaved:
		return "saved"
	case OutcomeMissed:
		return "missed"
	default:
		return "pending"
	}
}

// ShotResolvedPayload carries the outcome of the current kick
type ShotResolvedPayload struct {
	Round   uuid.UUID
	Outcome ShotOutcome
	Reason  string // Detector rule that resolved the shot
}

// RoundPayload identifies a round
type RoundPayload struct {
	Round   uuid.UUID
	Shooter int // Shooter index (0 = A, 1 = B)
	Kick    int // 1-based kick number for the shooter
}

// GameOverPayload carries the final score
type GameOverPayload struct {
	Goals [2]int
}
