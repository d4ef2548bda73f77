package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyFrame       = "sim.frame"
	KeyPaused      = "sim.paused"
	KeyKeeperState = "keeper.state"
	KeyHasBall     = "keeper.has_ball"
	KeyBallSpeed   = "ball.speed"
	KeyGoalsA      = "score.a"
	KeyGoalsB      = "score.b"
	KeyShooter     = "match.shooter"
	KeyKick        = "match.kick"
	KeyRound       = "match.round"
	KeyOutcome     = "match.outcome"
	KeyGameOver    = "match.over"
)

// Board holds cached cells for the match HUD
type Board struct {
	Frame       *atomic.Int64
	Paused      *atomic.Bool
	KeeperState *AtomicString
	HasBall     *atomic.Bool
	BallSpeed   *AtomicFloat
	GoalsA      *atomic.Int64
	GoalsB      *atomic.Int64
	Shooter     *atomic.Int64
	Kick        *atomic.Int64
	Round       *AtomicString
	Outcome     *AtomicString
	GameOver    *atomic.Bool
}

// NewBoard resolves every HUD cell in the registry
func NewBoard(r *Registry) *Board {
	return &Board{
		Frame:       r.Ints.Get(KeyFrame),
		Paused:      r.Bools.Get(KeyPaused),
		KeeperState: r.Strings.Get(KeyKeeperState),
		HasBall:     r.Bools.Get(KeyHasBall),
		BallSpeed:   r.Floats.Get(KeyBallSpeed),
		GoalsA:      r.Ints.Get(KeyGoalsA),
		GoalsB:      r.Ints.Get(KeyGoalsB),
		Shooter:     r.Ints.Get(KeyShooter),
		Kick:        r.Ints.Get(KeyKick),
		Round:       r.Strings.Get(KeyRound),
		Outcome:     r.Strings.Get(KeyOutcome),
		GameOver:    r.Bools.Get(KeyGameOver),
	}
}
