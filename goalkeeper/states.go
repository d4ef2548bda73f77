package goalkeeper

import (
	"log/slog"

	"github.com/lixenwraith/super-goalie/engine/fsm"
)

// Keeper state identities
const (
	StateIdle fsm.StateID = iota + 1
	StateTendGoal
	StateInterceptShot
	StatePunchBall
	StateIgnoreShot

	// Idle sub-states
	StateCheckIfHasBall
	StateIdleWithBall
	StateIdleWithNoBall
)

var stateNames = map[fsm.StateID]string{
	StateIdle:           "Idle",
	StateTendGoal:       "TendGoal",
	StateInterceptShot:  "InterceptShot",
	StatePunchBall:      "PunchBall",
	StateIgnoreShot:     "IgnoreShot",
	StateCheckIfHasBall: "CheckIfHasBall",
	StateIdleWithBall:   "IdleWithBall",
	StateIdleWithNoBall: "IdleWithNoBall",
}

// newMachine assembles the keeper behaviour graph with Idle as the entry state
func newMachine(k *Keeper, logger *slog.Logger) *fsm.Machine[*Keeper] {
	m := fsm.NewMachine("keeper", k, logger)
	m.AddState(StateIdle, &idleState{})
	m.AddState(StateTendGoal, &tendGoalState{})
	m.AddState(StateInterceptShot, &interceptShotState{})
	m.AddState(StatePunchBall, &punchBallState{})
	m.AddState(StateIgnoreShot, &ignoreShotState{})
	m.SetInitialState(StateIdle)
	m.SetStateNames(stateNames)
	return m
}
