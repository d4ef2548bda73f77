package goalkeeper

import (
	"time"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/events"
)

// idleState waits for the ball to come within threatening distance
// Its nested machine tracks possession
type idleState struct {
	fsm.Composite[*Keeper]
}

func (s *idleState) Name() string { return "Idle" }

func (s *idleState) Initialize(k *Keeper) error {
	sub := s.Sub()
	sub.AddState(StateCheckIfHasBall, &checkIfHasBallState{})
	sub.AddState(StateIdleWithBall, &idleWithBallState{})
	sub.AddState(StateIdleWithNoBall, &idleWithNoBallState{})
	sub.SetInitialState(StateCheckIfHasBall)
	return s.Composite.Initialize(k)
}

func (s *idleState) Enter(k *Keeper) {
	k.anim.SetTrigger(animation.TriggerIdle)
	k.move.SetSteeringOff()
	s.Composite.Enter(k)
}

func (s *idleState) Execute(k *Keeper, dt time.Duration) {
	if k.IsBallWithinThreateningDistance() {
		s.Machine().ChangeState(StateTendGoal)
		return
	}
	s.Composite.Execute(k, dt)
}

func (s *idleState) Exit(k *Keeper) {
	s.Composite.Exit(k)
	k.anim.ResetTrigger(animation.TriggerIdle)
}

// checkIfHasBallState routes into the possession branch on entry
type checkIfHasBallState struct {
	fsm.BaseState[*Keeper]
}

func (s *checkIfHasBallState) Name() string { return "CheckIfHasBall" }

func (s *checkIfHasBallState) Enter(k *Keeper) {
	if k.HasBall() {
		s.Machine().ChangeState(StateIdleWithBall)
	} else {
		s.Machine().ChangeState(StateIdleWithNoBall)
	}
}

type idleWithBallState struct {
	fsm.BaseState[*Keeper]
}

func (s *idleWithBallState) Name() string { return "IdleWithBall" }

func (s *idleWithBallState) Enter(k *Keeper) {
	k.anim.SetBool(animation.ParamHasBall, true)
}

func (s *idleWithBallState) HandleEvent(_ *Keeper, ev events.GameEvent) {
	if ev.Type == events.EventBallLost {
		s.Machine().ChangeState(StateIdleWithNoBall)
	}
}

type idleWithNoBallState struct {
	fsm.BaseState[*Keeper]
}

func (s *idleWithNoBallState) Name() string { return "IdleWithNoBall" }

func (s *idleWithNoBallState) Enter(k *Keeper) {
	k.anim.SetBool(animation.ParamHasBall, false)
}

func (s *idleWithNoBallState) HandleEvent(_ *Keeper, ev events.GameEvent) {
	if ev.Type == events.EventBallAcquired {
		s.Machine().ChangeState(StateIdleWithBall)
	}
}
