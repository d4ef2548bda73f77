package goalkeeper

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/entity"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/vmath"
)

func TestNew_MissingCollaborators(t *testing.T) {
	_, err := New(Options{Params: DefaultParams()})
	require.ErrorIs(t, err, ErrMissingCollaborator)

	ball := entity.NewBall(vmath.Vec3F{}, 9, 0.11, nil)
	_, err = New(Options{Params: DefaultParams(), Ball: ball})
	require.ErrorIs(t, err, ErrMissingCollaborator)
	assert.Contains(t, err.Error(), "goal")
}

func TestNew_RejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Goalkeeping = 1.5
	p.Height = 0

	ball := entity.NewBall(vmath.Vec3F{}, 9, 0.11, nil)
	goal := entity.NewGoal(vmath.Transform{}, 7.32, 2.44, 2)
	_, err := New(Options{Params: p, Ball: ball, Goal: goal})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goalkeeping")
	assert.Contains(t, err.Error(), "height")
}

func TestParams_Derived(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, p.JumpDistance+p.Reach, p.DiveReach(), 1e-12)
	assert.InDelta(t, p.Height+p.JumpHeight, p.JumpReach(), 1e-12)
	assert.NoError(t, p.Validate())
}

func TestInitialize_WithoutAnimatorDegrades(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ball := entity.NewBall(vmath.Vec3F{Z: 100}, 9, 0.11, nil)
	goal := entity.NewGoal(vmath.Transform{}, 7.32, 2.44, 2)
	k, err := New(Options{Params: DefaultParams(), Ball: ball, Goal: goal, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, k.Initialize())

	assert.IsType(t, animation.Nop{}, k.Animator())
	assert.Contains(t, buf.String(), "no animator attached")
	assert.True(t, k.IsInState(StateIdle))

	// Ticking with the fallback never fails
	for range 10 {
		k.Update(testDT)
		k.PhysicsUpdate(testDT)
		k.AnimatorMove(testDT)
		k.AnimatorIK(testDT)
		k.LateUpdate(testDT)
	}
	assert.True(t, k.IsInState(StateIdle))
}

func TestKeeper_DistanceQueries(t *testing.T) {
	f := newFixture(t, nil)

	f.ball.SetPosition(vmath.Vec3F{Z: 11})
	assert.True(t, f.keeper.IsBallWithinThreateningDistance())
	assert.True(t, f.keeper.IsBallWithinChasingDistance())

	f.ball.SetPosition(vmath.Vec3F{Z: 25})
	assert.True(t, f.keeper.IsBallWithinThreateningDistance())
	assert.False(t, f.keeper.IsBallWithinChasingDistance())

	// Height does not count toward distance
	f.ball.SetPosition(vmath.Vec3F{Y: 50, Z: 25})
	assert.True(t, f.keeper.IsBallWithinThreateningDistance())

	f.ball.SetPosition(vmath.Vec3F{X: 30, Z: 5})
	assert.False(t, f.keeper.IsBallWithinThreateningDistance())
}

func TestKeeper_PatrolPoint(t *testing.T) {
	f := newFixture(t, nil)

	p := f.keeper.PatrolPoint(vmath.Vec3F{Y: 0.11, Z: 11})
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, f.keeper.Params.TendGoalDistance, p.Z, 1e-9)

	p = f.keeper.PatrolPoint(vmath.Vec3F{X: 3, Z: 11})
	assert.InDelta(t, 1, p.X, 1e-9)

	p = f.keeper.PatrolPoint(vmath.Vec3F{X: -20, Z: 11})
	assert.InDelta(t, -2.14, p.X, 1e-9)
}

func TestKeeper_PossessionDrivesIdleSubStates(t *testing.T) {
	f := newFixture(t, nil)
	f.ball.SetPosition(vmath.Vec3F{Z: 100})

	idle, ok := f.keeper.FSM().GetState(StateIdle).(*idleState)
	require.True(t, ok)
	sub := idle.Sub()
	assert.True(t, sub.IsCurrentState(StateIdleWithNoBall))
	assert.False(t, f.anim.bools[animation.ParamHasBall])

	f.keeper.SetHasBall(true)
	assert.Equal(t, 1, f.queue.Len())
	f.keeper.SetHasBall(true)
	assert.Equal(t, 1, f.queue.Len(), "no notification without a change")

	evs := f.tick()
	require.True(t, hasEvent(evs, events.EventBallAcquired))
	assert.True(t, sub.IsCurrentState(StateIdleWithBall))
	assert.True(t, f.anim.bools[animation.ParamHasBall])

	f.keeper.SetHasBall(false)
	evs = f.tick()
	require.True(t, hasEvent(evs, events.EventBallLost))
	assert.True(t, sub.IsCurrentState(StateIdleWithNoBall))
	assert.True(t, sub.IsPreviousState(StateIdleWithBall))
}

func TestKeeper_PossessionWithoutEmitter(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Emitter = nil })
	f.ball.SetPosition(vmath.Vec3F{Z: 100})

	f.keeper.SetHasBall(true)
	f.keeper.Update(testDT)

	idle := f.keeper.FSM().GetState(StateIdle).(*idleState)
	assert.True(t, idle.Sub().IsCurrentState(StateIdleWithBall))
}

func TestKeeper_EnterIdleWithBallRoutesDirectly(t *testing.T) {
	f := newFixture(t, nil)
	f.keeper.SetHasBall(true)
	f.pump()
	f.keeper.Reset()

	idle := f.keeper.FSM().GetState(StateIdle).(*idleState)
	assert.True(t, idle.Sub().IsCurrentState(StateIdleWithBall))
	assert.True(t, idle.Sub().IsPreviousState(StateCheckIfHasBall))
}

func TestKeeper_ResetFromAnyState(t *testing.T) {
	f := newFixture(t, nil)
	f.tendGoal(t)
	require.NoError(t, f.ball.Launch(20, vmath.Vec3F{Y: 1}))
	f.tick()
	require.True(t, f.keeper.IsInState(StateInterceptShot))

	f.keeper.Reset()
	assert.True(t, f.keeper.IsInState(StateIdle))
	assert.Zero(t, f.keeper.RootOffset())
	assert.Equal(t, 1, f.anim.reset[animation.TriggerDive])
	assert.Zero(t, f.anim.ikWeight[animation.LeftHand])
	assert.Zero(t, f.anim.ikWeight[animation.RightHand])
}

func TestKeeper_InitializeOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.tendGoal(t)
	machine := f.keeper.FSM()

	err := f.keeper.Initialize()
	require.ErrorIs(t, err, fsm.ErrAlreadyInitialized)
	assert.Contains(t, err.Error(), "keeper")
	assert.Same(t, machine, f.keeper.FSM())
	assert.True(t, f.keeper.IsInState(StateTendGoal))

	f.keeper.Teardown()
	require.NoError(t, f.keeper.Initialize())
	assert.True(t, f.keeper.IsInState(StateIdle))
}

func TestKeeper_MachineNamesStates(t *testing.T) {
	f := newFixture(t, nil)
	err := f.keeper.FSM().TryChangeState(StateIdleWithBall)
	require.ErrorIs(t, err, fsm.ErrUnknownState)
	assert.Contains(t, err.Error(), `state "IdleWithBall"`)
	assert.Equal(t, "PunchBall", f.keeper.FSM().StateName(StatePunchBall))
}
