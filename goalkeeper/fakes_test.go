package goalkeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/entity"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

const testDT = time.Second / 60

// recordingAnimator captures every call the states make
type recordingAnimator struct {
	set      map[string]int
	reset    map[string]int
	pending  map[string]bool
	bools    map[string]bool
	floats   map[string]float64
	ikWeight [2]float64
	ikPos    [2]vmath.Vec3F
	look     float64
	clip     string
	bone     func(animation.IKGoal) vmath.Vec3F
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{
		set:     make(map[string]int),
		reset:   make(map[string]int),
		pending: make(map[string]bool),
		bools:   make(map[string]bool),
		floats:  make(map[string]float64),
		clip:    animation.ClipIdle,
	}
}

func (a *recordingAnimator) SetTrigger(name string) {
	a.set[name]++
	a.pending[name] = true
}

func (a *recordingAnimator) ResetTrigger(name string) {
	a.reset[name]++
	delete(a.pending, name)
}

func (a *recordingAnimator) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *recordingAnimator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *recordingAnimator) SetFloatDamped(name string, v, _, _ float64) {
	a.floats[name] = v
}
func (a *recordingAnimator) SetIKPositionWeight(g animation.IKGoal, w float64) { a.ikWeight[g] = w }
func (a *recordingAnimator) SetIKPosition(g animation.IKGoal, p vmath.Vec3F)   { a.ikPos[g] = p }
func (a *recordingAnimator) SetLookAtWeight(w float64)                         { a.look = w }
func (a *recordingAnimator) SetLookAtPosition(vmath.Vec3F)                     {}
func (a *recordingAnimator) IsState(name string) bool                          { return a.clip == name }

func (a *recordingAnimator) BonePosition(g animation.IKGoal) vmath.Vec3F {
	if a.bone != nil {
		return a.bone(g)
	}
	return vmath.Vec3F{Y: -1000}
}

// fixture is a keeper guarding a goal at the origin with the ball on the penalty spot
type fixture struct {
	keeper *Keeper
	anim   *recordingAnimator
	ball   *entity.Ball
	goal   *entity.Goal
	queue  *events.EventQueue
}

var penaltySpot = vmath.Vec3F{Y: parameter.BallRadius, Z: parameter.PenaltyDistance}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	q := events.NewEventQueue()
	ball := entity.NewBall(penaltySpot, parameter.BallGravity, parameter.BallRadius, q)
	goal := entity.NewGoal(vmath.Transform{}, parameter.GoalWidth, parameter.GoalHeight, parameter.GoalDepth)

	opts := Options{
		Params:    DefaultParams(),
		Transform: vmath.Transform{Position: vmath.Vec3F{Z: 1}},
		Ball:      ball,
		Goal:      goal,
		Emitter:   q,
		Seed:      7,
	}
	if mutate != nil {
		mutate(&opts)
	}

	k, err := New(opts)
	require.NoError(t, err)
	anim := newRecordingAnimator()
	k.SetAnimator(anim)
	require.NoError(t, k.Initialize())

	return &fixture{keeper: k, anim: anim, ball: ball, goal: goal, queue: q}
}

// pump routes queued events to the keeper, returning everything consumed
func (f *fixture) pump() []events.GameEvent {
	evs := f.queue.Consume()
	for _, ev := range evs {
		for _, et := range f.keeper.EventTypes() {
			if ev.Type == et {
				f.keeper.HandleEvent(events.Frame{}, ev)
			}
		}
	}
	return evs
}

// tick runs dispatch, frame and physics ticks
func (f *fixture) tick() []events.GameEvent {
	evs := f.pump()
	f.keeper.Update(testDT)
	f.keeper.PhysicsUpdate(testDT)
	return evs
}

// tendGoal drives the keeper from Idle into TendGoal
func (f *fixture) tendGoal(t *testing.T) {
	t.Helper()
	f.tick()
	require.True(t, f.keeper.IsInState(StateTendGoal), "state %s", f.keeper.StateName())
}

func hasEvent(evs []events.GameEvent, et events.EventType) bool {
	for _, ev := range evs {
		if ev.Type == et {
			return true
		}
	}
	return false
}
