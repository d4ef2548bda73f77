package goalkeeper

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/entity"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/physics"
	"github.com/lixenwraith/super-goalie/vmath"
)

// ErrMissingCollaborator is returned when a keeper is built without its ball or goal
var ErrMissingCollaborator = errors.New("missing collaborator")

// Shot is the launch data cached from the last EventBallLaunched
type Shot struct {
	FlightTime float64
	Speed      float64
	Initial    vmath.Vec3F
	Target     vmath.Vec3F
}

// Options configures a Keeper
type Options struct {
	Params    Params
	Transform vmath.Transform

	Ball *entity.Ball
	Goal *entity.Goal

	// Movement defaults to a steering mover bound to the keeper transform
	Movement Movement

	// Emitter carries possession and punch notifications; nil delivers possession locally
	Emitter events.Emitter
	Logger  *slog.Logger

	// Seed drives patrol jitter
	Seed uint64
}

// Keeper is the goalkeeper actor: parameters, collaborators, and its state machine
type Keeper struct {
	Params Params

	transform  vmath.Transform
	rootOffset float64

	ball *entity.Ball
	goal *entity.Goal
	move Movement
	anim animation.Animator
	fsm  *fsm.Machine[*Keeper]

	emitter events.Emitter
	logger  *slog.Logger
	rng     *vmath.FastRand

	inbox   []events.GameEvent
	shot    Shot
	hasBall bool
}

// New creates an uninitialized keeper
// Attach an animator with SetAnimator, then call Initialize
func New(opts Options) (*Keeper, error) {
	if opts.Ball == nil {
		return nil, fmt.Errorf("keeper: ball: %w", ErrMissingCollaborator)
	}
	if opts.Goal == nil {
		return nil, fmt.Errorf("keeper: goal: %w", ErrMissingCollaborator)
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("keeper params: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	k := &Keeper{
		Params:    opts.Params,
		transform: opts.Transform,
		ball:      opts.Ball,
		goal:      opts.Goal,
		move:      opts.Movement,
		emitter:   opts.Emitter,
		logger:    logger.With(slog.String("actor", "keeper")),
		rng:       vmath.NewFastRand(opts.Seed),
	}
	if k.move == nil {
		k.move = physics.NewSteering(&k.transform, &physics.KeeperSteering)
	}
	return k, nil
}

// SetAnimator attaches the animation capability; must precede Initialize
func (k *Keeper) SetAnimator(a animation.Animator) { k.anim = a }

// Initialize builds and enters the state machine
// A missing animator degrades to a no-op animator
// A keeper is initialized once; Teardown releases it for another Initialize
func (k *Keeper) Initialize() error {
	if k.fsm != nil && k.fsm.Initialized() {
		return fmt.Errorf("keeper: %w", &fsm.ConfigError{Machine: k.fsm.Name(), Err: fsm.ErrAlreadyInitialized})
	}
	if k.anim == nil {
		k.logger.Warn("no animator attached, animation disabled")
		k.anim = animation.Nop{}
	}
	k.fsm = newMachine(k, k.logger)
	if err := k.fsm.Initialize(); err != nil {
		return fmt.Errorf("keeper: %w", err)
	}
	return nil
}

// === Accessors ===

func (k *Keeper) Transform() vmath.Transform     { return k.transform }
func (k *Keeper) SetTransform(t vmath.Transform) { k.transform = t }
func (k *Keeper) Position() vmath.Vec3F          { return k.transform.Position }

// RootOffset is the visual lift of the model root above the transform
func (k *Keeper) RootOffset() float64 { return k.rootOffset }

func (k *Keeper) Ball() *entity.Ball             { return k.ball }
func (k *Keeper) Goal() *entity.Goal             { return k.goal }
func (k *Keeper) Movement() Movement             { return k.move }
func (k *Keeper) Animator() animation.Animator   { return k.anim }
func (k *Keeper) FSM() *fsm.Machine[*Keeper]     { return k.fsm }
func (k *Keeper) Shot() Shot                     { return k.shot }
func (k *Keeper) HasBall() bool                  { return k.hasBall }
func (k *Keeper) Logger() *slog.Logger           { return k.logger }
func (k *Keeper) StateName() string              { return k.fsm.CurrentStateName() }
func (k *Keeper) IsInState(id fsm.StateID) bool  { return k.fsm.IsCurrentState(id) }
func (k *Keeper) WasInState(id fsm.StateID) bool { return k.fsm.IsPreviousState(id) }
func (k *Keeper) CurrentStateID() fsm.StateID    { return k.fsm.CurrentID() }
func (k *Keeper) PreviousStateID() fsm.StateID   { return k.fsm.PreviousID() }

// SetHasBall updates possession, notifying only on change
func (k *Keeper) SetHasBall(v bool) {
	if k.hasBall == v {
		return
	}
	k.hasBall = v
	t := events.EventBallLost
	if v {
		t = events.EventBallAcquired
	}
	k.emit(t, nil)
}

// === Queries ===

func (k *Keeper) ballToGoalDistance() float64 {
	return vmath.V3FDist(vmath.V3FFlat(k.ball.Position()), vmath.V3FFlat(k.goal.Position()))
}

func (k *Keeper) IsBallWithinThreateningDistance() bool {
	return k.ballToGoalDistance() <= k.Params.ThreateningDistance
}

func (k *Keeper) IsBallWithinChasingDistance() bool {
	return k.ballToGoalDistance() <= k.Params.ChasingDistance
}

// IsShotOnTarget reports whether the cached shot target lies inside the goal mouth
func (k *Keeper) IsShotOnTarget() bool {
	return k.goal.IsPositionWithinGoalMouthFrustum(k.shot.Target)
}

func (k *Keeper) cacheShot(p *events.BallLaunchedPayload) {
	k.shot = Shot{
		FlightTime: p.FlightTime,
		Speed:      p.Speed,
		Initial:    p.Initial,
		Target:     p.Target,
	}
}

// PatrolPoint is the guarding spot for a ball at the given position, before jitter
// The ball is projected into goal space, pushed out to the tend distance, and
// its lateral offset scaled down and clamped inside the posts
func (k *Keeper) PatrolPoint(ball vmath.Vec3F) vmath.Vec3F {
	local := k.goal.Transform.InverseTransformPoint(vmath.V3FFlat(ball))
	local.Z = k.Params.TendGoalDistance
	local.X = vmath.Clamp(local.X/parameter.TendLateralScale, -parameter.TendLateralLimit, parameter.TendLateralLimit)
	return vmath.V3FFlat(k.goal.Transform.TransformPoint(local))
}

// === Events ===

// HandleEvent queues an event for the active state's next frame tick
func (k *Keeper) HandleEvent(_ events.Frame, ev events.GameEvent) {
	k.inbox = append(k.inbox, ev)
}

func (k *Keeper) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBallLaunched,
		events.EventBallAcquired,
		events.EventBallLost,
	}
}

func (k *Keeper) emit(t events.EventType, payload any) {
	ev := events.GameEvent{Type: t, Payload: payload}
	if k.emitter != nil {
		k.emitter.Push(ev)
		return
	}
	if t == events.EventBallAcquired || t == events.EventBallLost {
		k.inbox = append(k.inbox, ev)
	}
}

func (k *Keeper) drainInbox() {
	for len(k.inbox) > 0 {
		pending := k.inbox
		k.inbox = nil
		for _, ev := range pending {
			k.fsm.HandleEvent(ev)
		}
	}
}

// === Simulation hooks ===

// Update delivers queued events to the active state, then runs the frame tick
func (k *Keeper) Update(dt time.Duration) {
	k.drainInbox()
	k.fsm.Update(dt)
}

// PhysicsUpdate runs the state physics tick and advances a self-driven mover
func (k *Keeper) PhysicsUpdate(dt time.Duration) {
	k.fsm.PhysicsUpdate(dt)
	if d, ok := k.move.(drivenMovement); ok {
		d.Update(dt.Seconds())
	}
}

func (k *Keeper) LateUpdate(dt time.Duration) { k.fsm.LateUpdate(dt) }

// AnimatorMove runs the root-motion callback
func (k *Keeper) AnimatorMove(dt time.Duration) { k.fsm.OnAnimatorMove(dt) }

// AnimatorIK runs the IK callback on the base layer
func (k *Keeper) AnimatorIK(dt time.Duration) { k.fsm.OnAnimatorIK(0, dt) }

func (k *Keeper) OnCollision(phase fsm.ContactPhase, c fsm.Contact) { k.fsm.OnCollision(phase, c) }
func (k *Keeper) OnTrigger(phase fsm.ContactPhase, c fsm.Contact)   { k.fsm.OnTrigger(phase, c) }

// Reset forces the keeper back to Idle for a new round
func (k *Keeper) Reset() {
	if k.fsm == nil {
		return
	}
	k.inbox = nil
	k.fsm.ChangeState(StateIdle)
	k.rootOffset = 0
	for _, g := range []animation.IKGoal{animation.LeftHand, animation.RightHand} {
		k.anim.SetIKPositionWeight(g, 0)
	}
	k.anim.SetLookAtWeight(0)
}

// Teardown exits the current state and stops the machine clocks
func (k *Keeper) Teardown() {
	if k.fsm != nil {
		k.fsm.Teardown()
	}
}

var (
	_ animation.Pose               = (*Keeper)(nil)
	_ events.Handler[events.Frame] = (*Keeper)(nil)
)
