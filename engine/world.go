package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/config"
	"github.com/lixenwraith/super-goalie/director"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/entity"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/goalkeeper"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/status"
	"github.com/lixenwraith/super-goalie/vmath"
)

// Options carries optional world collaborators
type Options struct {
	Logger *slog.Logger
	// Sound receives routed events when set
	Sound events.Handler[events.Frame]
	// Status is created when nil
	Status *status.Registry
}

// World owns the penalty scene and advances it in fixed steps
// Step is single-threaded; other goroutines may only push events via RequestShot or Queue
type World struct {
	cfg    config.Config
	step   time.Duration
	logger *slog.Logger

	queue       *events.EventQueue
	router      *events.Router[events.Frame]
	droppedSeen uint64

	ball     *entity.Ball
	goal     *entity.Goal
	keeper   *goalkeeper.Keeper
	anim     *animation.Controller
	board    *match.Scoreboard
	detector *match.Detector
	director *director.Director

	registry *status.Registry
	hud      *status.Board

	frame    int64
	elapsed  time.Duration
	touching bool
}

// NewWorld validates the configuration and assembles the scene
func NewWorld(cfg config.Config, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &World{
		cfg:      cfg,
		step:     cfg.FixedStep(),
		logger:   logger,
		queue:    events.NewEventQueue(),
		registry: opts.Status,
	}
	if w.registry == nil {
		w.registry = status.NewRegistry()
	}
	w.hud = status.NewBoard(w.registry)
	w.router = events.NewRouter[events.Frame](w.queue)

	w.goal = entity.NewGoal(cfg.GoalTransform(), cfg.Goal.Width, cfg.Goal.Height, cfg.Goal.Depth)
	w.ball = entity.NewBall(cfg.PenaltySpot(), cfg.Ball.Gravity, cfg.Ball.Radius, w)

	keeper, err := goalkeeper.New(goalkeeper.Options{
		Params:    cfg.KeeperParams(),
		Transform: cfg.KeeperTransform(),
		Ball:      w.ball,
		Goal:      w.goal,
		Emitter:   w,
		Logger:    logger,
		Seed:      cfg.Sim.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	w.keeper = keeper
	w.anim = animation.NewController(keeper, logger)
	keeper.SetAnimator(w.anim)
	if err := keeper.Initialize(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w.board = match.NewScoreboard(cfg.Match.ShotsPerPlayer, w, logger)
	w.detector = match.NewDetector(cfg.Detector(), w, logger)
	w.director = director.New(cfg.Director(), w.ball, w.goal, keeper, w.board, w, logger)

	w.router.Register(keeper)
	w.router.Register(w.detector)
	w.router.Register(w.board)
	w.router.Register(w.director)
	w.router.Register(events.HandlerFunc[events.Frame]{
		Types: []events.EventType{events.EventShotResolved, events.EventGameOver},
		Fn:    w.onMatchEvent,
	})
	if opts.Sound != nil {
		w.router.Register(opts.Sound)
	}

	w.publish()
	return w, nil
}

// Push stamps the current frame and enqueues; simulation goroutine only
func (w *World) Push(ev events.GameEvent) {
	ev.Frame = w.frame
	w.queue.Push(ev)
}

// RequestShot asks the director for a kick, optionally aimed; safe from any goroutine
func (w *World) RequestShot(target *vmath.Vec3F) {
	ev := events.GameEvent{Type: events.EventShootRequest}
	if target != nil {
		ev.Payload = &events.ShootRequestPayload{Target: *target}
	}
	w.queue.Push(ev)
}

// === Accessors ===

func (w *World) Config() config.Config                { return w.cfg }
func (w *World) StepDuration() time.Duration          { return w.step }
func (w *World) Frame() int64                         { return w.frame }
func (w *World) Elapsed() time.Duration               { return w.elapsed }
func (w *World) Ball() *entity.Ball                   { return w.ball }
func (w *World) Goal() *entity.Goal                   { return w.goal }
func (w *World) Keeper() *goalkeeper.Keeper           { return w.keeper }
func (w *World) Animator() *animation.Controller      { return w.anim }
func (w *World) Scoreboard() *match.Scoreboard        { return w.board }
func (w *World) Detector() *match.Detector            { return w.detector }
func (w *World) Director() *director.Director         { return w.director }
func (w *World) Queue() *events.EventQueue            { return w.queue }
func (w *World) Router() *events.Router[events.Frame] { return w.router }
func (w *World) Status() *status.Registry             { return w.registry }
func (w *World) HUD() *status.Board                   { return w.hud }

// Done reports whether every kick has been taken and the last round has closed
func (w *World) Done() bool { return w.director.Done() }

// Step advances the scene by one fixed step
func (w *World) Step() error {
	dt := w.step
	ctx := events.Frame{Index: w.frame, Elapsed: w.elapsed.Seconds()}

	if err := w.director.Tick(dt); err != nil {
		return err
	}
	w.router.DispatchAll(ctx)
	if d := w.queue.Dropped(); d > w.droppedSeen {
		w.logger.Warn("event queue overflow", slog.Uint64("dropped", d-w.droppedSeen), slog.Int64("frame", w.frame))
		w.droppedSeen = d
	}

	w.keeper.Update(dt)

	w.keeper.PhysicsUpdate(dt)
	w.ball.Step(dt.Seconds())
	if w.goal.Trigger.Check(w.ball, w) {
		w.ball.SetVelocity(vmath.V3FScale(w.ball.Velocity(), parameter.NetDamping))
	}
	w.detector.Step(dt, w.ball.Speed())
	w.contact()

	w.anim.Advance(dt.Seconds())
	w.keeper.AnimatorMove(dt)
	w.keeper.AnimatorIK(dt)
	w.anim.SolveRig()

	w.keeper.LateUpdate(dt)
	w.possession()

	w.frame++
	w.elapsed += dt
	w.publish()
	return nil
}

// Run steps until the shoot-out ends, the context is cancelled, or maxSteps is reached
// maxSteps <= 0 means no limit
func (w *World) Run(ctx context.Context, maxSteps int) (int, error) {
	steps := 0
	for !w.Done() {
		if maxSteps > 0 && steps >= maxSteps {
			return steps, fmt.Errorf("world: no result after %d steps", steps)
		}
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if err := w.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// contact reports keeper body and ball overlap to the active state
func (w *World) contact() {
	kp := w.keeper.Position()
	bp := w.ball.Position()
	flat := vmath.V3FSub(vmath.V3FFlat(bp), vmath.V3FFlat(kp))

	p := w.keeper.Params
	top := kp.Y + w.keeper.RootOffset() + p.Height
	overlapping := vmath.V3FMag(flat) <= p.Reach+w.ball.Radius && bp.Y-w.ball.Radius <= top

	var phase fsm.ContactPhase
	switch {
	case overlapping && !w.touching:
		phase = fsm.PhaseBegin
	case overlapping:
		phase = fsm.PhaseStay
	case w.touching:
		phase = fsm.PhaseEnd
	default:
		return
	}
	w.touching = overlapping

	rel := vmath.V3FSub(w.ball.Velocity(), w.keeper.Movement().Velocity())
	w.keeper.OnCollision(phase, fsm.Contact{
		Tag:           "ball",
		Point:         bp,
		Normal:        vmath.V3FNormalize(flat),
		RelativeSpeed: vmath.V3FMag(rel),
	})
}

// possession grants the ball to the keeper when it settles within reach
func (w *World) possession() {
	d := vmath.V3FDist(vmath.V3FFlat(w.ball.Position()), vmath.V3FFlat(w.keeper.Position()))
	reach := w.keeper.Params.Reach + w.ball.Radius
	switch {
	case !w.keeper.HasBall() && d <= reach && w.ball.Speed() < parameter.PossessionSpeed:
		w.keeper.SetHasBall(true)
	case w.keeper.HasBall() && d > reach*parameter.ReleaseDistanceFactor:
		w.keeper.SetHasBall(false)
	}
}

func (w *World) onMatchEvent(f events.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventShotResolved:
		if p, ok := ev.Payload.(*events.ShotResolvedPayload); ok {
			w.hud.Outcome.Store(p.Outcome.String())
		}
	case events.EventGameOver:
		goals := w.board.Goals()
		w.logger.Info("shoot-out finished",
			slog.Int64("frame", f.Index),
			slog.Int("goals_a", goals[match.ShooterA]),
			slog.Int("goals_b", goals[match.ShooterB]),
			slog.Int("winner", w.board.Winner()),
		)
	}
}

func (w *World) publish() {
	h := w.hud
	goals := w.board.Goals()
	h.Frame.Store(w.frame)
	h.KeeperState.Store(w.keeper.StateName())
	h.HasBall.Store(w.keeper.HasBall())
	h.BallSpeed.Set(w.ball.Speed())
	h.GoalsA.Store(int64(goals[match.ShooterA]))
	h.GoalsB.Store(int64(goals[match.ShooterB]))
	h.Shooter.Store(int64(w.board.Shooter()))
	h.Kick.Store(int64(w.board.Kick()))
	h.Round.Store(w.director.Round().String())
	h.GameOver.Store(w.board.GameOver())
}

var _ events.Emitter = (*World)(nil)
