package director

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/lixenwraith/super-goalie/entity"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

// Config tunes the round flow
type Config struct {
	KickSpeed     float64
	OnTargetRatio float64
	// KickDelay is the run-up between a round being ready and the kick
	KickDelay  time.Duration
	ResetDelay time.Duration
	RearmDelay time.Duration
	// Spot is where the ball is placed for every kick
	Spot vmath.Vec3F
	// Auto kicks as soon as a round is ready instead of waiting for a shoot request
	Auto bool
	Seed uint64
}

// Resetter returns an actor to its round-start state
type Resetter interface {
	Reset()
}

// Director runs penalty rounds: run-up, kick, wait for resolution, reset, re-arm
type Director struct {
	cfg    Config
	ball   *entity.Ball
	goal   *entity.Goal
	keeper Resetter
	board  *match.Scoreboard

	emitter events.Emitter
	logger  *slog.Logger
	rng     *vmath.FastRand

	tree bt.Node
	dt   time.Duration

	requested bool
	aim       *vmath.Vec3F

	round    uuid.UUID
	inFlight bool
	resolved bool
	outcome  events.ShotOutcome
	rounds   int
}

// New builds a director and its round tree
func New(cfg Config, ball *entity.Ball, goal *entity.Goal, keeper Resetter, board *match.Scoreboard, emitter events.Emitter, logger *slog.Logger) *Director {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Director{
		cfg:     cfg,
		ball:    ball,
		goal:    goal,
		keeper:  keeper,
		board:   board,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "director")),
		rng:     vmath.NewFastRand(cfg.Seed),
	}

	d.tree = bt.New(
		bt.Memorize(bt.Sequence),
		bt.New(d.awaitKick),
		bt.New(d.wait(cfg.KickDelay)),
		bt.New(d.kick),
		bt.New(d.awaitResolution),
		bt.New(d.wait(cfg.ResetDelay)),
		bt.New(d.reset),
		bt.New(d.wait(cfg.RearmDelay)),
		bt.New(d.rearm),
	)
	return d
}

// Tick advances the round tree by one simulation step
func (d *Director) Tick(dt time.Duration) error {
	d.dt = dt
	if _, err := d.tree.Tick(); err != nil {
		return fmt.Errorf("director: %w", err)
	}
	return nil
}

// Round is the identifier of the current or last round
func (d *Director) Round() uuid.UUID { return d.round }

// Rounds is the number of completed rounds
func (d *Director) Rounds() int { return d.rounds }

// InFlight reports whether a kick is unresolved or the scene awaits reset
func (d *Director) InFlight() bool { return d.inFlight }

// Done reports whether the shoot-out is over and the last round has finished
func (d *Director) Done() bool { return d.board.GameOver() && !d.inFlight }

// === Leaves ===

func (d *Director) awaitKick([]bt.Node) (bt.Status, error) {
	if d.board.GameOver() {
		return bt.Running, nil
	}
	if d.cfg.Auto || d.requested {
		d.requested = false
		return bt.Success, nil
	}
	return bt.Running, nil
}

func (d *Director) kick([]bt.Node) (bt.Status, error) {
	target := d.PickTarget()
	if d.aim != nil {
		target = *d.aim
		d.aim = nil
	}

	d.requested = false
	d.round = uuid.New()
	d.resolved = false
	d.outcome = events.OutcomePending

	d.push(events.EventRoundStarted, &events.RoundPayload{
		Round:   d.round,
		Shooter: d.board.Shooter(),
		Kick:    d.board.Kick(),
	})
	if err := d.ball.Launch(d.cfg.KickSpeed, target); err != nil {
		return bt.Failure, err
	}
	d.inFlight = true

	d.logger.Info("round started",
		slog.String("round", d.round.String()),
		slog.Int("shooter", d.board.Shooter()),
		slog.Int("kick", d.board.Kick()),
		slog.Bool("on_target", d.goal.IsPositionWithinGoalMouthFrustum(target)),
	)
	return bt.Success, nil
}

func (d *Director) awaitResolution([]bt.Node) (bt.Status, error) {
	if !d.resolved {
		return bt.Running, nil
	}
	return bt.Success, nil
}

// wait succeeds once delay has elapsed across consecutive ticks
func (d *Director) wait(delay time.Duration) bt.Tick {
	var elapsed time.Duration
	return func([]bt.Node) (bt.Status, error) {
		elapsed += d.dt
		if elapsed < delay {
			return bt.Running, nil
		}
		elapsed = 0
		return bt.Success, nil
	}
}

func (d *Director) reset([]bt.Node) (bt.Status, error) {
	d.ball.Reset(d.cfg.Spot)
	d.keeper.Reset()
	d.push(events.EventRoundReset, &events.RoundPayload{
		Round:   d.round,
		Shooter: d.board.Shooter(),
	})
	return bt.Success, nil
}

func (d *Director) rearm([]bt.Node) (bt.Status, error) {
	d.goal.Trigger.Rearm()
	d.inFlight = false
	d.rounds++
	return bt.Success, nil
}

// PickTarget chooses an aim point: inside the mouth with probability OnTargetRatio,
// otherwise wide of a post or over the bar
func (d *Director) PickTarget() vmath.Vec3F {
	hw, h := d.goal.Width()/2, d.goal.Height()

	var local vmath.Vec3F
	switch {
	case d.rng.Float64() < d.cfg.OnTargetRatio:
		local.X = d.rng.Range(-hw+parameter.TargetPostMargin, hw-parameter.TargetPostMargin)
		local.Y = d.rng.Range(parameter.TargetBarMargin, h-parameter.TargetBarMargin)
	case d.rng.Intn(3) == 0:
		local.X = d.rng.Range(-hw, hw)
		local.Y = h + d.rng.Range(parameter.HighMin, parameter.HighMax)
	default:
		side := 1.0
		if d.rng.Intn(2) == 0 {
			side = -1
		}
		local.X = side * (hw + d.rng.Range(parameter.WideMin, parameter.WideMax))
		local.Y = d.rng.Range(parameter.TargetBarMargin, h)
	}
	return d.goal.Transform.TransformPoint(local)
}

// === Events ===

func (d *Director) HandleEvent(_ events.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventShootRequest:
		if d.inFlight {
			return
		}
		d.requested = true
		if p, ok := ev.Payload.(*events.ShootRequestPayload); ok {
			aim := p.Target
			d.aim = &aim
		}
	case events.EventShotResolved:
		p, ok := ev.Payload.(*events.ShotResolvedPayload)
		if !ok || p.Round != d.round || d.resolved {
			return
		}
		d.resolved = true
		d.outcome = p.Outcome
		d.logger.Info("round resolved",
			slog.String("round", d.round.String()),
			slog.String("outcome", p.Outcome.String()),
			slog.String("reason", p.Reason),
		)
	}
}

func (d *Director) EventTypes() []events.EventType {
	return []events.EventType{events.EventShootRequest, events.EventShotResolved}
}

func (d *Director) push(t events.EventType, payload any) {
	if d.emitter != nil {
		d.emitter.Push(events.GameEvent{Type: t, Payload: payload})
	}
}
