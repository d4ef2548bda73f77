package match

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/super-goalie/events"
)

// DetectorConfig holds the miss rules
type DetectorConfig struct {
	MaxShotTime time.Duration
	StopSpeed   float64
	StopGrace   time.Duration
}

// Detector decides how a kick ended: goal, save, or miss
// Armed by a launch, it resolves once per kick
type Detector struct {
	cfg DetectorConfig

	round    uuid.UUID
	armed    bool
	resolved bool
	elapsed  time.Duration
	slow     time.Duration
	outcome  events.ShotOutcome

	emitter events.Emitter
	logger  *slog.Logger
}

func NewDetector(cfg DetectorConfig, emitter events.Emitter, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Detector{cfg: cfg, emitter: emitter, logger: logger}
}

// Armed reports whether a kick is in flight and unresolved
func (d *Detector) Armed() bool { return d.armed && !d.resolved }

// Outcome is the last resolution, pending while a kick is in flight
func (d *Detector) Outcome() events.ShotOutcome { return d.outcome }

func (d *Detector) HandleEvent(_ events.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRoundStarted:
		if p, ok := ev.Payload.(*events.RoundPayload); ok {
			d.round = p.Round
		}
	case events.EventBallLaunched:
		d.armed = true
		d.resolved = false
		d.elapsed = 0
		d.slow = 0
		d.outcome = events.OutcomePending
	case events.EventGoalScored:
		d.resolve(events.OutcomeScored, "goal")
	case events.EventBallDeflected:
		d.resolve(events.OutcomeSaved, "deflected")
	}
}

func (d *Detector) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRoundStarted,
		events.EventBallLaunched,
		events.EventGoalScored,
		events.EventBallDeflected,
	}
}

// Step applies the miss rules for one tick
func (d *Detector) Step(dt time.Duration, ballSpeed float64) {
	if !d.Armed() {
		return
	}
	d.elapsed += dt
	if d.elapsed > d.cfg.MaxShotTime {
		d.resolve(events.OutcomeMissed, "timeout")
		return
	}

	if ballSpeed < d.cfg.StopSpeed {
		d.slow += dt
		if d.slow >= d.cfg.StopGrace {
			d.resolve(events.OutcomeMissed, "stopped")
		}
	} else {
		d.slow = 0
	}
}

func (d *Detector) resolve(outcome events.ShotOutcome, reason string) {
	if !d.Armed() {
		return
	}
	d.resolved = true
	d.armed = false
	d.outcome = outcome

	d.logger.Info("shot resolved",
		slog.String("round", d.round.String()),
		slog.String("outcome", outcome.String()),
		slog.String("reason", reason),
	)
	if d.emitter != nil {
		d.emitter.Push(events.GameEvent{
			Type: events.EventShotResolved,
			Payload: &events.ShotResolvedPayload{
				Round:   d.round,
				Outcome: outcome,
				Reason:  reason,
			},
		})
	}
}
