package match

import (
	"log/slog"

	"github.com/lixenwraith/super-goalie/events"
)

// Shooter indices
const (
	ShooterA = 0
	ShooterB = 1
)

// Scoreboard tracks an alternating penalty shoot-out
// Each turn accepts exactly one result; EndTurn hands the kick to the other shooter
type Scoreboard struct {
	shotsPerPlayer int
	results        [2][]events.ShotOutcome
	goals          [2]int
	shooter        int
	turnActive     bool
	over           bool

	emitter events.Emitter
	logger  *slog.Logger
}

// NewScoreboard creates a scoreboard with shooter A to kick; emitter may be nil
func NewScoreboard(shotsPerPlayer int, emitter events.Emitter, logger *slog.Logger) *Scoreboard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scoreboard{
		shotsPerPlayer: max(shotsPerPlayer, 1),
		turnActive:     true,
		emitter:        emitter,
		logger:         logger,
	}
}

func (s *Scoreboard) Shooter() int          { return s.shooter }
func (s *Scoreboard) TurnActive() bool      { return s.turnActive }
func (s *Scoreboard) GameOver() bool        { return s.over }
func (s *Scoreboard) Goals() [2]int         { return s.goals }
func (s *Scoreboard) ShotsPerPlayer() int   { return s.shotsPerPlayer }
func (s *Scoreboard) Taken(shooter int) int { return len(s.results[shooter]) }

// Results returns a copy of a shooter's outcomes in kick order
func (s *Scoreboard) Results(shooter int) []events.ShotOutcome {
	out := make([]events.ShotOutcome, len(s.results[shooter]))
	copy(out, s.results[shooter])
	return out
}

// Kick is the 1-based number of the current shooter's next kick
func (s *Scoreboard) Kick() int { return len(s.results[s.shooter]) + 1 }

// Record books the current turn's outcome
// Returns false when the turn was already resolved or the shoot-out is over
func (s *Scoreboard) Record(outcome events.ShotOutcome) bool {
	if !s.turnActive || s.over || outcome == events.OutcomePending {
		return false
	}
	s.turnActive = false

	s.results[s.shooter] = append(s.results[s.shooter], outcome)
	if outcome == events.OutcomeScored {
		s.goals[s.shooter]++
	}
	s.logger.Info("shot recorded",
		slog.Int("shooter", s.shooter),
		slog.String("outcome", outcome.String()),
		slog.Int("goals_a", s.goals[ShooterA]),
		slog.Int("goals_b", s.goals[ShooterB]),
	)

	if s.Taken(ShooterA) >= s.shotsPerPlayer && s.Taken(ShooterB) >= s.shotsPerPlayer {
		s.over = true
		s.logger.Info("game over", slog.Int("winner", s.Winner()))
		if s.emitter != nil {
			s.emitter.Push(events.GameEvent{
				Type:    events.EventGameOver,
				Payload: &events.GameOverPayload{Goals: s.goals},
			})
		}
	}
	return true
}

// EndTurn passes the kick to the other shooter
func (s *Scoreboard) EndTurn() {
	if s.over {
		return
	}
	s.shooter = 1 - s.shooter
	s.turnActive = true
}

// Winner returns the leading shooter, or -1 when level
func (s *Scoreboard) Winner() int {
	switch {
	case s.goals[ShooterA] > s.goals[ShooterB]:
		return ShooterA
	case s.goals[ShooterB] > s.goals[ShooterA]:
		return ShooterB
	default:
		return -1
	}
}

// HandleEvent records resolutions and ends turns on round reset
func (s *Scoreboard) HandleEvent(_ events.Frame, ev events.GameEvent) {
	switch ev.Type {
	case events.EventShotResolved:
		if p, ok := ev.Payload.(*events.ShotResolvedPayload); ok {
			s.Record(p.Outcome)
		}
	case events.EventRoundReset:
		s.EndTurn()
	}
}

func (s *Scoreboard) EventTypes() []events.EventType {
	return []events.EventType{events.EventShotResolved, events.EventRoundReset}
}
