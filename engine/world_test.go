package engine

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/config"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/goalkeeper"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

// quickConfig shortens every delay so a shoot-out finishes in a few thousand steps
func quickConfig() config.Config {
	cfg := config.Default()
	cfg.Match.ShotsPerPlayer = 2
	cfg.Match.KickDelay = time.Second
	cfg.Match.ResetDelay = 500 * time.Millisecond
	cfg.Match.RearmDelay = 200 * time.Millisecond
	cfg.Sim.Seed = 11
	return cfg
}

func newWorld(t *testing.T, cfg config.Config, opts Options) *World {
	t.Helper()
	w, err := NewWorld(cfg, opts)
	require.NoError(t, err)
	return w
}

// recorder counts routed events by type
type recorder struct {
	types []events.EventType
	seen  map[events.EventType]int
}

func newRecorder(types ...events.EventType) *recorder {
	return &recorder{types: types, seen: make(map[events.EventType]int)}
}

func (r *recorder) HandleEvent(_ events.Frame, ev events.GameEvent) { r.seen[ev.Type]++ }
func (r *recorder) EventTypes() []events.EventType                  { return r.types }

func TestNewWorld_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Keeper.Goalkeeping = 2
	_, err := NewWorld(cfg, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goalkeeping")
}

func TestWorld_KeeperTendsGoalBeforeKick(t *testing.T) {
	w := newWorld(t, quickConfig(), Options{})
	assert.True(t, w.Keeper().IsInState(goalkeeper.StateIdle))

	for range 5 {
		require.NoError(t, w.Step())
	}
	assert.True(t, w.Keeper().IsInState(goalkeeper.StateTendGoal))
	assert.Equal(t, "TendGoal", w.HUD().KeeperState.Load())
	assert.Equal(t, int64(5), w.HUD().Frame.Load())
	assert.Zero(t, w.Ball().Speed(), "run-up has not finished")
}

func TestWorld_HeadlessShootout(t *testing.T) {
	rec := newRecorder(events.EventBallLaunched, events.EventRoundReset, events.EventShotResolved)
	w := newWorld(t, quickConfig(), Options{Sound: rec})

	steps, err := w.Run(context.Background(), 5000)
	require.NoError(t, err)
	assert.Positive(t, steps)
	assert.True(t, w.Done())

	board := w.Scoreboard()
	require.True(t, board.GameOver())
	assert.Equal(t, 2, board.Taken(match.ShooterA))
	assert.Equal(t, 2, board.Taken(match.ShooterB))
	for _, s := range []int{match.ShooterA, match.ShooterB} {
		for _, o := range board.Results(s) {
			assert.NotEqual(t, events.OutcomePending, o)
		}
	}

	assert.Equal(t, 4, rec.seen[events.EventBallLaunched])
	assert.Equal(t, 4, rec.seen[events.EventShotResolved])
	assert.Equal(t, 4, rec.seen[events.EventRoundReset])
	assert.Equal(t, 4, w.Director().Rounds())

	hud := w.HUD()
	assert.True(t, hud.GameOver.Load())
	goals := board.Goals()
	assert.Equal(t, int64(goals[match.ShooterA]), hud.GoalsA.Load())
	assert.Equal(t, int64(goals[match.ShooterB]), hud.GoalsB.Load())
	assert.NotEmpty(t, hud.Outcome.Load())

	// Every round ends with the keeper back in position to guard the next kick
	assert.False(t, w.Keeper().IsInState(goalkeeper.StateInterceptShot))
	assert.False(t, w.Keeper().IsInState(goalkeeper.StatePunchBall))
}

func TestWorld_DeterministicPerSeed(t *testing.T) {
	a := newWorld(t, quickConfig(), Options{})
	b := newWorld(t, quickConfig(), Options{})

	sa, err := a.Run(context.Background(), 5000)
	require.NoError(t, err)
	sb, err := b.Run(context.Background(), 5000)
	require.NoError(t, err)

	assert.Equal(t, sa, sb)
	assert.Equal(t, a.Scoreboard().Results(match.ShooterA), b.Scoreboard().Results(match.ShooterA))
	assert.Equal(t, a.Scoreboard().Results(match.ShooterB), b.Scoreboard().Results(match.ShooterB))
}

func TestWorld_RunStepLimit(t *testing.T) {
	w := newWorld(t, quickConfig(), Options{})
	steps, err := w.Run(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, 10, steps)
}

func TestWorld_RunCancelled(t *testing.T) {
	w := newWorld(t, quickConfig(), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorld_InteractiveShot(t *testing.T) {
	cfg := quickConfig()
	cfg.Match.Auto = false
	cfg.Match.KickDelay = 0
	rec := newRecorder(events.EventBallLaunched)
	w := newWorld(t, cfg, Options{Sound: rec})

	for range 120 {
		require.NoError(t, w.Step())
	}
	assert.Zero(t, rec.seen[events.EventBallLaunched])
	assert.False(t, w.Director().InFlight())

	aim := vmath.Vec3F{X: -3, Y: 0.5}
	w.RequestShot(&aim)
	require.NoError(t, w.Step())
	require.NoError(t, w.Step())

	assert.Equal(t, 1, rec.seen[events.EventBallLaunched])
	assert.True(t, w.Director().InFlight())
	assert.Positive(t, w.Ball().Speed())
	assert.True(t, w.Detector().Armed())
}

func TestWorld_PushStampsFrame(t *testing.T) {
	w := newWorld(t, quickConfig(), Options{})
	for range 3 {
		require.NoError(t, w.Step())
	}
	w.Queue().Consume()

	w.Push(events.GameEvent{Type: events.EventBallPunched})
	evs := w.Queue().Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, int64(3), evs[0].Frame)
}

func TestWorld_PossessionWhenBallSettlesAtKeeper(t *testing.T) {
	w := newWorld(t, quickConfig(), Options{})
	require.NoError(t, w.Step())

	at := w.Keeper().Position()
	w.Ball().Reset(vmath.V3FWithY(at, w.Config().Ball.Radius))
	require.NoError(t, w.Step())
	assert.True(t, w.Keeper().HasBall())
	assert.True(t, w.HUD().HasBall.Load())

	w.Ball().Reset(w.Config().PenaltySpot())
	require.NoError(t, w.Step())
	assert.False(t, w.Keeper().HasBall())
}

func TestWorld_WarnsOnQueueOverflow(t *testing.T) {
	var buf bytes.Buffer
	w := newWorld(t, quickConfig(), Options{Logger: slog.New(slog.NewTextHandler(&buf, nil))})

	require.NoError(t, w.Step())
	assert.NotContains(t, buf.String(), "event queue overflow")

	w.Queue().Consume()
	for range parameter.EventQueueSize + 5 {
		w.Queue().Push(events.GameEvent{Type: events.EventBallPunched})
	}
	require.NoError(t, w.Step())
	assert.Contains(t, buf.String(), "event queue overflow")
	assert.Contains(t, buf.String(), "dropped=5")

	buf.Reset()
	require.NoError(t, w.Step())
	assert.NotContains(t, buf.String(), "event queue overflow")
}
