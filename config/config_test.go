package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/goalkeeper"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, goalkeeper.DefaultParams(), cfg.KeeperParams())
	assert.Equal(t, parameter.FixedStep, cfg.FixedStep())
}

func TestParse_PartialOverride(t *testing.T) {
	cfg, err := Parse(`
[keeper]
goalkeeping = 1.0

[match]
shots_per_player = 3
reset_delay = "2s"
auto = false
`)
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Keeper.Goalkeeping)
	assert.Equal(t, 3, cfg.Match.ShotsPerPlayer)
	assert.Equal(t, 2*time.Second, cfg.Match.ResetDelay)
	assert.False(t, cfg.Match.Auto)

	// Untouched keys keep their defaults
	def := Default()
	assert.Equal(t, def.Keeper.Reach, cfg.Keeper.Reach)
	assert.Equal(t, def.Ball, cfg.Ball)
	assert.Equal(t, def.Match.MaxShotTime, cfg.Match.MaxShotTime)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse(`
[keeper]
reech = 0.4
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keeper.reech")
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(`[keeper`)
	require.Error(t, err)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Keeper.Goalkeeping = 1.5
	cfg.Ball.KickSpeed = 0
	cfg.Match.ShotsPerPlayer = 0
	cfg.Match.OnTargetRatio = -0.1
	cfg.Match.ResetDelay = -time.Second
	cfg.Sim.TickRate = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"goalkeeping",
		"ball.kick_speed",
		"match.shots_per_player",
		"match.on_target_ratio",
		"match.reset_delay",
		"sim.tick_rate",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalie.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sim]\nseed = 99\naudio = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Sim.Seed)
	assert.False(t, cfg.Sim.Audio)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[goal]\nwidth = -1.0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal.width")
}

func TestWrite_LoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	assert.Contains(t, buf.String(), "[keeper]")

	cfg, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDerivedGeometry(t *testing.T) {
	cfg := Default()
	cfg.Goal.Position = [3]float64{5, 0, -2}
	cfg.Goal.Yaw = 90

	g := cfg.GoalTransform()
	assert.InDelta(t, 1.5707963, g.Yaw, 1e-6)

	spot := cfg.PenaltySpot()
	assert.InDelta(t, cfg.Ball.Radius, spot.Y, 1e-9)
	assert.InDelta(t, cfg.Goal.PenaltyDistance, vmath.V3FDist(vmath.V3FFlat(spot), vmath.V3FFlat(g.Position)), 1e-9)

	keeper := cfg.KeeperTransform()
	assert.Zero(t, keeper.Position.Y)
	assert.InDelta(t, cfg.Keeper.StartDistance, vmath.V3FDist(keeper.Position, vmath.V3FFlat(g.Position)), 1e-9)
	assert.Equal(t, g.Yaw, keeper.Yaw)

	d := cfg.Director()
	assert.Equal(t, spot, d.Spot)
	assert.Equal(t, cfg.Ball.KickSpeed, d.KickSpeed)
	assert.Equal(t, cfg.Match.MaxShotTime, cfg.Detector().MaxShotTime)
}
