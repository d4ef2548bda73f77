package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/super-goalie/director"
	"github.com/lixenwraith/super-goalie/goalkeeper"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

// Config is the user-facing simulation configuration
type Config struct {
	Keeper KeeperConfig `toml:"keeper"`
	Ball   BallConfig   `toml:"ball"`
	Goal   GoalConfig   `toml:"goal"`
	Match  MatchConfig  `toml:"match"`
	Sim    SimConfig    `toml:"sim"`
}

type KeeperConfig struct {
	Reach               float64 `toml:"reach"`
	JumpDistance        float64 `toml:"jump_distance"`
	JumpHeight          float64 `toml:"jump_height"`
	DiveSpeed           float64 `toml:"dive_speed"`
	Goalkeeping         float64 `toml:"goalkeeping"`
	Height              float64 `toml:"height"`
	TendGoalDistance    float64 `toml:"tend_goal_distance"`
	TendGoalSpeed       float64 `toml:"tend_goal_speed"`
	ThreateningDistance float64 `toml:"threatening_distance"`
	ChasingDistance     float64 `toml:"chasing_distance"`
	// StartDistance is the keeper's spawn distance off the goal line (m)
	StartDistance float64 `toml:"start_distance"`
}

type BallConfig struct {
	Gravity   float64 `toml:"gravity"`
	Radius    float64 `toml:"radius"`
	KickSpeed float64 `toml:"kick_speed"`
}

type GoalConfig struct {
	Width    float64    `toml:"width"`
	Height   float64    `toml:"height"`
	Depth    float64    `toml:"depth"`
	Position [3]float64 `toml:"position"`
	// Yaw in degrees; 0 faces the pitch along +Z
	Yaw float64 `toml:"yaw"`
	// PenaltyDistance is the kick spot distance from the goal line (m)
	PenaltyDistance float64 `toml:"penalty_distance"`
}

type MatchConfig struct {
	ShotsPerPlayer int           `toml:"shots_per_player"`
	MaxShotTime    time.Duration `toml:"max_shot_time"`
	StopSpeed      float64       `toml:"stop_speed"`
	StopGrace      time.Duration `toml:"stop_grace"`
	KickDelay      time.Duration `toml:"kick_delay"`
	ResetDelay     time.Duration `toml:"reset_delay"`
	RearmDelay     time.Duration `toml:"rearm_delay"`
	OnTargetRatio  float64       `toml:"on_target_ratio"`
	// Auto kicks without waiting for a shoot request
	Auto bool `toml:"auto"`
}

type SimConfig struct {
	TickRate int    `toml:"tick_rate"`
	Seed     uint64 `toml:"seed"`
	Audio    bool   `toml:"audio"`
}

// Default returns a fully populated configuration
func Default() Config {
	return Config{
		Keeper: KeeperConfig{
			Reach:               parameter.KeeperReach,
			JumpDistance:        parameter.KeeperJumpDistance,
			JumpHeight:          parameter.KeeperJumpHeight,
			DiveSpeed:           parameter.KeeperDiveSpeed,
			Goalkeeping:         parameter.KeeperGoalkeeping,
			Height:              parameter.KeeperHeight,
			TendGoalDistance:    parameter.KeeperTendGoalDistance,
			TendGoalSpeed:       parameter.KeeperTendGoalSpeed,
			ThreateningDistance: parameter.ThreateningDistance,
			ChasingDistance:     parameter.ChasingDistance,
			StartDistance:       parameter.KeeperStartDistance,
		},
		Ball: BallConfig{
			Gravity:   parameter.BallGravity,
			Radius:    parameter.BallRadius,
			KickSpeed: parameter.KickSpeed,
		},
		Goal: GoalConfig{
			Width:           parameter.GoalWidth,
			Height:          parameter.GoalHeight,
			Depth:           parameter.GoalDepth,
			PenaltyDistance: parameter.PenaltyDistance,
		},
		Match: MatchConfig{
			ShotsPerPlayer: parameter.ShotsPerPlayer,
			MaxShotTime:    parameter.MaxShotTime,
			StopSpeed:      parameter.StopSpeed,
			StopGrace:      parameter.StopGrace,
			KickDelay:      parameter.KickDelay,
			ResetDelay:     parameter.ResetDelay,
			RearmDelay:     parameter.RearmDelay,
			OnTargetRatio:  parameter.OnTargetRatio,
			Auto:           true,
		},
		Sim: SimConfig{
			TickRate: parameter.TickRate,
			Seed:     1,
			Audio:    true,
		},
	}
}

// Load decodes a TOML file over the defaults and validates the result
// Keys the configuration does not know are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	if err := c.KeeperParams().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("keeper: %w", err))
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"ball.gravity", c.Ball.Gravity},
		{"ball.radius", c.Ball.Radius},
		{"ball.kick_speed", c.Ball.KickSpeed},
		{"goal.width", c.Goal.Width},
		{"goal.height", c.Goal.Height},
		{"goal.depth", c.Goal.Depth},
		{"goal.penalty_distance", c.Goal.PenaltyDistance},
	}
	for _, f := range positive {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", f.name, f.v))
		}
	}
	if c.Keeper.StartDistance < 0 {
		errs = append(errs, fmt.Errorf("keeper.start_distance must be >= 0, got %v", c.Keeper.StartDistance))
	}

	if c.Match.ShotsPerPlayer < 1 {
		errs = append(errs, fmt.Errorf("match.shots_per_player must be >= 1, got %d", c.Match.ShotsPerPlayer))
	}
	if c.Match.MaxShotTime <= 0 {
		errs = append(errs, fmt.Errorf("match.max_shot_time must be > 0, got %v", c.Match.MaxShotTime))
	}
	if c.Match.StopSpeed < 0 {
		errs = append(errs, fmt.Errorf("match.stop_speed must be >= 0, got %v", c.Match.StopSpeed))
	}
	delays := []struct {
		name string
		d    time.Duration
	}{
		{"match.stop_grace", c.Match.StopGrace},
		{"match.kick_delay", c.Match.KickDelay},
		{"match.reset_delay", c.Match.ResetDelay},
		{"match.rearm_delay", c.Match.RearmDelay},
	}
	for _, f := range delays {
		if f.d < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", f.name, f.d))
		}
	}
	if c.Match.OnTargetRatio < 0 || c.Match.OnTargetRatio > 1 {
		errs = append(errs, fmt.Errorf("match.on_target_ratio must be in [0, 1], got %v", c.Match.OnTargetRatio))
	}

	if c.Sim.TickRate < 1 {
		errs = append(errs, fmt.Errorf("sim.tick_rate must be >= 1, got %d", c.Sim.TickRate))
	}
	return errors.Join(errs...)
}

// === Derived settings ===

func (c Config) KeeperParams() goalkeeper.Params {
	k := c.Keeper
	return goalkeeper.Params{
		Reach:               k.Reach,
		JumpDistance:        k.JumpDistance,
		JumpHeight:          k.JumpHeight,
		DiveSpeed:           k.DiveSpeed,
		Goalkeeping:         k.Goalkeeping,
		Height:              k.Height,
		TendGoalDistance:    k.TendGoalDistance,
		TendGoalSpeed:       k.TendGoalSpeed,
		ThreateningDistance: k.ThreateningDistance,
		ChasingDistance:     k.ChasingDistance,
	}
}

func (c Config) GoalTransform() vmath.Transform {
	p := c.Goal.Position
	return vmath.Transform{
		Position: vmath.Vec3F{X: p[0], Y: p[1], Z: p[2]},
		Yaw:      c.Goal.Yaw * math.Pi / 180,
	}
}

// KeeperTransform places the keeper in front of the goal centre, facing the pitch
func (c Config) KeeperTransform() vmath.Transform {
	g := c.GoalTransform()
	return vmath.Transform{
		Position: vmath.V3FFlat(g.TransformPoint(vmath.Vec3F{Z: c.Keeper.StartDistance})),
		Yaw:      g.Yaw,
	}
}

// PenaltySpot is the ball rest position for every kick
func (c Config) PenaltySpot() vmath.Vec3F {
	spot := c.GoalTransform().TransformPoint(vmath.Vec3F{Z: c.Goal.PenaltyDistance})
	return vmath.V3FWithY(spot, parameter.GroundHeight+c.Ball.Radius)
}

func (c Config) Detector() match.DetectorConfig {
	return match.DetectorConfig{
		MaxShotTime: c.Match.MaxShotTime,
		StopSpeed:   c.Match.StopSpeed,
		StopGrace:   c.Match.StopGrace,
	}
}

func (c Config) Director() director.Config {
	return director.Config{
		KickSpeed:     c.Ball.KickSpeed,
		OnTargetRatio: c.Match.OnTargetRatio,
		KickDelay:     c.Match.KickDelay,
		ResetDelay:    c.Match.ResetDelay,
		RearmDelay:    c.Match.RearmDelay,
		Spot:          c.PenaltySpot(),
		Auto:          c.Match.Auto,
		Seed:          c.Sim.Seed,
	}
}

// FixedStep is the simulation step duration
func (c Config) FixedStep() time.Duration {
	return time.Second / time.Duration(max(c.Sim.TickRate, 1))
}
