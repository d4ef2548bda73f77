package goalkeeper

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/super-goalie/parameter"
)

// Params are the keeper's tunable attributes
type Params struct {
	// Reach is how far a hand extends sideways from the body (m)
	Reach float64
	// JumpDistance is the furthest lateral dive (m)
	JumpDistance float64
	// JumpHeight is the highest vertical leap (m)
	JumpHeight float64
	// DiveSpeed caps lateral dive speed (m/s)
	DiveSpeed float64
	// Goalkeeping is positioning accuracy in [0, 1]
	Goalkeeping float64
	// Height is the standing body height (m)
	Height float64
	// TendGoalDistance is how far off the goal line the keeper patrols (m)
	TendGoalDistance float64
	// TendGoalSpeed is the patrol speed (m/s)
	TendGoalSpeed float64

	ThreateningDistance float64
	ChasingDistance     float64
}

// DefaultParams returns the stock keeper
func DefaultParams() Params {
	return Params{
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
	}
}

// DiveReach is the furthest a hand can get from the standing position
func (p Params) DiveReach() float64 { return p.JumpDistance + p.Reach }

// JumpReach is the highest point a hand can touch
func (p Params) JumpReach() float64 { return p.Height + p.JumpHeight }

// Validate reports every out-of-range attribute
func (p Params) Validate() error {
	var errs []error
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"reach", p.Reach},
		{"jump_distance", p.JumpDistance},
		{"jump_height", p.JumpHeight},
		{"dive_speed", p.DiveSpeed},
		{"tend_goal_distance", p.TendGoalDistance},
		{"tend_goal_speed", p.TendGoalSpeed},
		{"threatening_distance", p.ThreateningDistance},
		{"chasing_distance", p.ChasingDistance},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", f.name, f.v))
		}
	}
	if p.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be > 0, got %v", p.Height))
	}
	if p.Goalkeeping < 0 || p.Goalkeeping > 1 {
		errs = append(errs, fmt.Errorf("goalkeeping must be in [0, 1], got %v", p.Goalkeeping))
	}
	return errors.Join(errs...)
}
