package animation

import (
	"math"

	"github.com/lixenwraith/super-goalie/vmath"
)

// Nop is the fallback animator when none is configured
// It always reports the idle clip and has no reachable bones
type Nop struct{}

func (Nop) SetTrigger(string)                                {}
func (Nop) ResetTrigger(string)                              {}
func (Nop) SetBool(string, bool)                             {}
func (Nop) SetFloat(string, float64)                         {}
func (Nop) SetFloatDamped(string, float64, float64, float64) {}
func (Nop) SetIKPositionWeight(IKGoal, float64)              {}
func (Nop) SetIKPosition(IKGoal, vmath.Vec3F)                {}
func (Nop) SetLookAtWeight(float64)                          {}
func (Nop) SetLookAtPosition(vmath.Vec3F)                    {}
func (Nop) IsState(name string) bool                         { return name == ClipIdle }

// BonePosition returns an unreachable point so contact tests never succeed
func (Nop) BonePosition(IKGoal) vmath.Vec3F {
	return vmath.Vec3F{Y: math.Inf(-1)}
}

var _ Animator = Nop{}
