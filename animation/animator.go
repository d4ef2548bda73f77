package animation

import (
	"github.com/lixenwraith/super-goalie/vmath"
)

// Trigger and parameter names understood by the keeper animator
const (
	TriggerIdle     = "Idle"
	TriggerTendGoal = "TendGoal"
	TriggerDive     = "Dive"
	TriggerExit     = "Exit"

	ParamHeight  = "Height"
	ParamTurn    = "Turn"
	ParamForward = "Forward"
	ParamHasBall = "HasBall"
)

// Clip names reported by IsState
const (
	ClipIdle     = "Idle"
	ClipTendGoal = "TendGoal"
	ClipDive     = "Dive"
	ClipRecover  = "Recover"
)

// IKGoal identifies a limb driven by inverse kinematics
type IKGoal int

const (
	LeftHand IKGoal = iota
	RightHand
)

func (g IKGoal) String() string {
	if g == LeftHand {
		return "LeftHand"
	}
	return "RightHand"
}

// Animator is the animation capability consumed by the keeper states
type Animator interface {
	SetTrigger(name string)
	ResetTrigger(name string)
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
	// SetFloatDamped moves the parameter toward v, smoothing over dampTime seconds
	SetFloatDamped(name string, v, dampTime, dt float64)

	SetIKPositionWeight(goal IKGoal, w float64)
	SetIKPosition(goal IKGoal, p vmath.Vec3F)
	SetLookAtWeight(w float64)
	SetLookAtPosition(p vmath.Vec3F)

	// IsState reports whether the current clip is named name
	IsState(name string) bool
	// BonePosition returns the world position of a limb after the last rig solve
	BonePosition(goal IKGoal) vmath.Vec3F
}

// Pose supplies the character's world placement to a rig
type Pose interface {
	Transform() vmath.Transform
	RootOffset() float64
}
