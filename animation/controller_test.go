package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

type fixedPose struct {
	t    vmath.Transform
	root float64
}

func (p *fixedPose) Transform() vmath.Transform { return p.t }
func (p *fixedPose) RootOffset() float64        { return p.root }

func TestController_TriggerFlow(t *testing.T) {
	c := NewController(&fixedPose{}, nil)
	require.True(t, c.IsState(ClipIdle))

	c.SetTrigger(TriggerTendGoal)
	c.Advance(0.016)
	assert.True(t, c.IsState(ClipTendGoal))
	assert.False(t, c.TriggerPending(TriggerTendGoal))

	c.SetTrigger(TriggerDive)
	c.Advance(0.016)
	assert.True(t, c.IsState(ClipDive))

	c.SetTrigger(TriggerExit)
	c.Advance(0.016)
	assert.True(t, c.IsState(ClipRecover))

	c.Advance(parameter.RecoverClipDuration / 2)
	assert.True(t, c.IsState(ClipRecover))
	c.Advance(parameter.RecoverClipDuration)
	assert.True(t, c.IsState(ClipIdle))
}

func TestController_ExitFromTendGoalRecovers(t *testing.T) {
	c := NewController(&fixedPose{}, nil)
	c.SetTrigger(TriggerTendGoal)
	c.Advance(0.016)

	// Dive reset before the animator consumed it
	c.SetTrigger(TriggerDive)
	c.ResetTrigger(TriggerDive)
	c.SetTrigger(TriggerExit)
	c.Advance(0.016)
	assert.True(t, c.IsState(ClipRecover))
}

func TestController_SelfTriggerAbsorbed(t *testing.T) {
	c := NewController(&fixedPose{}, nil)
	c.SetTrigger(TriggerIdle)
	c.Advance(0.016)
	assert.False(t, c.TriggerPending(TriggerIdle))

	c.SetTrigger(TriggerTendGoal)
	c.Advance(0.016)
	c.Advance(0.016)
	assert.True(t, c.IsState(ClipTendGoal), "absorbed idle trigger must not pull back to idle")
}

func TestController_FloatDamping(t *testing.T) {
	c := NewController(&fixedPose{}, nil)
	c.SetFloatDamped(ParamForward, 1, 0.1, 0.05)
	assert.InDelta(t, 0.5, c.Float(ParamForward), 1e-12)
	c.SetFloatDamped(ParamForward, 1, 0.1, 1)
	assert.InDelta(t, 1, c.Float(ParamForward), 1e-12)
	c.SetFloatDamped(ParamTurn, -1, 0, 0.01)
	assert.Equal(t, -1.0, c.Float(ParamTurn))
}

func TestController_RigRestAndIK(t *testing.T) {
	pose := &fixedPose{t: vmath.Transform{Position: vmath.Vec3F{Z: 3}, Yaw: 0}}
	c := NewController(pose, nil)

	left := c.BonePosition(LeftHand)
	right := c.BonePosition(RightHand)
	assert.Less(t, left.X, right.X)
	assert.InDelta(t, parameter.RigShoulderHeight-parameter.RigRestHandDrop, left.Y, 1e-9)

	target := vmath.Vec3F{X: 0.3, Y: 1.4, Z: 3.3}
	c.SetIKPosition(RightHand, target)
	c.SetIKPositionWeight(RightHand, 1)
	c.SolveRig()
	assert.True(t, vmath.V3FApproxEqual(target, c.BonePosition(RightHand), 1e-9))

	c.SetIKPositionWeight(RightHand, 0.5)
	c.SolveRig()
	mid := vmath.V3FLerp(right, target, 0.5)
	assert.True(t, vmath.V3FApproxEqual(mid, c.BonePosition(RightHand), 1e-9))
}

func TestController_RigArmLengthBound(t *testing.T) {
	pose := &fixedPose{}
	c := NewController(pose, nil)
	c.SetIKPosition(LeftHand, vmath.Vec3F{X: -10, Y: 1.5})
	c.SetIKPositionWeight(LeftHand, 1)
	c.SolveRig()

	shoulder := vmath.Vec3F{X: -parameter.RigShoulderHalfWidth, Y: parameter.RigShoulderHeight}
	assert.InDelta(t, parameter.RigArmLength, vmath.V3FDist(shoulder, c.BonePosition(LeftHand)), 1e-9)
}

func TestController_RootOffsetLiftsRig(t *testing.T) {
	pose := &fixedPose{}
	c := NewController(pose, nil)
	before := c.BonePosition(RightHand).Y
	pose.root = 0.4
	c.SolveRig()
	assert.InDelta(t, before+0.4, c.BonePosition(RightHand).Y, 1e-9)
}

func TestNop(t *testing.T) {
	var a Animator = Nop{}
	a.SetTrigger(TriggerDive)
	assert.True(t, a.IsState(ClipIdle))
	assert.False(t, a.IsState(ClipDive))
	assert.True(t, math.IsInf(vmath.V3FDist(a.BonePosition(LeftHand), vmath.Vec3F{}), 1))
}
