package animation

import (
	"log/slog"
	"slices"

	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

// clipTransition moves between clips when its trigger is pending
// Empty from matches any clip
type clipTransition struct {
	from    []string
	trigger string
	to      string
}

// Transitions sorted by evaluation priority
var keeperTransitions = []clipTransition{
	{from: []string{ClipIdle, ClipTendGoal}, trigger: TriggerDive, to: ClipDive},
	{from: []string{ClipDive, ClipTendGoal}, trigger: TriggerExit, to: ClipRecover},
	{from: []string{ClipIdle}, trigger: TriggerTendGoal, to: ClipTendGoal},
	{from: []string{ClipTendGoal, ClipDive}, trigger: TriggerIdle, to: ClipIdle},
}

// Controller is a headless keeper animator: a trigger-driven clip graph plus a
// two-hand rig solved against IK targets
type Controller struct {
	pose   Pose
	logger *slog.Logger

	clip     string
	clipTime float64

	triggers map[string]bool
	bools    map[string]bool
	floats   map[string]float64

	ikWeight   [2]float64
	ikPos      [2]vmath.Vec3F
	lookWeight float64
	lookPos    vmath.Vec3F

	bones [2]vmath.Vec3F
}

// NewController creates a controller in the idle clip
func NewController(pose Pose, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		pose:     pose,
		logger:   logger,
		clip:     ClipIdle,
		triggers: make(map[string]bool),
		bools:    make(map[string]bool),
		floats:   make(map[string]float64),
	}
	c.SolveRig()
	return c
}

func (c *Controller) SetTrigger(name string)   { c.triggers[name] = true }
func (c *Controller) ResetTrigger(name string) { delete(c.triggers, name) }

// TriggerPending reports whether a trigger is set and not yet consumed
func (c *Controller) TriggerPending(name string) bool { return c.triggers[name] }

func (c *Controller) SetBool(name string, v bool)     { c.bools[name] = v }
func (c *Controller) Bool(name string) bool           { return c.bools[name] }
func (c *Controller) SetFloat(name string, v float64) { c.floats[name] = v }
func (c *Controller) Float(name string) float64       { return c.floats[name] }

func (c *Controller) SetFloatDamped(name string, v, dampTime, dt float64) {
	if dampTime <= 0 || dt <= 0 {
		c.floats[name] = v
		return
	}
	cur := c.floats[name]
	c.floats[name] = cur + (v-cur)*vmath.Clamp01(dt/dampTime)
}

func (c *Controller) SetIKPositionWeight(goal IKGoal, w float64) { c.ikWeight[goal] = vmath.Clamp01(w) }
func (c *Controller) SetIKPosition(goal IKGoal, p vmath.Vec3F)   { c.ikPos[goal] = p }
func (c *Controller) IKPositionWeight(goal IKGoal) float64       { return c.ikWeight[goal] }
func (c *Controller) SetLookAtWeight(w float64)                  { c.lookWeight = vmath.Clamp01(w) }
func (c *Controller) SetLookAtPosition(p vmath.Vec3F)            { c.lookPos = p }

// LookAt returns the current look-at weight and position
func (c *Controller) LookAt() (float64, vmath.Vec3F) { return c.lookWeight, c.lookPos }

func (c *Controller) IsState(name string) bool { return c.clip == name }
func (c *Controller) Clip() string             { return c.clip }

func (c *Controller) BonePosition(goal IKGoal) vmath.Vec3F { return c.bones[goal] }

// Advance consumes at most one pending trigger and advances clip time
func (c *Controller) Advance(dt float64) {
	c.clipTime += dt

	if c.clip == ClipRecover && c.clipTime >= parameter.RecoverClipDuration {
		c.play(ClipIdle)
		return
	}

	for _, tr := range keeperTransitions {
		if !c.triggers[tr.trigger] {
			continue
		}
		// A trigger aimed at the clip already playing is absorbed
		if tr.to == c.clip {
			delete(c.triggers, tr.trigger)
			continue
		}
		if len(tr.from) > 0 && !slices.Contains(tr.from, c.clip) {
			continue
		}
		delete(c.triggers, tr.trigger)
		c.play(tr.to)
		return
	}
}

func (c *Controller) play(clip string) {
	c.logger.Debug("animator clip", slog.String("from", c.clip), slog.String("to", clip))
	c.clip = clip
	c.clipTime = 0
}

// SolveRig places both hands from the clip pose, then blends toward IK targets
// Hands never leave arm's length from their shoulder
func (c *Controller) SolveRig() {
	t := c.pose.Transform()
	rootY := c.pose.RootOffset()

	spine := vmath.Vec3F{Y: parameter.RigShoulderHeight + rootY}
	diving := c.clip == ClipDive
	if diving {
		h := vmath.Clamp01(c.floats[ParamHeight])
		spine.X = c.floats[ParamTurn] * parameter.RigDiveLateralShift
		spine.Y = parameter.RigDiveShoulderLow + h*(parameter.RigShoulderHeight-parameter.RigDiveShoulderLow) + rootY
	}

	for _, goal := range []IKGoal{LeftHand, RightHand} {
		side := 1.0
		if goal == LeftHand {
			side = -1.0
		}
		shoulderLocal := vmath.V3FAdd(spine, vmath.Vec3F{X: side * parameter.RigShoulderHalfWidth})

		restLocal := vmath.V3FAdd(shoulderLocal, vmath.Vec3F{Y: -parameter.RigRestHandDrop, Z: parameter.RigRestHandForward})
		if diving {
			restLocal = vmath.V3FAdd(shoulderLocal, vmath.Vec3F{X: side * parameter.RigArmLength * 0.5, Z: parameter.RigRestHandForward})
		}

		shoulder := t.TransformPoint(shoulderLocal)
		rest := t.TransformPoint(restLocal)

		w := c.ikWeight[goal]
		if w <= 0 {
			c.bones[goal] = rest
			continue
		}
		reach := vmath.V3FClampMagnitude(vmath.V3FSub(c.ikPos[goal], shoulder), parameter.RigArmLength)
		target := vmath.V3FAdd(shoulder, reach)
		c.bones[goal] = vmath.V3FLerp(rest, target, w)
	}
}

var _ Animator = (*Controller)(nil)
