package entity

import (
	"github.com/lixenwraith/super-goalie/vmath"
)

// GoalMouth holds the four world-space corners of the goal opening
type GoalMouth struct {
	BottomLeft  vmath.Vec3F
	BottomRight vmath.Vec3F
	TopLeft     vmath.Vec3F
	TopRight    vmath.Vec3F
}

// Centroid returns the average of the four corners
func (m GoalMouth) Centroid() vmath.Vec3F {
	sum := vmath.V3FAdd(vmath.V3FAdd(m.BottomLeft, m.BottomRight), vmath.V3FAdd(m.TopLeft, m.TopRight))
	return vmath.V3FScale(sum, 0.25)
}

// Goal is the target frame; local +Z points out toward the pitch
type Goal struct {
	Transform vmath.Transform
	Mouth     GoalMouth
	Trigger   *GoalTrigger
}

// NewGoal builds a goal whose mouth is centered on the transform at ground level
func NewGoal(t vmath.Transform, width, height, depth float64) *Goal {
	hw := width / 2
	g := &Goal{
		Transform: t,
		Mouth: GoalMouth{
			BottomLeft:  t.TransformPoint(vmath.Vec3F{X: -hw}),
			BottomRight: t.TransformPoint(vmath.Vec3F{X: hw}),
			TopLeft:     t.TransformPoint(vmath.Vec3F{X: -hw, Y: height}),
			TopRight:    t.TransformPoint(vmath.Vec3F{X: hw, Y: height}),
		},
	}
	g.Trigger = NewGoalTrigger(t, width, height, depth)
	return g
}

func (g *Goal) Position() vmath.Vec3F { return g.Transform.Position }

// Width returns the local lateral span between the bottom posts
func (g *Goal) Width() float64 {
	return g.Transform.InverseTransformPoint(g.Mouth.BottomRight).X -
		g.Transform.InverseTransformPoint(g.Mouth.BottomLeft).X
}

// Height returns the local vertical span between bottom-left and top-left
func (g *Goal) Height() float64 {
	return g.Transform.InverseTransformPoint(g.Mouth.TopLeft).Y -
		g.Transform.InverseTransformPoint(g.Mouth.BottomLeft).Y
}

// IsPositionWithinGoalMouthFrustum reports whether p lies strictly inside the mouth
// Compared in goal-local space: X between bottom-left and bottom-right, Y between
// bottom-left and top-left. Depth is ignored
func (g *Goal) IsPositionWithinGoalMouthFrustum(p vmath.Vec3F) bool {
	rel := g.Transform.InverseTransformPoint(p)
	bl := g.Transform.InverseTransformPoint(g.Mouth.BottomLeft)
	br := g.Transform.InverseTransformPoint(g.Mouth.BottomRight)
	tl := g.Transform.InverseTransformPoint(g.Mouth.TopLeft)

	withinX := rel.X > bl.X && rel.X < br.X
	withinY := rel.Y > bl.Y && rel.Y < tl.Y
	return withinX && withinY
}
