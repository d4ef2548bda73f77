package goalkeeper

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/physics"
	"github.com/lixenwraith/super-goalie/vmath"
)

// Predictor returns the ball position t seconds ahead
type Predictor func(t float64) vmath.Vec3F

// InterceptPlan is the dive computed once when a shot is committed to
type InterceptPlan struct {
	// Orthogonal is the keeper's projection onto the flattened ball path
	Orthogonal vmath.Vec3F
	// Intercept is Orthogonal, biased forward when the ball already passes within reach
	Intercept vmath.Vec3F
	// TimeToReach is the ball's travel time to Intercept (s)
	TimeToReach float64
	// BallAtIntercept is the predicted ball centre at TimeToReach
	BallAtIntercept vmath.Vec3F
	// Relative is BallAtIntercept in keeper space
	Relative vmath.Vec3F

	Travel         float64
	DiveSpeed      float64
	JumpHeight     float64
	SteeringTarget vmath.Vec3F

	// Height is the animator dive height in [0, 1]
	Height float64
	// Turn is the lateral intent: -1 left, 0 centred, 1 right
	Turn float64

	HandTarget vmath.Vec3F
}

// PlanIntercept computes where, how fast, and how high the keeper dives for a shot
// Degenerate paths and zero speed resolve to "already there": no travel and zero time
func PlanIntercept(p Params, body vmath.Transform, shot Shot, ballRadius float64, predict Predictor) InterceptPlan {
	var plan InterceptPlan

	from := vmath.V3FFlat(shot.Initial)
	to := vmath.V3FFlat(shot.Target)
	pos := vmath.V3FFlat(body.Position)

	plan.Orthogonal = vmath.OrthPoint(from, to, pos)
	plan.Intercept = plan.Orthogonal

	predictAt := func(point vmath.Vec3F) {
		plan.TimeToReach = physics.TimeToHorizontalDistance(vmath.V3FDist(from, point), shot.Speed)
		plan.BallAtIntercept = predict(plan.TimeToReach)
		plan.Relative = body.InverseTransformPoint(plan.BallAtIntercept)
	}
	predictAt(plan.Intercept)

	dir := vmath.V3FSub(plan.Orthogonal, pos)
	dir.Y = 0
	plan.Travel = vmath.Clamp(vmath.V3FMag(dir)-p.Reach, 0, p.JumpDistance)

	if math.Abs(plan.Relative.X) < p.Reach {
		plan.Intercept = vmath.V3FAdd(plan.Intercept, vmath.V3FScale(body.Forward(), p.Reach*parameter.InterceptForwardBias))
		predictAt(plan.Intercept)
	}

	if plan.TimeToReach > 0 {
		plan.DiveSpeed = vmath.Clamp(plan.Travel/plan.TimeToReach, 0, p.DiveSpeed)
	}
	plan.JumpHeight = vmath.Clamp(plan.Relative.Y-p.Height, 0, p.JumpHeight)
	plan.SteeringTarget = vmath.V3FAdd(pos, vmath.V3FScale(vmath.V3FNormalize(dir), plan.Travel))

	if jr := p.JumpReach(); jr > 0 {
		plan.Height = vmath.Clamp01(plan.Relative.Y / jr)
	}
	if math.Abs(plan.Relative.X) >= p.Reach {
		plan.Turn = vmath.Sign(plan.Relative.X)
	}

	plan.HandTarget = vmath.V3FAdd(plan.BallAtIntercept, vmath.Vec3F{Y: ballRadius})
	return plan
}

// interceptShotState dives at an on-target shot until contact or the time budget runs out
type interceptShotState struct {
	fsm.BaseState[*Keeper]

	plan      InterceptPlan
	remaining float64
	budget    float64

	// set when a hand reached the ball
	ballTrappable bool
}

func (s *interceptShotState) Name() string { return "InterceptShot" }

func (s *interceptShotState) Enter(k *Keeper) {
	s.ballTrappable = false
	s.plan = PlanIntercept(k.Params, k.transform, k.shot, k.ball.Radius, k.ball.FuturePosition)
	s.budget = s.plan.TimeToReach
	s.remaining = s.plan.TimeToReach

	k.move.SetMoveTarget(s.plan.SteeringTarget)
	k.move.SetSpeed(s.plan.DiveSpeed)
	k.move.SetSteeringOn()

	k.anim.SetFloat(animation.ParamHeight, s.plan.Height)
	k.anim.SetFloat(animation.ParamTurn, s.plan.Turn)
	k.anim.SetTrigger(animation.TriggerDive)

	k.logger.Debug("intercept planned",
		slog.Float64("time_to_reach", s.plan.TimeToReach),
		slog.Float64("travel", s.plan.Travel),
		slog.Float64("dive_speed", s.plan.DiveSpeed),
		slog.Float64("jump", s.plan.JumpHeight),
		slog.Float64("turn", s.plan.Turn),
	)
}

func (s *interceptShotState) Execute(k *Keeper, dt time.Duration) {
	pos := vmath.V3FFlat(k.Position())
	if vmath.V3FDist(pos, vmath.V3FFlat(s.plan.SteeringTarget)) <= parameter.InterceptArriveDistance {
		k.move.SetSteeringOff()
	}

	ball := vmath.V3FAdd(k.ball.Position(), vmath.Vec3F{Y: k.ball.Radius})
	frameTravel := k.ball.Speed() * dt.Seconds()
	s.ballTrappable = s.handsReach(k, ball, frameTravel)
	if s.ballTrappable {
		s.Machine().ChangeState(StatePunchBall)
		return
	}

	s.remaining -= dt.Seconds()
	if s.remaining <= 0 {
		s.Machine().ChangeState(StatePunchBall)
	}
}

// handsReach tests the hand on the dive side, or both when centred
func (s *interceptShotState) handsReach(k *Keeper, ball vmath.Vec3F, within float64) bool {
	touches := func(g animation.IKGoal) bool {
		return vmath.V3FDist(k.anim.BonePosition(g), ball) <= within
	}
	switch {
	case s.plan.Turn > 0:
		return touches(animation.RightHand)
	case s.plan.Turn < 0:
		return touches(animation.LeftHand)
	default:
		return touches(animation.RightHand) || touches(animation.LeftHand)
	}
}

func (s *interceptShotState) Exit(k *Keeper) {
	k.move.SetSteeringOff()
	k.anim.ResetTrigger(animation.TriggerDive)
}

// OnAnimatorIK raises hand weight as the ball closes on the intercept line
func (s *interceptShotState) OnAnimatorIK(k *Keeper, _ int, _ time.Duration) {
	ball := vmath.V3FFlat(k.ball.Position())
	d := vmath.V3FDist(ball, s.plan.Orthogonal)
	ikRange := parameter.InterceptIKRange * k.Params.Reach

	w := 0.0
	if ikRange > 0 && d <= ikRange {
		w = (ikRange - d) / ikRange
	}
	left, right := handWeights(s.plan.Turn, w)

	k.anim.SetIKPositionWeight(animation.LeftHand, left)
	k.anim.SetIKPositionWeight(animation.RightHand, right)
	k.anim.SetLookAtWeight(w)
	k.anim.SetLookAtPosition(vmath.V3FAdd(k.ball.Position(), vmath.Vec3F{Y: k.ball.Radius}))
	k.anim.SetIKPosition(animation.LeftHand, s.plan.HandTarget)
	k.anim.SetIKPosition(animation.RightHand, s.plan.HandTarget)
}

// OnAnimatorMove lifts the model root toward the jump height as the budget elapses
func (s *interceptShotState) OnAnimatorMove(k *Keeper, _ time.Duration) {
	ratio := 1.0
	if s.budget > 0 {
		ratio = (s.budget - s.remaining) / s.budget
	}
	k.rootOffset = vmath.Lerp(0, s.plan.JumpHeight, ratio)
}

func (s *interceptShotState) Plan() InterceptPlan { return s.plan }
func (s *interceptShotState) Remaining() float64  { return s.remaining }
func (s *interceptShotState) BallTrappable() bool { return s.ballTrappable }

// handWeights splits an IK weight between the hands for a lateral intent
func handWeights(turn, w float64) (left, right float64) {
	switch {
	case turn > 0:
		return 0, w
	case turn < 0:
		return w, 0
	default:
		return w, w
	}
}
