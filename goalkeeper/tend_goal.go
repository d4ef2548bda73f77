package goalkeeper

import (
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/super-goalie/animation"
	"github.com/lixenwraith/super-goalie/engine/fsm"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/vmath"
)

// TendPeriod is the patrol recompute interval for a goalkeeping accuracy
// Better keepers react faster, never quicker than the floor
func TendPeriod(accuracy float64) float64 {
	return math.Max(parameter.TendPeriodMax*(1-vmath.Clamp01(accuracy)), parameter.TendPeriodFloor)
}

// JitterAmplitude is the per-axis patrol error bound for a goalkeeping accuracy
func JitterAmplitude(accuracy float64) float64 {
	return 1 - vmath.Clamp01(accuracy)
}

// tendGoalState patrols between ball and goal while the ball is threatening
type tendGoalState struct {
	fsm.BaseState[*Keeper]

	untilReposition float64
	target          vmath.Vec3F
	lastBall        vmath.Vec3F
	seenBall        bool
}

func (s *tendGoalState) Name() string { return "TendGoal" }

func (s *tendGoalState) Enter(k *Keeper) {
	s.untilReposition = 0
	s.seenBall = false
	s.target = vmath.V3FFlat(k.Position())

	k.move.SetSpeed(k.Params.TendGoalSpeed)
	k.move.SetSteeringOn()
	k.anim.SetTrigger(animation.TriggerTendGoal)
}

func (s *tendGoalState) Execute(k *Keeper, dt time.Duration) {
	if !k.IsBallWithinThreateningDistance() {
		s.Machine().ChangeState(StateIdle)
		return
	}

	ball := vmath.V3FFlat(k.ball.Position())
	k.move.SetRotateFacePosition(ball)

	if s.untilReposition <= 0 {
		if !s.seenBall || ball != s.lastBall {
			s.lastBall = ball
			s.seenBall = true
			s.target = s.jitter(k, k.PatrolPoint(ball))
		}
		s.untilReposition = TendPeriod(k.Params.Goalkeeping)
	}
	s.untilReposition -= dt.Seconds()

	pos := vmath.V3FFlat(k.Position())
	setSteering(k.move, vmath.V3FDist(pos, s.target) >= parameter.TendSteerThreshold)
	k.move.SetMoveTarget(s.target)

	rel := k.transform.InverseTransformDirection(k.move.Velocity())
	forward := vmath.Clamp(rel.Z, parameter.TendForwardMin, parameter.TendForwardMax)
	turn := vmath.Clamp(rel.X, -1, 1)
	k.anim.SetFloatDamped(animation.ParamForward, forward, parameter.AnimatorDampTime, dt.Seconds())
	k.anim.SetFloatDamped(animation.ParamTurn, turn, parameter.AnimatorDampTime, dt.Seconds())
}

func (s *tendGoalState) jitter(k *Keeper, p vmath.Vec3F) vmath.Vec3F {
	amp := JitterAmplitude(k.Params.Goalkeeping)
	if amp <= 0 {
		return p
	}
	p.X += k.rng.Range(-amp, amp)
	p.Z += k.rng.Range(-amp, amp)
	return p
}

func (s *tendGoalState) Exit(k *Keeper) {
	k.anim.ResetTrigger(animation.TriggerTendGoal)
}

// HandleEvent classifies a launched shot
func (s *tendGoalState) HandleEvent(k *Keeper, ev events.GameEvent) {
	if ev.Type != events.EventBallLaunched {
		return
	}
	p, ok := ev.Payload.(*events.BallLaunchedPayload)
	if !ok {
		return
	}
	k.cacheShot(p)

	onTarget := k.IsShotOnTarget()
	k.logger.Info("shot classified",
		slog.Bool("on_target", onTarget),
		slog.Float64("speed", p.Speed),
		slog.Float64("flight_time", p.FlightTime),
	)
	if onTarget {
		s.Machine().ChangeState(StateInterceptShot)
	} else {
		s.Machine().ChangeState(StateIgnoreShot)
	}
}

// Target is the current patrol point
func (s *tendGoalState) Target() vmath.Vec3F { return s.target }
