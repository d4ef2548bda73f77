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

// PunchDirection is the keeper-space deflection for a ball at rel
// Off-centre balls go sideways; centred balls go forward when low, up and back when high
func PunchDirection(rel vmath.Vec3F, height float64) vmath.Vec3F {
	if math.Abs(rel.X) > parameter.PunchSideDeadband {
		return vmath.Vec3F{X: rel.X}
	}
	if rel.Y <= height {
		return vmath.Vec3F{Z: 1}
	}
	return vmath.Vec3F{Y: 1, Z: -1}
}

// punchBallState resolves contact and waits for the recovery clip to reach idle
type punchBallState struct {
	fsm.BaseState[*Keeper]

	ikTime     float64
	turn       float64
	handTarget vmath.Vec3F
}

func (s *punchBallState) Name() string { return "PunchBall" }

func (s *punchBallState) Enter(k *Keeper) {
	s.ikTime = 0
	s.turn = 0
	s.handTarget = k.ball.Position()

	trappable := false
	if is, ok := fsm.StateAs[*interceptShotState](s.Machine(), StateInterceptShot); ok {
		trappable = is.BallTrappable()
		s.turn = is.Plan().Turn
		s.handTarget = is.Plan().HandTarget
	}

	if trappable {
		rel := k.transform.InverseTransformPoint(k.ball.Position())
		dir := vmath.V3FNormalize(k.transform.TransformDirection(PunchDirection(rel, k.Params.Height)))
		vel := vmath.V3FScale(dir, parameter.PunchSpeedFactor*k.ball.Speed())
		k.ball.SetVelocity(vel)
		k.emit(events.EventBallDeflected, &events.BallDeflectedPayload{Velocity: vel})
	}

	k.anim.SetTrigger(animation.TriggerExit)
	k.emit(events.EventBallPunched, nil)
	k.logger.Info("punch", slog.Bool("contact", trappable))
}

func (s *punchBallState) Execute(k *Keeper, _ time.Duration) {
	if k.anim.IsState(animation.ClipIdle) {
		s.Machine().ChangeState(StateIdle)
	}
}

// OnAnimatorIK releases the hands over a short fixed window
func (s *punchBallState) OnAnimatorIK(k *Keeper, _ int, dt time.Duration) {
	if s.ikTime < 1 {
		s.ikTime += parameter.PunchIKDecayRate * dt.Seconds()
	}
	w := vmath.Lerp(1, 0, s.ikTime)

	// Only the hands that dove are released
	if s.turn <= 0 {
		k.anim.SetIKPositionWeight(animation.LeftHand, w)
		k.anim.SetIKPosition(animation.LeftHand, s.handTarget)
	}
	if s.turn >= 0 {
		k.anim.SetIKPositionWeight(animation.RightHand, w)
		k.anim.SetIKPosition(animation.RightHand, s.handTarget)
	}
	k.anim.SetLookAtWeight(w)
	k.anim.SetLookAtPosition(k.ball.Position())
}

func (s *punchBallState) OnAnimatorMove(k *Keeper, _ time.Duration) {
	k.rootOffset = 0
}
