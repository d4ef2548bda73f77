package events

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value and is never pushed
	EventNone EventType = iota

	// EventShootRequest asks the director to take the next kick now
	// Trigger: input (space key), headless driver
	// Consumer: Director | Payload: *ShootRequestPayload or nil
	EventShootRequest

	// EventBallLaunched signals a kick has left the spot
	// Trigger: Ball.Launch
	// Consumer: Keeper (forwarded to active state), Detector, SoundManager | Payload: *BallLaunchedPayload
	EventBallLaunched

	// EventBallPunched signals the keeper finished a dive, with or without contact
	// Trigger: PunchBall state enter
	// Consumer: SoundManager | Payload: nil
	EventBallPunched

	// EventBallDeflected signals the keeper's glove changed the ball's course
	// Trigger: PunchBall state enter when contact succeeded
	// Consumer: Detector | Payload: *BallDeflectedPayload
	EventBallDeflected

	// EventBallAcquired signals the keeper gained possession
	// Trigger: Keeper.SetHasBall(true) on change
	// Consumer: Idle sub-states | Payload: nil
	EventBallAcquired

	// EventBallLost signals the keeper released possession
	// Trigger: Keeper.SetHasBall(false) on change
	// Consumer: Idle sub-states | Payload: nil
	EventBallLost

	// EventGoalScored signals the ball crossed into the goal volume
	// Trigger: GoalTrigger (fires once, then deactivates)
	// Consumer: Detector, SoundManager | Payload: nil
	EventGoalScored

	// EventShotResolved signals the outcome of the current kick
	// Trigger: Detector
	// Consumer: Scoreboard, Director | Payload: *ShotResolvedPayload
	EventShotResolved

	// EventRoundStarted signals a new kick is about to be taken
	// Trigger: Director | Payload: *RoundPayload
	EventRoundStarted

	// EventRoundReset signals ball and keeper were returned to their marks
	// Trigger: Director
	// Consumer: SoundManager | Payload: *RoundPayload
	EventRoundReset

	// EventGameOver signals every shooter has taken all kicks
	// Trigger: Scoreboard
	// Consumer: Director | Payload: *GameOverPayload
	EventGameOver
)

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Step index at push time
}

// Frame carries per-step metadata to handlers during dispatch
type Frame struct {
	Index   int64
	Elapsed float64 // Simulated seconds since start
}

func (t EventType) String() string {
	return GetEventName(t)
}
