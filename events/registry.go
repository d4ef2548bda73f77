package events

import (
	"fmt"
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return EventNone, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(et))
}

func init() {
	RegisterType("None", EventNone)
	RegisterType("ShootRequest", EventShootRequest)
	RegisterType("BallLaunched", EventBallLaunched)
	RegisterType("BallPunched", EventBallPunched)
	RegisterType("BallDeflected", EventBallDeflected)
	RegisterType("BallAcquired", EventBallAcquired)
	RegisterType("BallLost", EventBallLost)
	RegisterType("GoalScored", EventGoalScored)
	RegisterType("ShotResolved", EventShotResolved)
	RegisterType("RoundStarted", EventRoundStarted)
	RegisterType("RoundReset", EventRoundReset)
	RegisterType("GameOver", EventGameOver)
}
