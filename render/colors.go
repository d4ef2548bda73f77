package render

// Palette
var (
	RgbPitch     = RGB{22, 92, 40}
	RgbPitchDark = RGB{18, 78, 34}
	RgbLine      = RGB{235, 235, 235}
	RgbNet       = RGB{120, 140, 130}
	RgbPost      = RGB{255, 255, 255}

	RgbBall     = RGB{250, 250, 250}
	RgbBallHigh = RGB{255, 214, 0}

	RgbKeeperIdle   = RGB{90, 170, 255}
	RgbKeeperTend   = RGB{0, 220, 220}
	RgbKeeperDive   = RGB{255, 120, 40}
	RgbKeeperPunch  = RGB{255, 60, 60}
	RgbKeeperIgnore = RGB{160, 160, 160}

	RgbAim = RGB{255, 80, 200}

	RgbStatusBar = RGB{255, 255, 255}
	RgbStatusBg  = RGB{26, 27, 38}
	RgbScored    = RGB{80, 220, 80}
	RgbSaved     = RGB{90, 170, 255}
	RgbMissed    = RGB{200, 80, 80}
)

// keeperColor maps a keeper state name to its marker color
func keeperColor(state string) RGB {
	switch state {
	case "TendGoal":
		return RgbKeeperTend
	case "InterceptShot":
		return RgbKeeperDive
	case "PunchBall":
		return RgbKeeperPunch
	case "IgnoreShot":
		return RgbKeeperIgnore
	default:
		return RgbKeeperIdle
	}
}
