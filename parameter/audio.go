package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Kick Sound (low thump when the ball is struck)
const (
	KickSoundDuration = 120 * time.Millisecond
	KickStartFreq     = 140.0 // Hz
	KickEndFreq       = 50.0  // Hz
)

// Punch Sound (short noisy slap on glove contact)
const (
	PunchSoundDuration = 90 * time.Millisecond
	PunchDecayRate     = 45.0
)

// Goal Chime
const (
	GoalChimeNoteDuration = 180 * time.Millisecond
	GoalChimeNote1        = 523.25 // C5
	GoalChimeNote2        = 659.25 // E5
	GoalChimeNote3        = 783.99 // G5
)

// Whistle (round reset)
const (
	WhistleSoundDuration = 350 * time.Millisecond
	WhistleFreq          = 2800.0 // Hz
	WhistleWarbleRate    = 30.0   // Hz
)

// Envelope
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)

// Mix levels
const (
	KickVolume    = 0.8
	PunchVolume   = 0.6
	GoalVolume    = 0.5
	WhistleVolume = 0.35
)
