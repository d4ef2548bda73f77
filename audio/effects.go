package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
)

// Cue names a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueKick
	CuePunch
	CueGoal
	CueWhistle
)

func (c Cue) String() string {
	switch c {
	case CueKick:
		return "kick"
	case CuePunch:
		return "punch"
	case CueGoal:
		return "goal"
	case CueWhistle:
		return "whistle"
	default:
		return "none"
	}
}

// CueFor maps a simulation event to the sound it triggers
func CueFor(t events.EventType) (Cue, bool) {
	switch t {
	case events.EventBallLaunched:
		return CueKick, true
	case events.EventBallPunched:
		return CuePunch, true
	case events.EventGoalScored:
		return CueGoal, true
	case events.EventRoundReset:
		return CueWhistle, true
	}
	return CueNone, false
}

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// KickSound is a falling thump
func KickSound(sr beep.SampleRate) beep.Streamer {
	d := parameter.KickSoundDuration
	s := newSweepGenerator(sr, parameter.KickStartFreq, parameter.KickEndFreq, d)
	return newVolume(newEnvelope(s, sr, d, parameter.SoundAttack, d/2), parameter.KickVolume)
}

// PunchSound is a short glove slap
func PunchSound(sr beep.SampleRate, seed uint64) beep.Streamer {
	d := parameter.PunchSoundDuration
	s := newSlapGenerator(sr, parameter.PunchDecayRate, d, seed)
	return newVolume(newEnvelope(s, sr, d, 0, parameter.SoundRelease), parameter.PunchVolume)
}

// GoalChime is a rising major arpeggio
func GoalChime(sr beep.SampleRate) beep.Streamer {
	d := parameter.GoalChimeNoteDuration
	notes := []float64{parameter.GoalChimeNote1, parameter.GoalChimeNote2, parameter.GoalChimeNote3}

	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, chimeNote(sr, f, d))
	}
	return newVolume(beep.Seq(seq...), parameter.GoalVolume)
}

func chimeNote(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		// Above Nyquist for this rate
		return generators.Silence(sr.N(d))
	}
	return newEnvelope(beep.Take(sr.N(d), tone), sr, d, parameter.SoundAttack, parameter.SoundRelease)
}

// WhistleSound is the referee whistle played on round reset
func WhistleSound(sr beep.SampleRate) beep.Streamer {
	d := parameter.WhistleSoundDuration
	s := newWarbleGenerator(sr, parameter.WhistleFreq, parameter.WhistleWarbleRate, d)
	return newVolume(newEnvelope(s, sr, d, parameter.SoundAttack, parameter.SoundRelease), parameter.WhistleVolume)
}

// Sound builds a fresh streamer for a cue
func Sound(c Cue, sr beep.SampleRate, seed uint64) beep.Streamer {
	switch c {
	case CueKick:
		return KickSound(sr)
	case CuePunch:
		return PunchSound(sr, seed)
	case CueGoal:
		return GoalChime(sr)
	case CueWhistle:
		return WhistleSound(sr)
	}
	return nil
}
