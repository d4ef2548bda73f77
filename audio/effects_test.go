package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
)

const testRate = beep.SampleRate(8000)

// drain reads a streamer to exhaustion, returning sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			assert.Equal(t, buf[i][0], buf[i][1], "mono cue")
		}
		total += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestSounds_LengthAndLevel(t *testing.T) {
	cases := []struct {
		name string
		cue  Cue
		want int
		vol  float64
	}{
		{"kick", CueKick, testRate.N(parameter.KickSoundDuration), parameter.KickVolume},
		{"punch", CuePunch, testRate.N(parameter.PunchSoundDuration), parameter.PunchVolume},
		{"goal", CueGoal, 3 * testRate.N(parameter.GoalChimeNoteDuration), parameter.GoalVolume},
		{"whistle", CueWhistle, testRate.N(parameter.WhistleSoundDuration), parameter.WhistleVolume},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Sound(tc.cue, testRate, 3)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.Equal(t, tc.want, n)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, tc.vol+1e-9)
		})
	}
}

func TestSound_UnknownCue(t *testing.T) {
	assert.Nil(t, Sound(CueNone, testRate, 1))
}

func TestEnvelope_StartsSilent(t *testing.T) {
	s := KickSound(testRate)
	buf := make([][2]float64, 1)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Zero(t, buf[0][0])
}

func TestCueFor(t *testing.T) {
	cases := map[events.EventType]Cue{
		events.EventBallLaunched: CueKick,
		events.EventBallPunched:  CuePunch,
		events.EventGoalScored:   CueGoal,
		events.EventRoundReset:   CueWhistle,
	}
	for et, want := range cases {
		got, ok := CueFor(et)
		assert.True(t, ok, et.String())
		assert.Equal(t, want, got)
	}

	_, ok := CueFor(events.EventShotResolved)
	assert.False(t, ok)
}

func TestSoundManager_SubscribesToEveryCue(t *testing.T) {
	sm := NewSoundManager(nil)
	for _, et := range sm.EventTypes() {
		_, ok := CueFor(et)
		assert.True(t, ok, et.String())
	}
}
