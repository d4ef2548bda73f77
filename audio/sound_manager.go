package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays match sound effects through the speaker
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[Cue]int
	seed        uint64

	logger *slog.Logger
}

func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
		seed:   1,
		logger: logger.With(slog.String("component", "audio")),
	}
}

// Initialize opens the speaker; safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("speaker ready", slog.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup silences pending sounds and disables playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// Played returns how many times a cue was sent to the speaker
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.seed++
	s := Sound(c, sampleRate, sm.seed)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

func (sm *SoundManager) PlayKick()    { sm.Play(CueKick) }
func (sm *SoundManager) PlayPunch()   { sm.Play(CuePunch) }
func (sm *SoundManager) PlayGoal()    { sm.Play(CueGoal) }
func (sm *SoundManager) PlayWhistle() { sm.Play(CueWhistle) }

func (sm *SoundManager) HandleEvent(_ events.Frame, ev events.GameEvent) {
	if c, ok := CueFor(ev.Type); ok {
		sm.Play(c)
	}
}

func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBallLaunched,
		events.EventBallPunched,
		events.EventGoalScored,
		events.EventRoundReset,
	}
}

var _ events.Handler[events.Frame] = (*SoundManager)(nil)
