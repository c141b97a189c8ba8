package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"zombie-dash/internal/config"
	"zombie-dash/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	Freq float64 // 0 = rest
	Dur  time.Duration
}

// melodies maps each cue to the short tune it plays.
var melodies = map[sim.Cue][]note{
	sim.CueCitizenSaved:     {{660, 60 * time.Millisecond}, {880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	sim.CueCitizenInfected:  {{440, 80 * time.Millisecond}, {415, 120 * time.Millisecond}},
	sim.CueCitizenDied:      {{330, 100 * time.Millisecond}, {220, 160 * time.Millisecond}},
	sim.CueZombieBorn:       {{110, 120 * time.Millisecond}, {0, 30 * time.Millisecond}, {98, 200 * time.Millisecond}},
	sim.CueZombieDied:       {{196, 60 * time.Millisecond}, {147, 90 * time.Millisecond}},
	sim.CuePlayerDied:       {{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}},
	sim.CueLandmineExploded: {{70, 250 * time.Millisecond}},
	sim.CueGoodieCollected:  {{988, 50 * time.Millisecond}, {1319, 70 * time.Millisecond}},
	sim.CuePlayerFire:       {{180, 40 * time.Millisecond}, {140, 60 * time.Millisecond}},
	sim.CueLevelFinished:    {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 90 * time.Millisecond}, {1047, 200 * time.Millisecond}},
}

// SoundManager plays sim cues through the speaker. It implements sim.Sink.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	log         *zap.Logger
}

// NewSoundManager creates a sound manager. Nothing is played until
// Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig, log *zap.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		log:     log,
	}
}

// Initialize sets up the speaker. With audio disabled it does nothing.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
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

// Play queues the tune for c on the mixer and returns at once.
func (sm *SoundManager) Play(c sim.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := Streamer(c, sm.volume)
	if err != nil {
		sm.log.Warn("build cue", zap.Stringer("cue", c), zap.Error(err))
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Streamer builds the finite streamer for c at the given volume (0-1).
func Streamer(c sim.Cue, volume float64) (beep.Streamer, error) {
	tune, ok := melodies[c]
	if !ok {
		return nil, fmt.Errorf("no tune for cue %s", c)
	}
	parts := make([]beep.Streamer, 0, len(tune))
	for _, n := range tune {
		length := sampleRate.N(n.Dur)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(length))
			continue
		}
		sine, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		parts = append(parts, beep.Take(length, sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   gain(volume),
		Silent:   volume <= 0,
	}, nil
}

// Length is the number of samples the tune for c lasts.
func Length(c sim.Cue) int {
	n := 0
	for _, nt := range melodies[c] {
		n += sampleRate.N(nt.Dur)
	}
	return n
}

// gain converts a 0-1 volume to the exponent effects.Volume expects.
func gain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(math.Min(v, 1))
}
