// Package audio plays the runner's sound cues. Cues are synthesized, so no
// sound assets are needed.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Play(cue core.Cue)
	Close()
}

// Null discards every cue. Used when sound is disabled or unavailable.
type Null struct{}

// Play discards the cue.
func (Null) Play(core.Cue) {}

// Close does nothing.
func (Null) Close() {}

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewSpeaker creates a speaker player. Volume is clamped to [0, 1].
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the audio device. Play is a no-op until it succeeds.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Play mixes the cue into the output.
func (s *Speaker) Play(cue core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	st := CueStreamer(cue, sampleRate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}

// CueStreamer returns the finite sound for a cue, or nil for CueNone and
// unknown cues.
func CueStreamer(cue core.Cue, sr beep.SampleRate, volume float64) beep.Streamer {
	switch cue {
	case core.CueButtonPress:
		return tone(sr, 660, 40*time.Millisecond, volume)
	case core.CueHit:
		return beep.Seq(
			tone(sr, 220, 60*time.Millisecond, volume),
			tone(sr, 110, 160*time.Millisecond, volume),
		)
	case core.CueScore:
		return beep.Seq(
			tone(sr, 880, 60*time.Millisecond, volume),
			beep.Silence(sr.N(20*time.Millisecond)),
			tone(sr, 1320, 90*time.Millisecond, volume),
		)
	default:
		return nil
	}
}

// tone is a sine wave of fixed length with short linear fades at both ends.
func tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	fade := sr.N(5 * time.Millisecond)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1.0
			if pos < fade {
				env = float64(pos) / float64(fade)
			} else if left := total - pos; left < fade {
				env = float64(left) / float64(fade)
			}
			t := float64(pos) / float64(sr)
			v := volume * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
