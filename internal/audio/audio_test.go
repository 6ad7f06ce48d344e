package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestCueStreamerLengths(t *testing.T) {
	sr := beep.SampleRate(44100)
	tests := []struct {
		cue      core.Cue
		duration time.Duration
	}{
		{core.CueButtonPress, 40 * time.Millisecond},
		{core.CueHit, 220 * time.Millisecond},
		{core.CueScore, 170 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			s := CueStreamer(tc.cue, sr, 0.5)
			if s == nil {
				t.Fatal("CueStreamer() = nil")
			}
			samples := drain(t, s)
			if want := sr.N(tc.duration); len(samples) != want {
				t.Errorf("samples = %d, expected %d", len(samples), want)
			}
			for i, v := range samples {
				if v < -0.5 || v > 0.5 {
					t.Fatalf("sample %d = %v exceeds the volume", i, v)
				}
			}
		})
	}
}

func TestCueStreamerFadesIn(t *testing.T) {
	samples := drain(t, CueStreamer(core.CueButtonPress, beep.SampleRate(44100), 1))
	if samples[0] != 0 {
		t.Errorf("first sample = %v, expected 0", samples[0])
	}
}

func TestCueStreamerUnknown(t *testing.T) {
	if s := CueStreamer(core.CueNone, beep.SampleRate(44100), 1); s != nil {
		t.Error("CueStreamer(CueNone) should be nil")
	}
}

func TestPlayersWithoutDevice(t *testing.T) {
	var p Player = Null{}
	p.Play(core.CueHit)
	p.Close()

	// Without Init the speaker stays silent.
	s := NewSpeaker(2)
	if s.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", s.volume)
	}
	s.Play(core.CueScore)
	s.Close()
}
