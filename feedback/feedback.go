// Package feedback plays short sounds when the active dot changes or a dot is tapped.
package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies a feedback sound
type Cue int

const (
	CueTick Cue = iota // Active dot moved
	CueTap             // Dot tapped
	CueEdge            // Move rejected at the first or last item
)

// String returns human-readable cue name
func (c Cue) String() string {
	switch c {
	case CueTick:
		return "tick"
	case CueTap:
		return "tap"
	case CueEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Settings controls sound generation
type Settings struct {
	SampleRate beep.SampleRate
	Volume     float64 // 0..1
}

// DefaultSettings returns 44.1kHz at 40% volume
func DefaultSettings() Settings {
	return Settings{SampleRate: beep.SampleRate(44100), Volume: 0.4}
}

// tone is a sine at freq whose amplitude falls linearly to zero over d
// Ending at silence keeps the cut from clicking
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range n {
			v := math.Sin(step*float64(pos)) * float64(total-pos) / float64(total)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return n, true
	})
}

// volume wraps s, zero volume is silent since log2(0) is -Inf
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound builds the streamer for cue
func Sound(cue Cue, s Settings) beep.Streamer {
	var out beep.Streamer
	switch cue {
	case CueTap:
		half := 30 * time.Millisecond
		out = beep.Seq(tone(660, half, s.SampleRate), tone(990, half, s.SampleRate))
	case CueEdge:
		out = tone(220, 90*time.Millisecond, s.SampleRate)
	default:
		out = tone(1320, 30*time.Millisecond, s.SampleRate)
	}
	return volume(out, s.Volume)
}

// Player plays cues without blocking the caller
type Player interface {
	Play(cue Cue)
}

// NopPlayer discards every cue
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
