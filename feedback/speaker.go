package feedback

import (
	"time"

	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer plays cues on the default audio device
type SpeakerPlayer struct {
	settings Settings
}

// NewSpeakerPlayer initializes the speaker with a 100ms buffer
func NewSpeakerPlayer(s Settings) (*SpeakerPlayer, error) {
	if err := speaker.Init(s.SampleRate, s.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &SpeakerPlayer{settings: s}, nil
}

// Play queues cue on the speaker mixer and returns immediately
func (p *SpeakerPlayer) Play(cue Cue) {
	speaker.Play(Sound(cue, p.settings))
}

// Close releases the audio device
func (p *SpeakerPlayer) Close() {
	speaker.Close()
}
