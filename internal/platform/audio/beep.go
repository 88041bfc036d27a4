package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate beep.SampleRate = 44100

// BeepPlayer synthesizes effect tones through the system audio device.
type BeepPlayer struct{}

// NewBeepPlayer initializes the speaker. Returns an error if no audio
// device is available; callers should fall back to NopPlayer.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &BeepPlayer{}, nil
}

// ShotFired plays a short high blip.
func (p *BeepPlayer) ShotFired() {
	p.tone(880, 60*time.Millisecond)
}

// RockHit plays a lower, longer thud.
func (p *BeepPlayer) RockHit() {
	p.tone(220, 90*time.Millisecond)
}

// tone queues a sine burst on the speaker mixer.
func (p *BeepPlayer) tone(freq float64, d time.Duration) {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), s))
}

// Close shuts down the speaker.
func (p *BeepPlayer) Close() {
	speaker.Close()
}
