// Package audio plays short synthesized tones for game events.
// There are no sound assets; effects are generated sine waves.
package audio

import "github.com/vovakirdan/astro-arcade/internal/core"

// Player reacts to game sound events. Implementations must return
// immediately; the simulation never waits for playback.
type Player interface {
	ShotFired()
	RockHit()
	Close()
}

// Dispatch routes the events from one simulation tick to the player.
func Dispatch(p Player, events []core.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		switch ev {
		case core.EventShotFired:
			p.ShotFired()
		case core.EventRockHit:
			p.RockHit()
		}
	}
}

// NopPlayer discards all events. Used when sound is disabled or the
// audio device cannot be opened.
type NopPlayer struct{}

func (NopPlayer) ShotFired() {}
func (NopPlayer) RockHit()   {}
func (NopPlayer) Close()     {}
