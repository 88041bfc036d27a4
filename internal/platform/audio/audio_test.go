package audio

import (
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

type recordingPlayer struct {
	shots int
	hits  int
}

func (r *recordingPlayer) ShotFired() { r.shots++ }
func (r *recordingPlayer) RockHit()   { r.hits++ }
func (r *recordingPlayer) Close()     {}

func TestDispatchRoutesEvents(t *testing.T) {
	rec := &recordingPlayer{}

	Dispatch(rec, []core.Event{
		core.EventShotFired,
		core.EventRockHit,
		core.EventShotFired,
	})

	if rec.shots != 2 {
		t.Errorf("shots = %d, expected 2", rec.shots)
	}
	if rec.hits != 1 {
		t.Errorf("hits = %d, expected 1", rec.hits)
	}
}

func TestDispatchNilPlayer(t *testing.T) {
	// Must not panic
	Dispatch(nil, []core.Event{core.EventShotFired})
}

func TestNopPlayer(t *testing.T) {
	var p Player = NopPlayer{}
	p.ShotFired()
	p.RockHit()
	p.Close()
}
