package astro

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

func TestSpawnRocksCountAndRing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tun := DefaultTuning()
	center := core.Vec2{X: 37, Y: -12}

	rocks := SpawnRocks(rng, 50, center, 100, 250, tun)

	if len(rocks) != 50 {
		t.Fatalf("spawned %d rocks, expected 50", len(rocks))
	}

	for i, r := range rocks {
		d := r.Pos.Distance(center)
		if d < 100-epsilon || d > 250+epsilon {
			t.Errorf("rock %d at distance %f, expected within [100, 250]", i, d)
		}
		if r.Kind != KindRock {
			t.Errorf("rock %d has kind %v", i, r.Kind)
		}
		if r.Life != 1.0 {
			t.Errorf("rock %d has life %f, expected 1", i, r.Life)
		}
		if r.Radius != tun.RockBBox {
			t.Errorf("rock %d has radius %f, expected %f", i, r.Radius, tun.RockBBox)
		}
		if speed := r.Velocity.Length(); speed > tun.MaxRockVel+epsilon {
			t.Errorf("rock %d drifts at %f, expected at most %f", i, speed, tun.MaxRockVel)
		}
	}
}

func TestSpawnRocksDeterministic(t *testing.T) {
	tun := DefaultTuning()
	a := SpawnRocks(rand.New(rand.NewSource(99)), 10, core.Vec2{}, 100, 250, tun)
	b := SpawnRocks(rand.New(rand.NewSource(99)), 10, core.Vec2{}, 100, 250, tun)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different rock %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnRocksBadRingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for max radius <= min radius")
		}
	}()

	SpawnRocks(rand.New(rand.NewSource(1)), 5, core.Vec2{}, 250, 100, DefaultTuning())
}
