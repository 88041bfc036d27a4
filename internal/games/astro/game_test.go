package astro

import (
	"strings"
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"astro", "astro_hard"} {
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	a := New("astro", "Astro", DefaultTuning())
	b := New("astro", "Astro", DefaultTuning())
	a.Reset(testConfig(12345))
	b.Reset(testConfig(12345))

	// A scripted input sequence: turn, thrust, fire in a repeating pattern.
	for tick := 0; tick < 600; tick++ {
		frame := core.NewInputFrame()
		switch tick % 4 {
		case 0:
			frame.Set(core.ActionTurnRight)
		case 1:
			frame.Set(core.ActionThrust)
		case 2:
			frame.Set(core.ActionFire)
		}

		a.Step(frame)
		b.Step(frame.Clone())

		ha := a.world.Snapshot().Hash()
		hb := b.world.Snapshot().Hash()
		if ha != hb {
			t.Fatalf("same seed diverged at tick %d: %x vs %x", tick, ha, hb)
		}
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	a := New("astro", "Astro", DefaultTuning())
	b := New("astro", "Astro", DefaultTuning())
	a.Reset(testConfig(1))
	b.Reset(testConfig(2))

	if a.world.Snapshot().Hash() == b.world.Snapshot().Hash() {
		t.Error("different seeds should produce different rock layouts")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New("astro", "Astro", DefaultTuning())
	g.Reset(testConfig(42))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	result := g.Step(pause)
	if !result.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.world.Snapshot().Hash()
	thrust := core.NewInputFrame()
	thrust.Set(core.ActionThrust)
	for i := 0; i < 10; i++ {
		g.Step(thrust)
	}
	if g.world.Snapshot().Hash() != before {
		t.Error("world advanced while paused")
	}

	result = g.Step(pause)
	if result.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New("astro", "Astro", DefaultTuning())
	g.Reset(testConfig(42))

	g.world.player.Life = 0
	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Fatal("game should be over with a dead player")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result = g.Step(restart)

	if result.State.GameOver {
		t.Error("restart should start a fresh run")
	}
	if result.State.Score != 0 || result.State.Level != 1 {
		t.Errorf("restart state = %+v, expected score 0 level 1", result.State)
	}
}

func TestGameRenderDrawsActorsAndHUD(t *testing.T) {
	g := New("astro", "Astro", DefaultTuning())
	g.Reset(testConfig(42))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if out == "" {
		t.Fatal("render produced an empty screen")
	}

	// HUD sits on the top row.
	row := screen.Row(0)
	if !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Level: 1") {
		t.Errorf("HUD row = %q, expected score and level", row)
	}

	// The player ship is visible somewhere.
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			switch screen.Get(x, y) {
			case '▲', '▶', '▼', '◀':
				found = true
			}
		}
	}
	if !found {
		t.Error("player glyph not found on screen")
	}
}

func TestShipGlyphSectors(t *testing.T) {
	tests := []struct {
		facing   float64
		expected rune
	}{
		{0, '▲'},
		{1.5708, '▶'},
		{3.1416, '▼'},
		{4.7124, '◀'},
		{6.2832, '▲'},
		{-1.5708, '◀'},
	}

	for _, tc := range tests {
		if got := shipGlyph(tc.facing); got != tc.expected {
			t.Errorf("shipGlyph(%f) = %q, expected %q", tc.facing, got, tc.expected)
		}
	}
}
