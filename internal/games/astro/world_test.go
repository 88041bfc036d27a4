package astro

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

func newTestWorld(seed int64) *World {
	return NewWorld(DefaultTuning(), rand.New(rand.NewSource(seed)))
}

func TestNewWorldSpawnsInitialWave(t *testing.T) {
	w := newTestWorld(1)

	if w.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", w.Level())
	}
	if len(w.Rocks()) != DefaultTuning().InitialRocks {
		t.Errorf("spawned %d rocks, expected %d", len(w.Rocks()), DefaultTuning().InitialRocks)
	}
	if w.Score() != 0 || w.GameOver() {
		t.Error("new world should start with zero score and running state")
	}
	// Every rock starts outside the spawn exclusion ring.
	for i, r := range w.Rocks() {
		if d := r.Pos.Distance(w.Player().Pos); d < 100-epsilon {
			t.Errorf("rock %d spawned %f from the player, inside the exclusion ring", i, d)
		}
	}
}

func TestThrustTickMovesPlayerUp(t *testing.T) {
	w := newTestWorld(2)

	w.Step(1.0/60, Intent{ThrustAxis: 1})

	p := w.Player()
	if math.Abs(p.Pos.X) > epsilon {
		t.Errorf("player drifted on X: %f", p.Pos.X)
	}
	if p.Pos.Y <= 0 {
		t.Errorf("player Y = %f, expected forward motion along +Y", p.Pos.Y)
	}
	if w.GameOver() {
		t.Error("one tick of thrust should not end the game")
	}
}

func TestTurningChangesFacing(t *testing.T) {
	w := newTestWorld(3)
	dt := 1.0 / 60

	w.Step(dt, Intent{TurnAxis: 1})
	expected := dt * DefaultTuning().TurnRate
	if math.Abs(w.Player().Facing-expected) > epsilon {
		t.Errorf("facing = %f after one right turn tick, expected %f", w.Player().Facing, expected)
	}

	w.Step(dt, Intent{TurnAxis: -1})
	if math.Abs(w.Player().Facing) > epsilon {
		t.Errorf("facing = %f after matching left turn, expected 0", w.Player().Facing)
	}
}

func TestFiringRespectsCooldown(t *testing.T) {
	w := newTestWorld(4)
	dt := 1.0 / 60

	events := w.Step(dt, Intent{Fire: true})
	if len(w.Shots()) != 1 {
		t.Fatalf("expected 1 shot after first fire, got %d", len(w.Shots()))
	}
	if !containsEvent(events, core.EventShotFired) {
		t.Error("firing should emit a shot event")
	}

	// Cooldown is 0.5s = 30 ticks; holding fire must not spawn more.
	for i := 0; i < 25; i++ {
		w.Step(dt, Intent{Fire: true})
	}
	if len(w.Shots()) != 1 {
		t.Errorf("cooldown ignored, %d shots in flight", len(w.Shots()))
	}

	// Past the cooldown the next fire succeeds.
	for i := 0; i < 10; i++ {
		w.Step(dt, Intent{Fire: true})
	}
	if len(w.Shots()) != 2 {
		t.Errorf("expected a second shot after cooldown, got %d", len(w.Shots()))
	}
}

func TestShotHitsRock(t *testing.T) {
	w := newTestWorld(5)

	// Stationary shot overlapping a stationary rock, plus a distant rock
	// so the wave is not cleared by the hit.
	w.shots = []Actor{{Kind: KindShot, Pos: core.Vec2{X: 50, Y: 50}, Radius: 6, Life: 2}}
	w.rocks = []Actor{
		{Kind: KindRock, Pos: core.Vec2{X: 50, Y: 55}, Radius: 12, Life: 1},
		{Kind: KindRock, Pos: core.Vec2{X: -300, Y: -200}, Radius: 12, Life: 1},
	}

	events := w.Step(1.0/60, Intent{})

	if w.Score() != 1 {
		t.Errorf("Score() = %d, expected 1 after a hit", w.Score())
	}
	if len(w.shots) != 0 {
		t.Errorf("hit shot should be culled, %d shots remain", len(w.shots))
	}
	if len(w.rocks) != 1 {
		t.Errorf("hit rock should be culled, %d rocks remain", len(w.rocks))
	}
	if !containsEvent(events, core.EventRockHit) {
		t.Error("destroying a rock should emit a hit event")
	}
}

func TestTwoShotsOneRockScoresOnce(t *testing.T) {
	w := newTestWorld(6)

	w.shots = []Actor{
		{Kind: KindShot, Pos: core.Vec2{X: 50, Y: 50}, Radius: 6, Life: 2},
		{Kind: KindShot, Pos: core.Vec2{X: 50, Y: 52}, Radius: 6, Life: 2},
	}
	w.rocks = []Actor{
		{Kind: KindRock, Pos: core.Vec2{X: 50, Y: 55}, Radius: 12, Life: 1},
		{Kind: KindRock, Pos: core.Vec2{X: -300, Y: -200}, Radius: 12, Life: 1},
	}

	w.Step(1.0/60, Intent{})

	if w.Score() != 1 {
		t.Errorf("Score() = %d, expected exactly 1 for one destroyed rock", w.Score())
	}
	// The first shot in list order takes the rock; the second survives.
	if len(w.shots) != 1 {
		t.Errorf("%d shots remain, expected the second to survive", len(w.shots))
	}
}

func TestShotExpires(t *testing.T) {
	w := newTestWorld(7)
	dt := 1.0 / 60

	// A stationary shot far from everything, and a single distant rock
	// pinned in place so the wave never clears mid-test.
	w.shots = []Actor{{Kind: KindShot, Pos: core.Vec2{X: 0, Y: 100}, Radius: 6, Life: 2.0}}
	w.rocks = []Actor{{Kind: KindRock, Pos: core.Vec2{X: -350, Y: -250}, Radius: 12, Life: 1}}

	for i := 0; i < 119; i++ {
		w.Step(dt, Intent{})
	}
	if len(w.shots) != 1 {
		t.Fatal("shot expired too early")
	}

	w.Step(dt, Intent{})
	w.Step(dt, Intent{})
	if len(w.shots) != 0 {
		t.Errorf("shot should be culled after its life runs out, life = %f", w.shots[0].Life)
	}
}

func TestLevelUpSpawnsNextWave(t *testing.T) {
	w := newTestWorld(8)

	for i := range w.rocks {
		w.rocks[i].Life = 0
	}
	w.Step(1.0/60, Intent{})

	if w.Level() != 2 {
		t.Errorf("Level() = %d, expected 2 after clearing the wave", w.Level())
	}
	expected := 2 + DefaultTuning().RocksPerLevel
	if len(w.Rocks()) != expected {
		t.Errorf("spawned %d rocks for level 2, expected %d", len(w.Rocks()), expected)
	}
}

func TestPlayerRockCollisionEndsGame(t *testing.T) {
	w := newTestWorld(9)

	w.rocks = []Actor{{Kind: KindRock, Pos: w.player.Pos, Radius: 12, Life: 1}}
	w.Step(1.0/60, Intent{})

	if !w.GameOver() {
		t.Error("overlapping rock should destroy the player")
	}
}

func TestDeadPlayerTriggersGameOver(t *testing.T) {
	w := newTestWorld(10)

	w.player.Life = 0
	w.Step(1.0/60, Intent{})

	if !w.GameOver() {
		t.Error("GameOver() should report true once player life reaches 0")
	}

	// The world freezes after game over.
	before := w.Snapshot().Hash()
	w.Step(1.0/60, Intent{ThrustAxis: 1, Fire: true})
	if w.Snapshot().Hash() != before {
		t.Error("world should not advance after game over")
	}
}

func containsEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
