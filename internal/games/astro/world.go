package astro

import (
	"math/rand"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// Intent is the control snapshot for one tick: which way to turn,
// whether to burn the engine, and whether the fire key is down.
// The platform rebuilds it fresh every tick.
type Intent struct {
	TurnAxis   float64 // -1 left, 0 none, 1 right
	ThrustAxis float64 // 0 idle, 1 thrusting
	Fire       bool
}

// World owns every actor and runs the per-tick simulation. It has no
// knowledge of terminals, keys, or sound; the surrounding game adapts
// platform input into an Intent and reads actors back out to render.
type World struct {
	player Actor
	shots  []Actor
	rocks  []Actor

	level    int
	score    int
	cooldown float64
	gameOver bool

	tun Tuning
	rng *rand.Rand
}

// NewWorld creates a world with the player at the origin and the first
// wave of rocks spawned in a ring around it.
func NewWorld(tun Tuning, rng *rand.Rand) *World {
	w := &World{
		player: NewPlayer(tun),
		level:  1,
		tun:    tun,
		rng:    rng,
	}
	w.rocks = SpawnRocks(rng, tun.InitialRocks, w.player.Pos, tun.SpawnMinRadius, tun.SpawnMaxRadius, tun)
	return w
}

// Step advances the simulation by dt seconds and returns the events
// emitted during the tick. Once the player is dead the world freezes;
// callers should check GameOver and stop ticking.
func (w *World) Step(dt float64, in Intent) []core.Event {
	if w.gameOver {
		return nil
	}

	var events []core.Event

	// Steering and thrust.
	w.player.Facing += dt * w.tun.TurnRate * in.TurnAxis
	if in.ThrustAxis > 0 {
		Thrust(&w.player, w.tun.PlayerThrust, dt)
	}

	// Firing, gated by the cooldown timer.
	w.cooldown -= dt
	if in.Fire && w.cooldown < 0 {
		w.shots = append(w.shots, NewShot(w.player.Pos, w.player.Facing, w.tun))
		w.cooldown = w.tun.ShotCooldown
		events = append(events, core.EventShotFired)
	}

	// Motion.
	Integrate(&w.player, dt, w.tun.MaxVel)
	Wrap(&w.player, w.tun.WorldW, w.tun.WorldH)
	for i := range w.shots {
		Integrate(&w.shots[i], dt, w.tun.MaxVel)
		Wrap(&w.shots[i], w.tun.WorldW, w.tun.WorldH)
		DecayLife(&w.shots[i], dt)
	}
	for i := range w.rocks {
		Integrate(&w.rocks[i], dt, w.tun.MaxVel)
		Wrap(&w.rocks[i], w.tun.WorldW, w.tun.WorldH)
	}

	// Collisions. A rock takes at most one shot per tick; when several
	// shots overlap the same rock the first in list order wins.
	for ri := range w.rocks {
		rock := &w.rocks[ri]
		for si := range w.shots {
			shot := &w.shots[si]
			if shot.Dead() {
				continue
			}
			if shot.Pos.Distance(rock.Pos) < shot.Radius+rock.Radius {
				shot.Life = 0
				rock.Life = 0
				w.score++
				events = append(events, core.EventRockHit)
				break
			}
		}
		if w.player.Pos.Distance(rock.Pos) < w.player.Radius+rock.Radius {
			w.player.Life = 0
		}
	}

	// Cull dead shots (hit or expired) and destroyed rocks.
	w.shots = cullDead(w.shots)
	w.rocks = cullDead(w.rocks)

	// Wave cleared: next level brings a bigger ring of rocks, unless
	// wave growth is disabled for practice runs.
	if len(w.rocks) == 0 {
		w.level++
		n := w.tun.InitialRocks
		if w.tun.WaveGrowth {
			n = w.level + w.tun.RocksPerLevel
		}
		w.rocks = append(w.rocks, SpawnRocks(w.rng, n, w.player.Pos, w.tun.SpawnMinRadius, w.tun.SpawnMaxRadius, w.tun)...)
	}

	if w.player.Dead() {
		w.gameOver = true
	}

	return events
}

// cullDead removes actors whose life has run out, preserving order.
func cullDead(actors []Actor) []Actor {
	alive := actors[:0]
	for _, a := range actors {
		if !a.Dead() {
			alive = append(alive, a)
		}
	}
	return alive
}

// Player returns a copy of the player actor.
func (w *World) Player() Actor {
	return w.player
}

// Shots returns the live shots. The slice is owned by the world and
// must not be mutated by callers.
func (w *World) Shots() []Actor {
	return w.shots
}

// Rocks returns the live rocks. The slice is owned by the world and
// must not be mutated by callers.
func (w *World) Rocks() []Actor {
	return w.rocks
}

// Score returns the number of rocks destroyed so far.
func (w *World) Score() int {
	return w.score
}

// Level returns the current wave number, starting at 1.
func (w *World) Level() int {
	return w.level
}

// GameOver reports whether the player has been destroyed.
func (w *World) GameOver() bool {
	return w.gameOver
}
