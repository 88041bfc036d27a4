package astro

import "github.com/vovakirdan/astro-arcade/internal/core"

// Kind identifies what an actor is. It selects the glyph in the renderer
// and decides which lifecycle rules apply.
type Kind int

const (
	KindPlayer Kind = iota
	KindRock
	KindShot
)

// String returns a human-readable name for the actor kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindRock:
		return "Rock"
	case KindShot:
		return "Shot"
	default:
		return "Unknown"
	}
}

// Actor is a single simulated entity. All three kinds share the record.
//
// Life is interpreted per kind: for Player and Rock it is a hit-point
// count (starts at 1, set to 0 on a fatal collision); for Shot it is the
// remaining time to live in seconds, decremented every tick. Either way,
// life <= 0 means dead.
type Actor struct {
	Kind     Kind
	Pos      core.Vec2
	Facing   float64 // radians, 0 points along +Y; not normalized
	Velocity core.Vec2
	AngVel   float64 // rad/tick spin, unused by current kinds
	Radius   float64 // collision radius, always > 0
	Life     float64
}

// NewPlayer creates the player actor at the origin, facing up.
func NewPlayer(tun Tuning) Actor {
	return Actor{
		Kind:   KindPlayer,
		Radius: tun.PlayerBBox,
		Life:   1.0,
	}
}

// NewShot creates a shot at the given position and facing, moving at
// muzzle velocity along the facing direction.
func NewShot(pos core.Vec2, facing float64, tun Tuning) Actor {
	return Actor{
		Kind:     KindShot,
		Pos:      pos,
		Facing:   facing,
		Velocity: core.UnitFromAngle(facing).Scale(tun.ShotSpeed),
		Radius:   tun.ShotBBox,
		Life:     tun.ShotLife,
	}
}

// Thrust accelerates the actor along its facing. Only the player thrusts.
func Thrust(a *Actor, thrust, dt float64) {
	a.Velocity = a.Velocity.Add(core.UnitFromAngle(a.Facing).Scale(thrust * dt))
}

// Integrate advances position by one tick of Euler integration.
// Velocity is clamped to maxVel first, preserving direction.
func Integrate(a *Actor, dt, maxVel float64) {
	speed := a.Velocity.Length()
	if speed > maxVel {
		a.Velocity = a.Velocity.Scale(maxVel / speed)
	}
	a.Pos = a.Pos.Add(a.Velocity.Scale(dt))
	a.Facing += a.AngVel
}

// Wrap applies toroidal wrapping around the origin-centered world.
// A single correction per axis is enough: with clamped velocity and a
// fixed dt no actor can travel more than one world span in one tick.
func Wrap(a *Actor, width, height float64) {
	halfW := width / 2
	halfH := height / 2

	if a.Pos.X > halfW {
		a.Pos.X -= width
	} else if a.Pos.X < -halfW {
		a.Pos.X += width
	}

	if a.Pos.Y > halfH {
		a.Pos.Y -= height
	} else if a.Pos.Y < -halfH {
		a.Pos.Y += height
	}
}

// DecayLife counts down a timed actor's remaining life.
// The world applies this to shots only.
func DecayLife(a *Actor, dt float64) {
	a.Life -= dt
}

// Dead reports whether the actor's life has run out.
func (a Actor) Dead() bool {
	return a.Life <= 0
}
