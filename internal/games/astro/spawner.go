package astro

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// SpawnRocks generates n rocks in a ring around the exclusion center,
// each at a uniform-random angle and a uniform-random distance in
// [minRadius, maxRadius]. Drift velocity is a random vector capped at
// the tuning's rock speed. Returned order is insertion order.
//
// Panics if maxRadius <= minRadius: the spawn ring is static game
// configuration, so a degenerate ring is a programming error rather
// than a runtime condition to recover from.
func SpawnRocks(rng *rand.Rand, n int, center core.Vec2, minRadius, maxRadius float64, tun Tuning) []Actor {
	if maxRadius <= minRadius {
		panic(fmt.Sprintf("astro: spawn ring max radius %v must exceed min radius %v", maxRadius, minRadius))
	}

	rocks := make([]Actor, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := minRadius + rng.Float64()*(maxRadius-minRadius)

		rocks = append(rocks, Actor{
			Kind:     KindRock,
			Pos:      center.Add(core.UnitFromAngle(angle).Scale(dist)),
			Velocity: core.RandomVec(rng, tun.MaxRockVel),
			Radius:   tun.RockBBox,
			Life:     1.0,
		})
	}
	return rocks
}
