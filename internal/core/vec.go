package core

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D vector in world units (pixels). The simulation uses a
// Y-up coordinate system with the origin at the center of the world.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude, avoiding the sqrt when
// only comparisons are needed.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// UnitFromAngle returns the unit vector for the given heading in radians.
// Angle 0 points along +Y ("up") and increases clockwise, so the vector is
// (sin, cos) rather than the usual (cos, sin). Ship facing, thrust, and shot
// direction all share this convention; do not change one without the others.
func UnitFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: math.Cos(angle)}
}

// RandomVec returns a vector with uniform-random direction and a magnitude
// drawn uniformly from [0, maxMagnitude). The distribution is intentionally
// not area-uniform: short vectors are over-represented, which reads better
// for drifting debris.
func RandomVec(rng *rand.Rand, maxMagnitude float64) Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	mag := rng.Float64() * maxMagnitude
	return UnitFromAngle(angle).Scale(mag)
}
