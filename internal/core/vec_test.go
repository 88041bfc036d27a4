package core

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestUnitFromAngleIsUnit(t *testing.T) {
	angles := []float64{0, 0.5, 1, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi, -1.3, 17.0}
	for _, a := range angles {
		v := UnitFromAngle(a)
		if math.Abs(v.Length()-1.0) > epsilon {
			t.Errorf("UnitFromAngle(%f) has magnitude %f, expected 1", a, v.Length())
		}
	}
}

func TestUnitFromAngleConvention(t *testing.T) {
	// Angle 0 points "up" along +Y, not along +X.
	up := UnitFromAngle(0)
	if math.Abs(up.X) > epsilon || math.Abs(up.Y-1) > epsilon {
		t.Errorf("UnitFromAngle(0) = %+v, expected (0, 1)", up)
	}

	right := UnitFromAngle(math.Pi / 2)
	if math.Abs(right.X-1) > epsilon || math.Abs(right.Y) > epsilon {
		t.Errorf("UnitFromAngle(pi/2) = %+v, expected (1, 0)", right)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Add = %+v, expected (2, 6)", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub = %+v, expected (4, 2)", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v, expected (6, 8)", got)
	}
	if got := a.Length(); math.Abs(got-5) > epsilon {
		t.Errorf("Length = %f, expected 5", got)
	}
	if got := a.LengthSquared(); math.Abs(got-25) > epsilon {
		t.Errorf("LengthSquared = %f, expected 25", got)
	}
}

func TestVecDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 1}, 0},
		{"horizontal", Vec2{X: 0, Y: 0}, Vec2{X: 5, Y: 0}, 5},
		{"vertical", Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: -3}, 3},
		{"diagonal 3-4-5", Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Distance(tc.b)
			if math.Abs(got-tc.expected) > epsilon {
				t.Errorf("Distance = %f, expected %f", got, tc.expected)
			}
			// Distance is symmetric
			if rev := tc.b.Distance(tc.a); math.Abs(rev-got) > epsilon {
				t.Errorf("Distance not symmetric: %f vs %f", got, rev)
			}
		})
	}
}

func TestRandomVecBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const maxMag = 50.0

	for i := 0; i < 1000; i++ {
		v := RandomVec(rng, maxMag)
		if v.Length() > maxMag+epsilon {
			t.Fatalf("RandomVec magnitude %f exceeds max %f", v.Length(), maxMag)
		}
	}
}

func TestRandomVecDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		va := RandomVec(a, 50)
		vb := RandomVec(b, 50)
		if va != vb {
			t.Fatalf("same seed produced different vectors at draw %d: %+v vs %+v", i, va, vb)
		}
	}
}
