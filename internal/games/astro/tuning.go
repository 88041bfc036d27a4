package astro

// Tuning holds every physics and balance constant for one game instance.
// It is immutable after construction: the world keeps its own copy, so
// tests can override individual values without touching globals.
type Tuning struct {
	// World dimensions in world units. The simulation is centered on the
	// origin with Y pointing up; the renderer projects into screen cells.
	WorldW float64
	WorldH float64

	// Player handling.
	PlayerThrust float64 // acceleration while thrusting, units/s^2
	TurnRate     float64 // rotation speed, rad/s
	MaxVel       float64 // hard speed cap for every actor, units/s

	// Shots.
	ShotSpeed    float64 // muzzle velocity, units/s
	ShotCooldown float64 // minimum seconds between shots
	ShotLife     float64 // seconds a shot lives before expiring

	// Rocks.
	MaxRockVel     float64 // spawn drift speed cap, units/s
	InitialRocks   int     // rocks at level 1
	RocksPerLevel  int     // added on top of the level number each wave
	WaveGrowth     bool    // whether cleared waves spawn larger ones
	SpawnMinRadius float64 // inner edge of the spawn ring around the player
	SpawnMaxRadius float64 // outer edge of the spawn ring

	// Collision radii per actor kind. Fixed constants so the core never
	// depends on how anything is drawn.
	PlayerBBox float64
	RockBBox   float64
	ShotBBox   float64
}

// DefaultTuning returns the classic game balance.
func DefaultTuning() Tuning {
	return Tuning{
		WorldW: 800,
		WorldH: 600,

		PlayerThrust: 100.0,
		TurnRate:     3.0,
		MaxVel:       250.0,

		ShotSpeed:    200.0,
		ShotCooldown: 0.5,
		ShotLife:     2.0,

		MaxRockVel:     50.0,
		InitialRocks:   5,
		RocksPerLevel:  5,
		WaveGrowth:     true,
		SpawnMinRadius: 100.0,
		SpawnMaxRadius: 250.0,

		PlayerBBox: 12.0,
		RockBBox:   12.0,
		ShotBBox:   6.0,
	}
}

// HardTuning returns a denser, faster variant for the hard mode entry.
func HardTuning() Tuning {
	return harden(DefaultTuning())
}

// harden applies the hard-mode overlay to any base tuning.
func harden(t Tuning) Tuning {
	t.MaxRockVel = 80.0
	t.InitialRocks = 8
	t.RocksPerLevel = 7
	t.ShotCooldown = 0.6
	return t
}
