// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// AstroConfig contains all configuration for the Astro game.
type AstroConfig struct {
	World      AstroWorld       `yaml:"world"`
	Player     AstroPlayer      `yaml:"player"`
	Shots      AstroShots       `yaml:"shots"`
	Rocks      AstroRocks       `yaml:"rocks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AstroWorld defines the simulation space in world units.
type AstroWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AstroPlayer defines ship handling parameters.
type AstroPlayer struct {
	Thrust   float64 `yaml:"thrust"`    // Engine acceleration, units/s^2
	TurnRate float64 `yaml:"turn_rate"` // Rotation speed, rad/s
	MaxVel   float64 `yaml:"max_vel"`   // Speed cap for every actor, units/s
	BBox     float64 `yaml:"bbox"`      // Collision radius
}

// AstroShots defines projectile parameters.
type AstroShots struct {
	Speed    float64 `yaml:"speed"`    // Muzzle velocity, units/s
	Cooldown float64 `yaml:"cooldown"` // Minimum seconds between shots
	Life     float64 `yaml:"life"`     // Seconds before a shot expires
	BBox     float64 `yaml:"bbox"`     // Collision radius
}

// AstroRocks defines rock spawning parameters.
type AstroRocks struct {
	MaxVel         float64 `yaml:"max_vel"`          // Drift speed cap, units/s
	Initial        int     `yaml:"initial"`          // Rocks in the first wave
	PerLevel       int     `yaml:"per_level"`        // Added on top of the level each wave
	SpawnMinRadius float64 `yaml:"spawn_min_radius"` // Inner edge of the spawn ring
	SpawnMaxRadius float64 `yaml:"spawn_max_radius"` // Outer edge of the spawn ring
	BBox           float64 `yaml:"bbox"`             // Collision radius
}

// DifficultyConfig defines how the game scales over a run.
type DifficultyConfig struct {
	// WaveGrowth controls whether each cleared wave spawns a larger one.
	// Disabled by the "fixed" preset for practice runs.
	WaveGrowth bool `yaml:"wave_growth"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
