package config

import (
	_ "embed"
)

//go:embed defaults/astro.yaml
var defaultAstroYAML []byte

// DefaultAstroConfig returns the default Astro configuration.
func DefaultAstroConfig() AstroConfig {
	return AstroConfig{
		World: AstroWorld{
			Width:  800,
			Height: 600,
		},
		Player: AstroPlayer{
			Thrust:   100.0,
			TurnRate: 3.0,
			MaxVel:   250.0,
			BBox:     12.0,
		},
		Shots: AstroShots{
			Speed:    200.0,
			Cooldown: 0.5,
			Life:     2.0,
			BBox:     6.0,
		},
		Rocks: AstroRocks{
			MaxVel:         50.0,
			Initial:        5,
			PerLevel:       5,
			SpawnMinRadius: 100.0,
			SpawnMaxRadius: 250.0,
			BBox:           12.0,
		},
		Difficulty: DifficultyConfig{
			WaveGrowth: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "astro", "astro_hard":
		return defaultAstroYAML
	default:
		return nil
	}
}
