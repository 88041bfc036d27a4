package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAstro loads the Astro game configuration.
// Search order: customPath -> ~/.astro/configs/astro.yaml -> ./configs/astro.yaml -> embedded default
func LoadAstro(customPath string) (AstroConfig, error) {
	var cfg AstroConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("astro.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/astro.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAstroYAML, &cfg); err != nil {
		return DefaultAstroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astro", "configs", filename)
}

// ApplyAstroPreset modifies the config based on a difficulty preset.
func ApplyAstroPreset(cfg *AstroConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rocks.Initial = 3
		cfg.Rocks.PerLevel = 3
		cfg.Rocks.MaxVel = 35
		cfg.Shots.Cooldown = 0.35
	case DifficultyHard:
		cfg.Rocks.Initial = 8
		cfg.Rocks.PerLevel = 7
		cfg.Rocks.MaxVel = 80
		cfg.Shots.Cooldown = 0.6
	case DifficultyFixed:
		cfg.Difficulty.WaveGrowth = false
	}
}
