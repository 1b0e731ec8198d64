package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.typecatch/configs/typecatch.yaml -> ./configs/typecatch.yaml -> embedded default
// Files are decoded over DefaultConfig, so a file only needs the keys it changes.
// A customPath ending in .toml is decoded as TOML.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, p := range []string{userConfigPath("typecatch.yaml"), filepath.Join("configs", "typecatch.yaml")} {
		if p == "" {
			continue
		}
		if cfg, err := decodeFile(p); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile(path string) (GameConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typecatch", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Timing.NormalBudgetMs = 12000
		cfg.Timing.RareBudgetMs = 5500
		cfg.Rules.PassMark = 6
		cfg.Rules.MaxMistake = 6
		cfg.Rules.MistakeCap = 15
		cfg.Difficulty.BudgetReduction = 0
	case DifficultyHard:
		cfg.Timing.NormalBudgetMs = 7000
		cfg.Timing.RareBudgetMs = 3000
		cfg.Rules.PassMark = 8
		cfg.Rules.MaxMistake = 4
		cfg.Rules.MistakeCap = 6
		cfg.Difficulty.BudgetReduction = 0.25
	}
}
