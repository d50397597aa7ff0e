package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "fourwins.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.fourwins/configs/fourwins.yaml -> ./configs/fourwins.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (FourWinsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FourWinsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FourWinsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFourWinsYAML)
	if err != nil {
		return DefaultFourWinsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (FourWinsConfig, error) {
	cfg := DefaultFourWinsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FourWinsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FourWinsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fourwins", "configs", filename)
}

// ApplyBoardOverride replaces the board size when non-zero values are given
// and revalidates.
func ApplyBoardOverride(cfg *FourWinsConfig, width, height int) error {
	if width != 0 {
		cfg.Board.Width = width
	}
	if height != 0 {
		cfg.Board.Height = height
	}
	return cfg.Validate()
}
