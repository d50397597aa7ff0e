package config

import (
	_ "embed"
)

//go:embed defaults/fourwins.yaml
var defaultFourWinsYAML []byte

// DefaultFourWinsConfig returns the hardcoded default configuration.
func DefaultFourWinsConfig() FourWinsConfig {
	return FourWinsConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Players: []PlayerConfig{
			{Name: "Red", Glyph: "●"},
			{Name: "Yellow", Glyph: "●"},
		},
		CPU: CPUConfig{
			Easy:   1,
			Normal: 4,
			Hard:   7,
		},
		TickRate: 30,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFourWinsYAML
}
