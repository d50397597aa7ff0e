// Package config provides YAML-based configuration loading for Four Wins.
package config

import (
	"errors"
	"fmt"
)

// Board size limits. The upper bound keeps the board on an 80x24 terminal.
const (
	MinBoardSize = 1
	MaxBoardSize = 20
)

// ErrInvalidConfig is wrapped by all Validate failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FourWinsConfig contains all configuration for the game.
type FourWinsConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Players  []PlayerConfig `yaml:"players"`
	CPU      CPUConfig      `yaml:"cpu"`
	TickRate int            `yaml:"tick_rate"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines how a player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// CPUConfig holds the search depth for each difficulty preset.
type CPUConfig struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// DifficultyPreset represents a named CPU strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// Depth returns the search depth for a preset.
func (c CPUConfig) Depth(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Normal
	}
}

// PlayerName returns the display name for a 0-based player index.
func (c FourWinsConfig) PlayerName(index int) string {
	if index >= 0 && index < len(c.Players) && c.Players[index].Name != "" {
		return c.Players[index].Name
	}
	return fmt.Sprintf("Player %d", index+1)
}

// PlayerGlyph returns the piece glyph for a 0-based player index.
func (c FourWinsConfig) PlayerGlyph(index int) rune {
	if index >= 0 && index < len(c.Players) {
		for _, r := range c.Players[index].Glyph {
			return r
		}
	}
	if index == 0 {
		return 'X'
	}
	return 'O'
}

// Validate checks the configuration for values the game cannot run with.
func (c FourWinsConfig) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		return fmt.Errorf("%w: board width %d out of range [%d, %d]",
			ErrInvalidConfig, c.Board.Width, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		return fmt.Errorf("%w: board height %d out of range [%d, %d]",
			ErrInvalidConfig, c.Board.Height, MinBoardSize, MaxBoardSize)
	}
	if len(c.Players) > 2 {
		return fmt.Errorf("%w: %d players configured, the game has two", ErrInvalidConfig, len(c.Players))
	}
	for _, d := range []int{c.CPU.Easy, c.CPU.Normal, c.CPU.Hard} {
		if d < 1 {
			return fmt.Errorf("%w: cpu depth must be at least 1, got %d", ErrInvalidConfig, d)
		}
	}
	if c.TickRate < 0 {
		return fmt.Errorf("%w: negative tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	return nil
}
