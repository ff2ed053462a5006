// Package config provides YAML-based configuration loading and validation
// for the reversi game.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

// Board size limits. Both dimensions must be even so the four starting
// discs sit exactly in the centre.
const (
	MinBoardSize = 4
	MaxBoardSize = 26
)

// ReversiConfig contains all configuration for the reversi game.
type ReversiConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines who opens and whether legal moves are shown.
type RulesConfig struct {
	FirstTurn string `yaml:"first_turn"` // "black" or "white"
	Hints     bool   `yaml:"hints"`
}

// ThemeConfig holds color names, parsed with core.ParseColor.
type ThemeConfig struct {
	Board  string `yaml:"board"`
	Black  string `yaml:"black"`
	White  string `yaml:"white"`
	Cursor string `yaml:"cursor"`
	Hint   string `yaml:"hint"`
}

// Palette is a parsed ThemeConfig.
type Palette struct {
	Board  core.Color
	Black  core.Color
	White  core.Color
	Cursor core.Color
	Hint   core.Color
}

// InvalidConfig reports a field that failed validation.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks board size, first turn and theme colors.
func (c ReversiConfig) Validate() error {
	dims := []struct {
		field string
		value int
	}{
		{"board.width", c.Board.Width},
		{"board.height", c.Board.Height},
	}
	for _, d := range dims {
		if d.value < MinBoardSize || d.value > MaxBoardSize {
			return &InvalidConfig{
				Field:  d.field,
				Reason: fmt.Sprintf("%d is outside %d..%d", d.value, MinBoardSize, MaxBoardSize),
			}
		}
		if d.value%2 != 0 {
			return &InvalidConfig{Field: d.field, Reason: fmt.Sprintf("%d is not even", d.value)}
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.Rules.FirstTurn)) {
	case "black", "b", "white", "w":
	default:
		return &InvalidConfig{Field: "rules.first_turn", Reason: fmt.Sprintf("%q is not black or white", c.Rules.FirstTurn)}
	}

	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses every theme color.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"theme.board", t.Board, &p.Board},
		{"theme.black", t.Black, &p.Black},
		{"theme.white", t.White, &p.White},
		{"theme.cursor", t.Cursor, &p.Cursor},
		{"theme.hint", t.Hint, &p.Hint},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return Palette{}, &InvalidConfig{Field: f.name, Reason: err.Error()}
		}
		*f.dst = c
	}
	return p, nil
}
