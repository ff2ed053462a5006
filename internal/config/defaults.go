package config

import (
	_ "embed"
)

//go:embed defaults/reversi.yaml
var defaultReversiYAML []byte

// DefaultReversiConfig returns the default reversi configuration.
func DefaultReversiConfig() ReversiConfig {
	return ReversiConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		Rules: RulesConfig{
			FirstTurn: "black",
			Hints:     true,
		},
		Theme: ThemeConfig{
			Board:  "green",
			Black:  "bright_red",
			White:  "bright_white",
			Cursor: "bright_yellow",
			Hint:   "gray",
		},
	}
}
