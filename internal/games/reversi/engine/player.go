package engine

import (
	"fmt"
	"strings"
)

// Player is the occupant of a board cell.
type Player uint8

const (
	Empty Player = iota
	Black
	White
)

// Opponent returns the other colour. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// String returns "empty", "black" or "white".
func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Turn says whose move it is.
type Turn uint8

const (
	TurnBlack Turn = iota
	TurnWhite
)

// Next returns the other side's turn.
func (t Turn) Next() Turn {
	if t == TurnBlack {
		return TurnWhite
	}
	return TurnBlack
}

// Player returns the colour stamped on the board for this turn.
func (t Turn) Player() Player {
	if t == TurnBlack {
		return Black
	}
	return White
}

func (t Turn) String() string {
	return t.Player().String()
}

// ParseTurn accepts "black"/"b" or "white"/"w", case-insensitive.
func ParseTurn(s string) (Turn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return TurnBlack, nil
	case "white", "w":
		return TurnWhite, nil
	default:
		return TurnBlack, fmt.Errorf("reversi: unknown turn %q", s)
	}
}
