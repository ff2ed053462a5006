package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
)

// Errors returned by engine operations.
var (
	// ErrIllegalMove is matched by every rejected placement.
	ErrIllegalMove = errors.New("reversi: illegal move")

	// ErrBoardTooSmall is returned when a dimension cannot hold the starting discs.
	ErrBoardTooSmall = errors.New("reversi: board must be at least 2x2")
)

// Reason explains why a placement was rejected.
type Reason uint8

const (
	ReasonGameOver Reason = iota
	ReasonNotYourTurn
	ReasonOutOfRange
	ReasonOccupied
	ReasonNoFlank
	ReasonNoPlayer
)

func (r Reason) String() string {
	switch r {
	case ReasonGameOver:
		return "game is over"
	case ReasonNotYourTurn:
		return "not this player's turn"
	case ReasonOutOfRange:
		return "position is off the board"
	case ReasonOccupied:
		return "cell is occupied"
	case ReasonNoFlank:
		return "no discs would be flipped"
	case ReasonNoPlayer:
		return "empty is not a player"
	default:
		return "unknown"
	}
}

// MoveError describes a rejected placement. The board is unchanged.
type MoveError struct {
	Player Player
	Pos    grid.Position
	Reason Reason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("reversi: illegal move by %s at %v: %s", e.Player, e.Pos, e.Reason)
}

// Is makes errors.Is(err, ErrIllegalMove) true for any MoveError.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
