package reversi

import (
	"strings"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/engine"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
)

// StateType represents the current game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
// It is comparable with ==.
type Snapshot struct {
	Tick      uint64
	Size      grid.Size
	Turn      string
	TurnCount int
	Cursor    grid.Position
	Board     string // One line per row: B, W or '.'
	Black     int
	White     int
	Passes    int
	Hints     bool
	State     StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := g.eng.Scores()
	return Snapshot{
		Tick:      g.tick,
		Size:      g.eng.Size(),
		Turn:      g.eng.Turn().String(),
		TurnCount: g.eng.TurnCount(),
		Cursor:    g.cursor,
		Board:     boardString(g.eng),
		Black:     s.Black,
		White:     s.White,
		Passes:    len(g.eng.StuckLog()),
		Hints:     g.hints,
		State:     state,
	}
}

// boardString renders the board as text rows.
func boardString(e *engine.Engine) string {
	size := e.Size()
	var sb strings.Builder
	sb.Grow(size.Cells() + size.H)
	for y := range size.H {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range size.W {
			cell, _ := e.Cell(grid.P(x, y))
			switch cell {
			case engine.Black:
				sb.WriteByte('B')
			case engine.White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
