// Package reversi adapts the reversi engine to the platform's game contract:
// a cursor-driven, two-player hot-seat game rendered into a core.Screen.
package reversi

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/engine"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// Game IDs.
const (
	IDStandard = "reversi"
	IDMini     = "reversi_mini"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives debug events; silent until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.New(io.Discard)
		return
	}
	logger = l.WithPrefix("reversi")
}

// Game implements a two-player reversi match on one keyboard.
type Game struct {
	id    string
	title string
	fixed grid.Size // Zero means the board size comes from config

	cfg     config.ReversiConfig
	palette config.Palette
	eng     *engine.Engine

	cursor   grid.Position
	hints    bool
	paused   bool
	tick     uint64
	status   string
	lastMove grid.Position
	hasLast  bool
	flipped  []grid.Position

	// Screen dimensions
	screenW  int
	screenH  int
	cellW    int
	tooSmall bool
}

// New creates a game whose board size is read from config.
func New() *Game {
	return &Game{id: IDStandard, title: "Reversi"}
}

// NewMini creates a game on a fixed 6x6 board.
func NewMini() *Game {
	return &Game{id: IDMini, title: "Reversi 6x6", fixed: grid.Size{W: 6, H: 6}}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDMini, func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config and starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	palette, err := g.cfg.Theme.Palette()
	if err != nil {
		palette, _ = config.DefaultReversiConfig().Theme.Palette()
	}
	g.palette = palette

	size := g.fixed
	if size == (grid.Size{}) {
		size = grid.Size{W: g.cfg.Board.Width, H: g.cfg.Board.Height}
	}
	first, err := engine.ParseTurn(g.cfg.Rules.FirstTurn)
	if err != nil {
		first = engine.TurnBlack
	}

	eng, err := engine.New(size, first)
	if err != nil {
		logger.Warn("cannot create board, using 8x8", "size", size, "error", err)
		eng, _ = engine.New(grid.Size{W: 8, H: 8}, first)
	}
	g.eng = eng

	g.hints = g.cfg.Rules.Hints
	g.paused = false
	g.tick = 0
	g.hasLast = false
	g.flipped = nil
	g.status = fmt.Sprintf("%s to move", titleCase(g.eng.Current()))
	g.cursor = g.startCursor()

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	logger.Debug("new match", "game", g.id, "size", g.eng.Size(), "first", first)
}

// loadConfig reads the reversi config, falling back to defaults on error.
func (g *Game) loadConfig() config.ReversiConfig {
	cfg, err := config.LoadReversi(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		return config.DefaultReversiConfig()
	}
	return cfg
}

// startCursor places the cursor on the first legal move, or the board centre.
func (g *Game) startCursor() grid.Position {
	if moves := g.eng.LegalMoves(g.eng.Current()); len(moves) > 0 {
		return moves[0]
	}
	size := g.eng.Size()
	return grid.P(size.W/2, size.H/2)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.eng.IsGameOver()

	// Handle pause
	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHint) {
		g.hints = !g.hints
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.play()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	moves := []struct {
		action core.Action
		dir    grid.Direction
	}{
		{core.ActionUp, grid.Up},
		{core.ActionDown, grid.Down},
		{core.ActionLeft, grid.Left},
		{core.ActionRight, grid.Right},
	}

	size := g.eng.Size()
	for _, m := range moves {
		if !in.Has(m.action) {
			continue
		}
		next := g.cursor.Step(m.dir, 1)
		g.cursor = grid.P(
			core.Clamp(next.X, 0, size.W-1),
			core.Clamp(next.Y, 0, size.H-1),
		)
	}
}

// play places a disc for the side to move at the cursor.
func (g *Game) play() {
	pos := g.cursor
	mv, err := g.eng.Play(pos)
	if err != nil {
		g.status = rejection(pos, err)
		logger.Debug("move rejected", "pos", Label(pos), "error", err)
		return
	}

	g.lastMove = pos
	g.hasLast = true
	g.flipped = mv.Flipped
	logger.Debug("move", "player", mv.Player, "pos", Label(pos), "flipped", len(mv.Flipped))

	for _, p := range mv.Passes {
		logger.Debug("pass", "player", p.Turn, "turn", p.TurnCount)
	}

	if g.eng.IsGameOver() {
		s := g.eng.Scores()
		g.status = "Game over"
		logger.Info("game over", "game", g.id, "black", s.Black, "white", s.White, "winner", g.eng.Winner())
		return
	}

	g.status = fmt.Sprintf("%s played %s, flipping %d", titleCase(mv.Player), Label(pos), len(mv.Flipped))
	if last, ok := g.eng.LastPass(); ok && len(mv.Passes) > 0 {
		g.status = fmt.Sprintf("%s has no legal move and passes", titleCase(last.Turn.Player()))
	}
}

// rejection turns a placement error into a status line.
func rejection(pos grid.Position, err error) string {
	var me *engine.MoveError
	if errors.As(err, &me) {
		return fmt.Sprintf("Cannot play %s: %s", Label(pos), me.Reason)
	}
	return fmt.Sprintf("Cannot play %s: %v", Label(pos), err)
}

// State returns the platform view of the game. Score is the winner's disc
// margin once the match is over.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.eng == nil {
		return st
	}
	if g.eng.IsGameOver() {
		st.GameOver = true
		s := g.eng.Scores()
		st.Score = core.Abs(s.Black - s.White)
	}
	return st
}

// Outcome returns the final result once the match is over.
func (g *Game) Outcome() (core.MatchResult, bool) {
	if g.eng == nil || !g.eng.IsGameOver() {
		return core.MatchResult{}, false
	}
	s := g.eng.Scores()
	size := g.eng.Size()
	return core.MatchResult{
		BoardW: size.W,
		BoardH: size.H,
		Black:  s.Black,
		White:  s.White,
		Winner: winnerName(g.eng.Winner()),
		Turns:  g.eng.TurnCount(),
		Passes: len(g.eng.StuckLog()),
	}, true
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move  Enter: Place  ?: Hints  P: Pause  Q: Quit"
}

// Label names a square the way reversi players do: column letter, then row
// number from 1, e.g. "d3".
func Label(p grid.Position) string {
	if p.X < 0 || p.X >= 26 {
		return p.String()
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.X), p.Y+1)
}

func winnerName(p engine.Player) string {
	if p == engine.Empty {
		return "draw"
	}
	return p.String()
}

func titleCase(p engine.Player) string {
	switch p {
	case engine.Black:
		return "Black"
	case engine.White:
		return "White"
	default:
		return "Nobody"
	}
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Reporter = (*Game)(nil)
)
