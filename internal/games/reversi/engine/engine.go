// Package engine implements the Reversi (Othello) rules: board seeding, legal
// move search, flanking and flipping, turn passing and final scoring.
// It is synchronous, deterministic and has no dependencies beyond the grid
// package; callers serialise access.
package engine

import (
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
)

// StuckRecord notes a turn the active player had to pass.
type StuckRecord struct {
	Turn      Turn
	TurnCount int
}

// Score holds disc counts. Black + White + Empty equals the board's cell count.
type Score struct {
	Black int
	White int
	Empty int
}

// Of returns the count for one colour.
func (s Score) Of(p Player) int {
	switch p {
	case Black:
		return s.Black
	case White:
		return s.White
	default:
		return s.Empty
	}
}

// Move is the outcome of a full turn played through Engine.Play.
type Move struct {
	Player  Player
	Pos     grid.Position
	Flipped []grid.Position
	Passes  []StuckRecord
}

// Engine owns the board and the turn state of one game.
type Engine struct {
	firstTurn Turn
	turn      Turn
	turnCount int
	board     *grid.Grid[Player]
	stuck     []StuckRecord
}

// New creates a game on a board of the given size with the four centre discs placed.
func New(size grid.Size, first Turn) (*Engine, error) {
	board, err := grid.New(size, Empty)
	if err != nil {
		return nil, err
	}
	if size.W < 2 || size.H < 2 {
		return nil, ErrBoardTooSmall
	}

	e := &Engine{
		firstTurn: first,
		board:     board,
	}
	e.Reset()
	return e, nil
}

// SeedPositions returns the four starting discs for a board size.
func SeedPositions(size grid.Size) map[grid.Position]Player {
	x, y := size.W/2-1, size.H/2-1
	return map[grid.Position]Player{
		grid.P(x, y):     Black,
		grid.P(x+1, y):   White,
		grid.P(x, y+1):   White,
		grid.P(x+1, y+1): Black,
	}
}

// Reset clears the board back to the starting position and first turn.
func (e *Engine) Reset() {
	e.board.Fill(Empty)
	for pos, p := range SeedPositions(e.board.Size()) {
		e.board.Set(pos, p)
	}
	e.turn = e.firstTurn
	e.turnCount = 0
	e.stuck = nil
	e.passWhileStuck()
}

// Size returns the board dimensions.
func (e *Engine) Size() grid.Size {
	return e.board.Size()
}

// Turn returns whose move it is.
func (e *Engine) Turn() Turn {
	return e.turn
}

// Current returns the colour to move.
func (e *Engine) Current() Player {
	return e.turn.Player()
}

// FirstTurn returns the side that opened the game.
func (e *Engine) FirstTurn() Turn {
	return e.firstTurn
}

// TurnCount returns how many times the turn has advanced, passes included.
func (e *Engine) TurnCount() int {
	return e.turnCount
}

// Cell returns the occupant at pos, false when pos is off the board.
func (e *Engine) Cell(pos grid.Position) (Player, bool) {
	return e.board.Get(pos)
}

// Board returns a copy of the board.
func (e *Engine) Board() *grid.Grid[Player] {
	return e.board.Clone()
}

// StuckLog returns a copy of the pass log.
func (e *Engine) StuckLog() []StuckRecord {
	out := make([]StuckRecord, len(e.stuck))
	copy(out, e.stuck)
	return out
}

// Clone returns an independent copy of the game.
func (e *Engine) Clone() *Engine {
	return &Engine{
		firstTurn: e.firstTurn,
		turn:      e.turn,
		turnCount: e.turnCount,
		board:     e.board.Clone(),
		stuck:     e.StuckLog(),
	}
}

// flankedRun returns the opposing discs between pos and the next disc of p
// in direction d, or nil if the run is empty or not closed by p.
func (e *Engine) flankedRun(p Player, pos grid.Position, d grid.Direction) []grid.Position {
	opp := p.Opponent()
	var run []grid.Position

	ray := e.board.Ray(pos, d)
	for {
		at, cell, ok := ray.Next()
		if !ok {
			return nil
		}
		switch cell {
		case opp:
			run = append(run, at)
		case p:
			return run
		default:
			return nil
		}
	}
}

// Flips returns every disc a placement by p at pos would turn over.
// An empty result means the placement is illegal.
func (e *Engine) Flips(p Player, pos grid.Position) []grid.Position {
	if p == Empty {
		return nil
	}
	if cell, ok := e.board.Get(pos); !ok || cell != Empty {
		return nil
	}
	var flips []grid.Position
	for _, d := range grid.Directions {
		flips = append(flips, e.flankedRun(p, pos, d)...)
	}
	return flips
}

// IsLegal reports whether p may place at pos, ignoring whose turn it is.
func (e *Engine) IsLegal(p Player, pos grid.Position) bool {
	if p == Empty {
		return false
	}
	if cell, ok := e.board.Get(pos); !ok || cell != Empty {
		return false
	}
	for _, d := range grid.Directions {
		if len(e.flankedRun(p, pos, d)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every empty cell where p would flank at least one run,
// in row-major order.
func (e *Engine) LegalMoves(p Player) []grid.Position {
	size := e.board.Size()
	var moves []grid.Position
	for y := range size.H {
		for x := range size.W {
			pos := grid.P(x, y)
			if e.IsLegal(p, pos) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// HasMoves reports whether p has any legal placement.
func (e *Engine) HasMoves(p Player) bool {
	size := e.board.Size()
	for y := range size.H {
		for x := range size.W {
			if e.IsLegal(p, grid.P(x, y)) {
				return true
			}
		}
	}
	return false
}

// Place puts a disc for p at pos and flips every closed run it flanks.
// It does not advance the turn. On error the board is unchanged.
func (e *Engine) Place(p Player, pos grid.Position) ([]grid.Position, error) {
	reject := func(r Reason) ([]grid.Position, error) {
		return nil, &MoveError{Player: p, Pos: pos, Reason: r}
	}

	if e.IsGameOver() {
		return reject(ReasonGameOver)
	}
	if p == Empty {
		return reject(ReasonNoPlayer)
	}
	if p != e.turn.Player() {
		return reject(ReasonNotYourTurn)
	}
	cell, ok := e.board.Get(pos)
	if !ok {
		return reject(ReasonOutOfRange)
	}
	if cell != Empty {
		return reject(ReasonOccupied)
	}

	var flipped []grid.Position
	for _, d := range grid.Directions {
		run := e.flankedRun(p, pos, d)
		if len(run) == 0 {
			continue
		}
		ray := e.board.Ray(pos, d)
		for range run {
			_, c, _ := ray.NextRef()
			*c = p
		}
		flipped = append(flipped, run...)
	}
	if len(flipped) == 0 {
		return reject(ReasonNoFlank)
	}

	e.board.Set(pos, p)
	return flipped, nil
}

// AdvanceTurn hands the move to the other side. Each side left without a
// legal move passes automatically; the passes recorded are returned.
// Two back-to-back passes end the game.
func (e *Engine) AdvanceTurn() []StuckRecord {
	if e.IsGameOver() {
		return nil
	}

	e.turn = e.turn.Next()
	e.turnCount++
	return e.passWhileStuck()
}

// passWhileStuck records a pass for each side to move that has no legal
// placement, stopping at the first side that can move or at game over.
// A board too small to hold any move ends here on the opening turn.
func (e *Engine) passWhileStuck() []StuckRecord {
	var passes []StuckRecord
	for !e.HasMoves(e.turn.Player()) {
		rec := StuckRecord{Turn: e.turn, TurnCount: e.turnCount}
		e.stuck = append(e.stuck, rec)
		passes = append(passes, rec)
		if e.IsGameOver() {
			break
		}
		e.turn = e.turn.Next()
		e.turnCount++
	}
	return passes
}

// Play places a disc for the side to move and advances the turn.
func (e *Engine) Play(pos grid.Position) (Move, error) {
	p := e.turn.Player()
	flipped, err := e.Place(p, pos)
	if err != nil {
		return Move{}, err
	}
	return Move{
		Player:  p,
		Pos:     pos,
		Flipped: flipped,
		Passes:  e.AdvanceTurn(),
	}, nil
}

// IsGameOver reports whether the last two passes were by alternating sides
// on consecutive turns, meaning neither side can move.
func (e *Engine) IsGameOver() bool {
	n := len(e.stuck)
	if n < 2 {
		return false
	}
	prev, last := e.stuck[n-2], e.stuck[n-1]
	return prev.Turn != last.Turn && last.TurnCount-prev.TurnCount == 1
}

// Scores counts the discs of each colour.
func (e *Engine) Scores() Score {
	var s Score
	for _, c := range e.board.All() {
		switch c {
		case Black:
			s.Black++
		case White:
			s.White++
		default:
			s.Empty++
		}
	}
	return s
}

// Winner returns the colour with more discs, or Empty on a draw.
func (e *Engine) Winner() Player {
	s := e.Scores()
	switch {
	case s.Black > s.White:
		return Black
	case s.White > s.Black:
		return White
	default:
		return Empty
	}
}

// LastPass returns the most recent pass, if any.
func (e *Engine) LastPass() (StuckRecord, bool) {
	if len(e.stuck) == 0 {
		return StuckRecord{}, false
	}
	return e.stuck[len(e.stuck)-1], true
}
