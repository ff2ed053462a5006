package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
)

// newEngine creates a standard game and fails the test on error.
func newEngine(t *testing.T, w, h int, first Turn) *Engine {
	t.Helper()
	e, err := New(grid.Size{W: w, H: h}, first)
	if err != nil {
		t.Fatalf("New(%dx%d) failed: %v", w, h, err)
	}
	return e
}

// blankEngine returns a game with an empty board and the given discs placed.
func blankEngine(t *testing.T, w, h int, turn Turn, discs map[grid.Position]Player) *Engine {
	t.Helper()
	e := newEngine(t, w, h, turn)
	e.board.Fill(Empty)
	for pos, p := range discs {
		if !e.board.Set(pos, p) {
			t.Fatalf("disc %v off the board", pos)
		}
	}
	return e
}

func TestNewRejectsBadSizes(t *testing.T) {
	if _, err := New(grid.Size{W: 0, H: 8}, TurnBlack); !errors.Is(err, grid.ErrZeroSize) {
		t.Errorf("zero width: error = %v, expected ErrZeroSize", err)
	}
	if _, err := New(grid.Size{W: 8, H: 0}, TurnBlack); !errors.Is(err, grid.ErrZeroSize) {
		t.Errorf("zero height: error = %v, expected ErrZeroSize", err)
	}
	if _, err := New(grid.Size{W: 1, H: 8}, TurnBlack); !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("1x8: error = %v, expected ErrBoardTooSmall", err)
	}
}

func TestInitialPosition(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)

	expected := map[grid.Position]Player{
		grid.P(3, 3): Black,
		grid.P(4, 3): White,
		grid.P(3, 4): White,
		grid.P(4, 4): Black,
	}
	for pos, want := range expected {
		if got, _ := e.Cell(pos); got != want {
			t.Errorf("Cell(%v) = %v, expected %v", pos, got, want)
		}
	}

	s := e.Scores()
	if s.Black != 2 || s.White != 2 || s.Empty != 60 {
		t.Errorf("Scores() = %+v, expected 2/2/60", s)
	}
	if e.Turn() != TurnBlack || e.TurnCount() != 0 {
		t.Errorf("turn = %v/%d, expected black/0", e.Turn(), e.TurnCount())
	}
	if e.IsGameOver() {
		t.Error("new game should not be over")
	}
}

func TestInitialLegalMoves(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)

	moves := e.LegalMoves(Black)
	expected := []grid.Position{grid.P(4, 2), grid.P(5, 3), grid.P(2, 4), grid.P(3, 5)}
	if len(moves) != len(expected) {
		t.Fatalf("LegalMoves(Black) = %v, expected %v", moves, expected)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("move %d = %v, expected %v", i, moves[i], expected[i])
		}
	}

	if n := len(e.LegalMoves(White)); n != 4 {
		t.Errorf("LegalMoves(White) has %d entries, expected 4", n)
	}
	if len(e.LegalMoves(Empty)) != 0 {
		t.Error("Empty should never have legal moves")
	}
}

func TestPlaceFlipsOnlyFlankedRun(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)
	before := e.Board()

	flipped, err := e.Place(Black, grid.P(4, 2))
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if len(flipped) != 1 || flipped[0] != grid.P(4, 3) {
		t.Fatalf("flipped = %v, expected [(4,3)]", flipped)
	}

	after := e.Board()
	changed := 0
	for pos, c := range after.All() {
		old, _ := before.Get(pos)
		if old != c {
			changed++
		}
	}
	if changed != 2 {
		t.Errorf("%d cells changed, expected 2 (placed + flipped)", changed)
	}
	if c, _ := e.Cell(grid.P(4, 3)); c != Black {
		t.Errorf("(4,3) = %v, expected black", c)
	}
}

func TestPlaceTwiceFails(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)
	if _, err := e.Place(Black, grid.P(4, 2)); err != nil {
		t.Fatalf("first Place failed: %v", err)
	}
	snapshot := e.Board()

	_, err := e.Place(Black, grid.P(4, 2))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("second Place error = %v, expected ErrIllegalMove", err)
	}
	var me *MoveError
	if !errors.As(err, &me) || me.Reason != ReasonOccupied {
		t.Errorf("expected ReasonOccupied, got %v", err)
	}
	if !grid.Equal(snapshot, e.Board()) {
		t.Error("rejected placement changed the board")
	}
}

func TestPlaceRejections(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		pos    grid.Position
		reason Reason
	}{
		{"no flank", Black, grid.P(0, 0), ReasonNoFlank},
		{"wrong turn", White, grid.P(4, 2), ReasonNotYourTurn},
		{"occupied", Black, grid.P(3, 3), ReasonOccupied},
		{"off board", Black, grid.P(8, 8), ReasonOutOfRange},
		{"negative", Black, grid.P(-1, 2), ReasonOutOfRange},
		{"empty player", Empty, grid.P(4, 2), ReasonNoPlayer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, 8, 8, TurnBlack)
			before := e.Board()

			flipped, err := e.Place(tc.player, tc.pos)
			if flipped != nil {
				t.Errorf("flipped = %v, expected nil", flipped)
			}
			var me *MoveError
			if !errors.As(err, &me) {
				t.Fatalf("error = %v, expected *MoveError", err)
			}
			if me.Reason != tc.reason {
				t.Errorf("reason = %v, expected %v", me.Reason, tc.reason)
			}
			if !errors.Is(err, ErrIllegalMove) {
				t.Error("MoveError should match ErrIllegalMove")
			}
			if !grid.Equal(before, e.Board()) {
				t.Error("board changed after rejection")
			}
		})
	}
}

func TestLegalityRequiresClosingDisc(t *testing.T) {
	// A white run followed by an empty cell is not enough: black needs its own disc at the end.
	e := blankEngine(t, 8, 8, TurnBlack, map[grid.Position]Player{
		grid.P(1, 0): White,
		grid.P(5, 5): Black,
	})

	if e.IsLegal(Black, grid.P(0, 0)) {
		t.Error("(0,0) should not be legal without a closing black disc")
	}
	if len(e.LegalMoves(Black)) != 0 {
		t.Errorf("LegalMoves(Black) = %v, expected none", e.LegalMoves(Black))
	}
}

func TestPlaceFlipsSeveralDirections(t *testing.T) {
	e := blankEngine(t, 5, 5, TurnBlack, map[grid.Position]Player{
		grid.P(0, 2): Black,
		grid.P(1, 2): White,
		grid.P(3, 2): White,
		grid.P(4, 2): White, // right run not closed
		grid.P(2, 0): Black,
		grid.P(2, 1): White,
		grid.P(0, 0): Black,
		grid.P(1, 1): White,
	})

	flipped, err := e.Place(Black, grid.P(2, 2))
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	want := map[grid.Position]bool{grid.P(1, 2): true, grid.P(2, 1): true, grid.P(1, 1): true}
	if len(flipped) != len(want) {
		t.Fatalf("flipped = %v, expected %d discs", flipped, len(want))
	}
	for _, p := range flipped {
		if !want[p] {
			t.Errorf("unexpected flip at %v", p)
		}
	}
	for _, p := range []grid.Position{grid.P(3, 2), grid.P(4, 2)} {
		if c, _ := e.Cell(p); c != White {
			t.Errorf("%v = %v, the open run must stay white", p, c)
		}
	}
}

func TestFlipsPreviewMatchesPlace(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)
	preview := e.Flips(Black, grid.P(5, 3))

	flipped, err := e.Place(Black, grid.P(5, 3))
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if len(preview) != len(flipped) || preview[0] != flipped[0] {
		t.Errorf("Flips() = %v, Place() flipped %v", preview, flipped)
	}
}

func TestPlayAdvancesTurn(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)

	mv, err := e.Play(grid.P(4, 2))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if mv.Player != Black || len(mv.Flipped) != 1 || len(mv.Passes) != 0 {
		t.Errorf("Play() = %+v", mv)
	}
	if e.Turn() != TurnWhite || e.TurnCount() != 1 {
		t.Errorf("after Play turn = %v/%d, expected white/1", e.Turn(), e.TurnCount())
	}

	if _, err := e.Play(grid.P(0, 0)); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("illegal Play error = %v, expected ErrIllegalMove", err)
	}
	if e.Turn() != TurnWhite || e.TurnCount() != 1 {
		t.Error("rejected Play must not advance the turn")
	}
}

func TestAdvanceTurnPassesStuckPlayer(t *testing.T) {
	// White cannot flank the corner disc, black can play at (2,0).
	e := blankEngine(t, 4, 4, TurnBlack, map[grid.Position]Player{
		grid.P(0, 0): Black,
		grid.P(1, 0): White,
	})

	passes := e.AdvanceTurn()

	if len(passes) != 1 || passes[0] != (StuckRecord{Turn: TurnWhite, TurnCount: 1}) {
		t.Fatalf("passes = %+v, expected one white pass at turn 1", passes)
	}
	if e.Turn() != TurnBlack || e.TurnCount() != 2 {
		t.Errorf("turn = %v/%d, expected black/2", e.Turn(), e.TurnCount())
	}
	if e.IsGameOver() {
		t.Error("a single pass must not end the game")
	}
}

func TestDoublePassEndsGame(t *testing.T) {
	e := blankEngine(t, 4, 4, TurnBlack, map[grid.Position]Player{
		grid.P(0, 0): Black,
		grid.P(3, 3): Black,
	})

	passes := e.AdvanceTurn()
	if len(passes) != 2 {
		t.Fatalf("passes = %+v, expected 2", passes)
	}
	if !e.IsGameOver() {
		t.Fatal("two consecutive passes should end the game")
	}

	s := e.Scores()
	if s.Black != 2 || s.White != 0 || s.Empty != 14 {
		t.Errorf("Scores() = %+v, expected 2/0/14", s)
	}
	if e.Winner() != Black {
		t.Errorf("Winner() = %v, expected black", e.Winner())
	}

	if _, err := e.Place(e.Current(), grid.P(1, 1)); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Place after game over error = %v, expected ErrIllegalMove", err)
	}
	if extra := e.AdvanceTurn(); extra != nil {
		t.Errorf("AdvanceTurn after game over recorded %v", extra)
	}
}

func TestSeparatedPassesDoNotEndGame(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)
	e.stuck = []StuckRecord{
		{Turn: TurnWhite, TurnCount: 3},
		{Turn: TurnBlack, TurnCount: 9},
	}
	if e.IsGameOver() {
		t.Error("passes six turns apart must not end the game")
	}

	e.stuck = append(e.stuck, StuckRecord{Turn: TurnBlack, TurnCount: 10})
	if e.IsGameOver() {
		t.Error("two passes by the same side must not end the game")
	}
}

// playGreedy plays the first legal move each turn until the game ends.
func playGreedy(t *testing.T, e *Engine) []grid.Position {
	t.Helper()
	var played []grid.Position
	limit := e.Size().Cells()
	for !e.IsGameOver() {
		if len(played) > limit {
			t.Fatalf("game did not end after %d moves", len(played))
		}
		moves := e.LegalMoves(e.Current())
		if len(moves) == 0 {
			t.Fatalf("side to move %v has no moves but the game is not over", e.Current())
		}
		if _, err := e.Play(moves[0]); err != nil {
			t.Fatalf("Play(%v) failed: %v", moves[0], err)
		}
		s := e.Scores()
		if s.Black+s.White+s.Empty != e.Size().Cells() {
			t.Fatalf("score %+v does not sum to %d", s, e.Size().Cells())
		}
		played = append(played, moves[0])
	}
	return played
}

func TestFullStartingBoardIsGameOver(t *testing.T) {
	for _, first := range []Turn{TurnBlack, TurnWhite} {
		t.Run(first.String(), func(t *testing.T) {
			e := newEngine(t, 2, 2, first)

			if !e.IsGameOver() {
				t.Fatal("a 2x2 board starts full, game should already be over")
			}
			passes := e.StuckLog()
			if len(passes) != 2 || passes[0].Turn != first || passes[1].Turn != first.Next() {
				t.Errorf("StuckLog() = %v, expected passes by %v then %v", passes, first, first.Next())
			}
			if last, ok := e.LastPass(); !ok || last != (StuckRecord{Turn: first.Next(), TurnCount: 1}) {
				t.Errorf("LastPass() = %v, %v", last, ok)
			}

			var me *MoveError
			_, err := e.Play(grid.P(0, 0))
			if !errors.As(err, &me) || me.Reason != ReasonGameOver {
				t.Errorf("Play() error = %v, expected game over", err)
			}
			if s := e.Scores(); s.Black != 2 || s.White != 2 || e.Winner() != Empty {
				t.Errorf("Scores() = %+v, Winner() = %v, expected a 2-2 draw", s, e.Winner())
			}

			e.Reset()
			if !e.IsGameOver() || len(e.StuckLog()) != 2 {
				t.Error("Reset should end a stalled board again")
			}
		})
	}
}

func TestFullGameReplayIsDeterministic(t *testing.T) {
	sizes := []grid.Size{{W: 4, H: 4}, {W: 6, H: 6}, {W: 8, H: 8}, {W: 8, H: 4}}

	for _, size := range sizes {
		t.Run(size.String(), func(t *testing.T) {
			first := newEngine(t, size.W, size.H, TurnBlack)
			moves := playGreedy(t, first)

			replay := newEngine(t, size.W, size.H, TurnBlack)
			for i, pos := range moves {
				if _, err := replay.Play(pos); err != nil {
					t.Fatalf("replay move %d at %v failed: %v", i, pos, err)
				}
			}

			if !grid.Equal(first.Board(), replay.Board()) {
				t.Error("replayed board differs from the original")
			}
			if !replay.IsGameOver() {
				t.Error("replay should also be over")
			}
			if first.Scores() != replay.Scores() {
				t.Errorf("scores differ: %+v vs %+v", first.Scores(), replay.Scores())
			}
		})
	}
}

func TestResetRestoresSeed(t *testing.T) {
	e := newEngine(t, 6, 6, TurnWhite)
	fresh := e.Board()
	playGreedy(t, e)

	e.Reset()
	if !grid.Equal(fresh, e.Board()) {
		t.Error("Reset did not restore the starting board")
	}
	if e.Turn() != TurnWhite || e.TurnCount() != 0 || len(e.StuckLog()) != 0 || e.IsGameOver() {
		t.Error("Reset did not restore the turn state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := newEngine(t, 8, 8, TurnBlack)
	c := e.Clone()

	if _, err := c.Play(grid.P(4, 2)); err != nil {
		t.Fatalf("Play on clone failed: %v", err)
	}
	if e.TurnCount() != 0 {
		t.Error("playing on the clone advanced the original")
	}
	if cell, _ := e.Cell(grid.P(4, 2)); cell != Empty {
		t.Error("playing on the clone changed the original board")
	}
}

func TestParseTurn(t *testing.T) {
	tests := []struct {
		in      string
		want    Turn
		wantErr bool
	}{
		{"black", TurnBlack, false},
		{"White", TurnWhite, false},
		{" b ", TurnBlack, false},
		{"w", TurnWhite, false},
		{"red", TurnBlack, true},
	}
	for _, tc := range tests {
		got, err := ParseTurn(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTurn(%q) error = %v", tc.in, err)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseTurn(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
