package reversi

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/engine"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/grid"
)

const (
	hudHeight   = 4 // Title, scores, status, column labels
	footerRows  = 2
	rowLabelW   = 3
	discBlack   = '●'
	discWhite   = '○'
	emptyCell   = '·'
	hintMarker  = '+'
	cursorLeft  = '['
	cursorRight = ']'
)

// checkScreenSize picks the cell width and flags screens that cannot fit the board.
func (g *Game) checkScreenSize() {
	size := g.eng.Size()
	minH := hudHeight + size.H + 2 + footerRows

	g.cellW = 3
	if boardWidth(size, 3) > g.screenW {
		g.cellW = 2
	}
	g.tooSmall = boardWidth(size, g.cellW) > g.screenW || minH > g.screenH
}

// boardWidth is the total width of row labels plus the framed board.
func boardWidth(size grid.Size, cellW int) int {
	return rowLabelW + size.W*cellW + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW != dst.Width() || g.screenH != dst.Height() {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.checkScreenSize()
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.eng.Size()
	frame := core.NewRect(0, hudHeight, size.W*g.cellW+2, size.H+2)
	frame.X = (g.screenW-boardWidth(size, g.cellW))/2 + rowLabelW

	g.renderHUD(dst)
	g.renderBoard(dst, frame)
	dst.DrawTextCenteredColor(frame.Bottom()+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, disc counts, turn and status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, "R E V E R S I", core.ColorBrightWhite)

	s := g.eng.Scores()
	black := fmt.Sprintf("%c Black %d", discBlack, s.Of(engine.Black))
	white := fmt.Sprintf("%c White %d", discWhite, s.Of(engine.White))
	turn := ""
	if !g.eng.IsGameOver() {
		turn = fmt.Sprintf("   Turn: %s", titleCase(g.eng.Current()))
	}
	line := black + "   " + white + turn

	x := (g.screenW - utf8.RuneCountInString(line)) / 2
	dst.DrawTextColor(x, 1, black, g.palette.Black)
	x += utf8.RuneCountInString(black) + 3
	dst.DrawTextColor(x, 1, white, g.palette.White)
	x += utf8.RuneCountInString(white)
	dst.DrawText(x, 1, turn)

	dst.DrawTextCenteredColor(2, g.status, core.ColorYellow)
}

// renderBoard draws labels, frame, discs, hints and the cursor.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	size := g.eng.Size()
	dst.DrawBoxColor(frame, g.palette.Board)

	legal := make(map[grid.Position]bool)
	if g.hints && !g.eng.IsGameOver() {
		for _, p := range g.eng.LegalMoves(g.eng.Current()) {
			legal[p] = true
		}
	}

	centre := g.cellW / 2
	for x := range size.W {
		dst.DrawTextColor(frame.X+1+x*g.cellW+centre, frame.Y-1, string(rune('a'+x)), core.ColorGray)
	}

	for y := range size.H {
		dst.DrawTextColor(frame.X-rowLabelW, frame.Y+1+y, fmt.Sprintf("%2d", y+1), core.ColorGray)

		for x := range size.W {
			pos := grid.P(x, y)
			cx := frame.X + 1 + x*g.cellW
			cy := frame.Y + 1 + y

			r, c := g.cellGlyph(pos, legal[pos])
			dst.SetColor(cx+centre, cy, r, c)

			if pos == g.cursor && !g.eng.IsGameOver() {
				dst.SetColor(cx, cy, cursorLeft, g.palette.Cursor)
				if g.cellW >= 3 {
					dst.SetColor(cx+2, cy, cursorRight, g.palette.Cursor)
				}
			}
		}
	}
}

// cellGlyph picks the rune and color for one square.
func (g *Game) cellGlyph(pos grid.Position, legal bool) (rune, core.Color) {
	cell, _ := g.eng.Cell(pos)
	switch cell {
	case engine.Black:
		return discBlack, g.highlight(pos, g.palette.Black)
	case engine.White:
		return discWhite, g.highlight(pos, g.palette.White)
	}
	if legal {
		return hintMarker, g.palette.Hint
	}
	return emptyCell, g.palette.Board
}

// highlight marks the last placed disc.
func (g *Game) highlight(pos grid.Position, c core.Color) core.Color {
	if g.hasLast && pos == g.lastMove {
		return g.palette.Cursor
	}
	return c
}

// renderOverlays draws the pause and result boxes.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	if g.paused {
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
		return
	}

	if g.eng.IsGameOver() {
		s := g.eng.Scores()
		headline := "DRAW"
		switch g.eng.Winner() {
		case engine.Black:
			headline = "BLACK WINS"
		case engine.White:
			headline = "WHITE WINS"
		}
		scores := fmt.Sprintf("Black %d  White %d", s.Black, s.White)
		g.drawOverlay(dst, frame, headline, scores, "Press R to restart")
	}
}

// drawOverlay draws a boxed text overlay centred on the board frame.
func (g *Game) drawOverlay(dst *core.Screen, frame core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.CenteredRect(frame.W, frame.H, maxLen+4, len(lines)+2)
	box.X += frame.X
	box.Y += frame.Y

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	text := box.Inset(1)
	for i, line := range lines {
		x := text.X + (text.W-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, text.Y+i, line, core.ColorBrightWhite)
	}
}
