package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

var testPalette = config.Palette{
	X:      core.ColorBrightRed,
	O:      core.ColorBrightBlue,
	Win:    core.ColorBrightGreen,
	Cursor: core.ColorYellow,
	Grid:   core.ColorGray,
}

func TestCellForKey(t *testing.T) {
	tests := []struct {
		key  string
		cell int
		ok   bool
	}{
		{"1", 0, true},
		{"5", 4, true},
		{"9", 8, true},
		{"0", 0, false},
		{"a", 0, false},
		{"enter", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		cell, ok := cellForKey(tt.key)
		if ok != tt.ok || (ok && cell != tt.cell) {
			t.Errorf("cellForKey(%q) = %d, %v; expected %d, %v", tt.key, cell, ok, tt.cell, tt.ok)
		}
	}
}

func TestCellAtMatchesCellRect(t *testing.T) {
	for i := 0; i < tictactoe.CellCount; i++ {
		r := cellRect(i)
		for x := r.X; x < r.Right(); x++ {
			got, ok := cellAt(x, r.Y)
			if !ok || got != i {
				t.Errorf("cellAt(%d, %d) = %d, %v; expected %d", x, r.Y, got, ok, i)
			}
		}
	}
}

func TestCellAtMissesGrid(t *testing.T) {
	misses := [][2]int{
		{0, 0},           // Corner
		{4, 1},           // Vertical line
		{1, 2},           // Horizontal line
		{-1, 1},          // Left of board
		{boardW, boardH}, // Past the board
		{boardW + 5, 1},  // Info panel
	}
	for _, p := range misses {
		if cell, ok := cellAt(p[0], p[1]); ok {
			t.Errorf("cellAt(%d, %d) = %d, expected a miss", p[0], p[1], cell)
		}
	}
}

func TestDrawBoardMarks(t *testing.T) {
	var b tictactoe.Board
	b[0] = tictactoe.X
	b[4] = tictactoe.O

	s := DrawBoard(BoardView{Board: b, Cursor: -1, Palette: testPalette})

	if s.Width() != boardW || s.Height() != boardH {
		t.Fatalf("Board screen is %dx%d, expected %dx%d", s.Width(), s.Height(), boardW, boardH)
	}

	x := s.GetCell(cellRect(0).X+1, cellRect(0).Y)
	if x.Rune != 'X' || x.Color != testPalette.X {
		t.Errorf("Cell 0 = %q/%v, expected X in X color", x.Rune, x.Color)
	}
	o := s.GetCell(cellRect(4).X+1, cellRect(4).Y)
	if o.Rune != 'O' || o.Color != testPalette.O {
		t.Errorf("Cell 4 = %q/%v, expected O in O color", o.Rune, o.Color)
	}
	if empty := s.GetCell(cellRect(8).X+1, cellRect(8).Y); empty.Rune != ' ' {
		t.Errorf("Cell 8 without hints = %q, expected blank", empty.Rune)
	}

	if corner := s.GetCell(0, 0); corner.Rune != '┌' || corner.Color != testPalette.Grid {
		t.Errorf("Top-left corner = %q, expected ┌ in grid color", corner.Rune)
	}
	if cross := s.GetCell(cellWidth, cellHeight); cross.Rune != '┼' {
		t.Errorf("Inner crossing = %q, expected ┼", cross.Rune)
	}
}

func TestDrawBoardHintsAndCursor(t *testing.T) {
	var b tictactoe.Board
	b[0] = tictactoe.X

	s := DrawBoard(BoardView{Board: b, Cursor: 2, Hints: true, Palette: testPalette})

	if hint := s.GetCell(cellRect(1).X+1, cellRect(1).Y); hint.Rune != '2' {
		t.Errorf("Hint in cell 1 = %q, expected '2'", hint.Rune)
	}
	if mark := s.GetCell(cellRect(0).X+1, cellRect(0).Y); mark.Rune != 'X' {
		t.Errorf("Hint should not replace a mark, got %q", mark.Rune)
	}

	r := cellRect(2)
	left := s.GetCell(r.X, r.Y)
	right := s.GetCell(r.Right()-1, r.Y)
	if left.Rune != '[' || right.Rune != ']' {
		t.Errorf("Cursor brackets = %q %q, expected [ ]", left.Rune, right.Rune)
	}
	if left.Color != testPalette.Cursor {
		t.Errorf("Cursor color = %v, expected %v", left.Color, testPalette.Cursor)
	}
}

func TestDrawBoardHighlightsWinningLine(t *testing.T) {
	var b tictactoe.Board
	for _, i := range []int{2, 4, 6} {
		b[i] = tictactoe.O
	}
	b[0] = tictactoe.X
	b[1] = tictactoe.X

	s := DrawBoard(BoardView{Board: b, Outcome: tictactoe.Evaluate(b), Cursor: -1, Palette: testPalette})

	for _, i := range []int{2, 4, 6} {
		if c := s.GetCell(cellRect(i).X+1, cellRect(i).Y); c.Color != testPalette.Win {
			t.Errorf("Winning cell %d color = %v, expected win color", i, c.Color)
		}
	}
	if c := s.GetCell(cellRect(0).X+1, cellRect(0).Y); c.Color != testPalette.X {
		t.Errorf("Non-winning cell color = %v, expected X color", c.Color)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.ColorBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("First line %q is missing text", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("Second line %q is missing text", lines[1])
	}
}

func TestOrderedMoves(t *testing.T) {
	g := tictactoe.New()
	g.PlayMove(0)
	g.PlayMove(4)
	moves := g.Moves()

	asc := orderedMoves(moves, false)
	desc := orderedMoves(moves, true)

	if asc[0].Step != 0 || asc[2].Step != 2 {
		t.Errorf("Ascending order = %d..%d, expected 0..2", asc[0].Step, asc[2].Step)
	}
	if desc[0].Step != 2 || desc[2].Step != 0 {
		t.Errorf("Descending order = %d..%d, expected 2..0", desc[0].Step, desc[2].Step)
	}
	if moves[0].Step != 0 {
		t.Error("orderedMoves should not modify its input")
	}
}

func TestRenderHistory(t *testing.T) {
	g := tictactoe.New()
	g.PlayMove(0)
	g.PlayMove(4)
	g.JumpTo(1)

	lines := renderHistory(HistoryView{Moves: g.Moves(), Selected: -1})
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Go to game start") {
		t.Errorf("First line %q should be the game start", lines[0])
	}
	if !strings.Contains(lines[1], "> ") || !strings.Contains(lines[1], "X played on coordinate 1, 1") {
		t.Errorf("Active line %q should be marked and summarized", lines[1])
	}
	if strings.Contains(lines[2], "> ") {
		t.Errorf("Inactive line %q should not be marked", lines[2])
	}
}

func TestReverseLabel(t *testing.T) {
	if got := reverseLabel(false); !strings.Contains(got, "Reverse Steps") || !strings.Contains(got, "oldest first") {
		t.Errorf("reverseLabel(false) = %q", got)
	}
	if got := reverseLabel(true); !strings.Contains(got, "newest first") {
		t.Errorf("reverseLabel(true) = %q", got)
	}
}
