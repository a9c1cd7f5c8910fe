package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Board geometry on the screen buffer.
const (
	cellWidth  = 4 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border

	boardW = tictactoe.BoardSize*cellWidth + 1
	boardH = tictactoe.BoardSize*cellHeight + 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardView is everything the board drawing needs.
type BoardView struct {
	Board   tictactoe.Board
	Outcome tictactoe.Outcome
	Cursor  int  // Highlighted cell, -1 for none
	Hints   bool // Show digit keys in empty cells
	Palette config.Palette
}

// DrawBoard draws the grid, marks and cursor into a fresh screen.
func DrawBoard(v BoardView) *core.Screen {
	s := core.NewScreen(boardW, boardH)
	grid := v.Palette.Grid

	for gy := 0; gy < tictactoe.BoardSize+1; gy++ {
		for gx := 0; gx < tictactoe.BoardSize+1; gx++ {
			px := gx * cellWidth
			py := gy * cellHeight

			var corner rune
			switch {
			case gy == 0 && gx == 0:
				corner = '┌'
			case gy == 0 && gx == tictactoe.BoardSize:
				corner = '┐'
			case gy == tictactoe.BoardSize && gx == 0:
				corner = '└'
			case gy == tictactoe.BoardSize && gx == tictactoe.BoardSize:
				corner = '┘'
			case gy == 0:
				corner = '┬'
			case gy == tictactoe.BoardSize:
				corner = '┴'
			case gx == 0:
				corner = '├'
			case gx == tictactoe.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			s.SetColored(px, py, corner, grid)

			if gx < tictactoe.BoardSize {
				s.DrawHLine(px+1, py, cellWidth-1, '─', grid)
			}
			if gy < tictactoe.BoardSize {
				s.DrawVLine(px, py+1, cellHeight-1, '│', grid)
			}
		}
	}

	winning := make(map[int]bool, 3)
	if v.Outcome.Kind == tictactoe.Win {
		for _, i := range v.Outcome.Line {
			winning[i] = true
		}
	}

	for i, c := range v.Board {
		r := cellRect(i)

		switch {
		case c != tictactoe.Empty:
			color := v.Palette.X
			if c == tictactoe.O {
				color = v.Palette.O
			}
			if winning[i] {
				color = v.Palette.Win
			}
			s.DrawText(r.X+1, r.Y, c.String(), color)
		case v.Hints:
			s.SetColored(r.X+1, r.Y, rune('1'+i), grid)
		}

		if i == v.Cursor {
			s.SetColored(r.X, r.Y, '[', v.Palette.Cursor)
			s.SetColored(r.Right()-1, r.Y, ']', v.Palette.Cursor)
		}
	}

	return s
}

// cellRect returns the interior of cell i on the board screen.
func cellRect(i int) core.Rect {
	col := i % tictactoe.BoardSize
	row := i / tictactoe.BoardSize
	return core.NewRect(col*cellWidth+1, row*cellHeight+1, cellWidth-1, 1)
}

// cellAt hit-tests a point relative to the board's top-left corner.
func cellAt(x, y int) (int, bool) {
	for i := 0; i < tictactoe.CellCount; i++ {
		if cellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// orderedMoves returns the move list in display order.
func orderedMoves(moves []tictactoe.Move, reversed bool) []tictactoe.Move {
	out := make([]tictactoe.Move, len(moves))
	for i, m := range moves {
		if reversed {
			out[len(moves)-1-i] = m
		} else {
			out[i] = m
		}
	}
	return out
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle  = lipgloss.NewStyle().Underline(true)
	currentStyle  = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// HistoryView is everything the move list drawing needs.
type HistoryView struct {
	Moves    []tictactoe.Move // Display order
	Selected int              // Row under the history cursor, -1 when the board has focus
	Reversed bool
}

// renderHistory renders one line per move, the active step in bold.
func renderHistory(v HistoryView) []string {
	labelW := 0
	for _, m := range v.Moves {
		labelW = max(labelW, len(m.Label))
	}

	lines := make([]string, 0, len(v.Moves))
	for i, m := range v.Moves {
		marker := "  "
		if m.Current {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-*s  %s", marker, labelW, m.Label, m.Summary)
		line = strings.TrimRight(line, " ")

		switch {
		case i == v.Selected:
			line = selectedStyle.Render(line)
		case m.Current:
			line = currentStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

// reverseLabel describes the toggle and the current order.
func reverseLabel(reversed bool) string {
	if reversed {
		return "[r] Reverse Steps (newest first)"
	}
	return "[r] Reverse Steps (oldest first)"
}
