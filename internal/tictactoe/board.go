// Package tictactoe implements the two-player Tic-Tac-Toe game model:
// the board, win evaluation, move history and time travel.
// It has no UI dependencies; the platform layer renders it.
package tictactoe

import "fmt"

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

const (
	// BoardSize is the board dimension.
	BoardSize = 3

	// CellCount is the number of squares on the board.
	CellCount = BoardSize * BoardSize
)

// Board holds the nine cells in row-major order:
// index 0 is row 0/col 0, index 8 is row 2/col 2.
type Board [CellCount]Cell

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of non-empty cells.
func (b Board) Count() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// WinLines lists every winning triple. Order matters: rows, then columns,
// then diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// OutcomeKind classifies a board.
type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating a board.
type Outcome struct {
	Kind   OutcomeKind
	Winner Cell   // X or O when Kind == Win
	Line   [3]int // Winning triple when Kind == Win
}

// Terminal returns true for a win or a draw.
func (o Outcome) Terminal() bool {
	return o.Kind != InProgress
}

// String returns "X", "O", "draw" or "in progress".
func (o Outcome) String() string {
	if o.Kind == Win {
		return o.Winner.String()
	}
	return o.Kind.String()
}

// Evaluate returns the outcome of a board.
// The first line in WinLines whose three cells hold the same mark wins.
func Evaluate(b Board) Outcome {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return Outcome{Kind: Win, Winner: a, Line: line}
		}
	}

	if b.Full() {
		return Outcome{Kind: Draw}
	}
	return Outcome{Kind: InProgress}
}

// Coordinate is a 1-indexed (column, row) board position as shown to players.
type Coordinate struct {
	Col int
	Row int
}

// String returns "col, row".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d, %d", c.Col, c.Row)
}

// CoordinateOf maps a cell index to its displayed coordinate.
// Index 4 (centre) is (2, 2) and index 8 is (3, 3).
func CoordinateOf(index int) Coordinate {
	return Coordinate{
		Col: index%BoardSize + 1,
		Row: index/BoardSize + 1,
	}
}

// IndexOf is the inverse of CoordinateOf.
func IndexOf(c Coordinate) int {
	return (c.Row-1)*BoardSize + (c.Col - 1)
}
