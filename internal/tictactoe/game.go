package tictactoe

import "fmt"

// NoMove marks the initial history entry, which was not reached by a move.
const NoMove = -1

// HistoryEntry is the board after one move.
type HistoryEntry struct {
	Board    Board
	LastMove int // Cell played to reach this entry, NoMove for the start

	// NextIsX is the negation of the previous entry's flag. It starts false
	// at game start, so for entries reached by play it is true when X made
	// the move. Move summaries label the acting mark with it.
	NextIsX bool
}

// Mark returns the mark credited with this entry's move.
func (e HistoryEntry) Mark() Cell {
	if e.NextIsX {
		return X
	}
	return O
}

// Game holds the move history and whose turn is next.
// A Game belongs to one UI session and is not safe for concurrent use.
type Game struct {
	history []HistoryEntry
	step    int
	xIsNext bool
}

// New creates a game at its start: one empty entry, X to move.
func New() *Game {
	return &Game{
		history: []HistoryEntry{{LastMove: NoMove}},
		xIsNext: true,
	}
}

// PlayMove places the next mark on cell and makes the result the active step.
// Moves on an occupied cell or on an already won board are ignored.
// Any history past the active step is discarded first.
// Returns true if the move was accepted.
// Panics if cell is outside 0..8.
func (g *Game) PlayMove(cell int) bool {
	if cell < 0 || cell >= CellCount {
		panic(fmt.Sprintf("tictactoe: cell index %d out of range [0, %d)", cell, CellCount))
	}

	active := g.history[g.step]
	if Evaluate(active.Board).Kind == Win || active.Board[cell] != Empty {
		return false
	}

	next := active.Board
	if g.xIsNext {
		next[cell] = X
	} else {
		next[cell] = O
	}

	g.history = append(g.history[:g.step+1], HistoryEntry{
		Board:    next,
		LastMove: cell,
		NextIsX:  !active.NextIsX,
	})
	g.step = len(g.history) - 1
	g.xIsNext = !g.xIsNext

	return true
}

// JumpTo makes step the active snapshot without changing the history.
// X is to move on even steps.
// Panics if step is not an index into the history.
func (g *Game) JumpTo(step int) {
	if step < 0 || step >= len(g.history) {
		panic(fmt.Sprintf("tictactoe: step %d out of range [0, %d)", step, len(g.history)))
	}

	g.step = step
	g.xIsNext = step%2 == 0
}

// Step returns the index of the active history entry.
func (g *Game) Step() int {
	return g.step
}

// XIsNext returns true if X places the next accepted mark.
func (g *Game) XIsNext() bool {
	return g.xIsNext
}

// NextMark returns the mark that the next accepted move places.
func (g *Game) NextMark() Cell {
	if g.xIsNext {
		return X
	}
	return O
}

// Len returns the number of history entries, including game start.
func (g *Game) Len() int {
	return len(g.history)
}

// Current returns the active board.
func (g *Game) Current() Board {
	return g.history[g.step].Board
}

// Entry returns the history entry at step.
func (g *Game) Entry(step int) HistoryEntry {
	return g.history[step]
}

// History returns a copy of the history.
func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history...)
}

// Outcome evaluates the active board.
func (g *Game) Outcome() Outcome {
	return Evaluate(g.Current())
}

// Status returns the status line for the active board.
func (g *Game) Status() string {
	outcome := g.Outcome()
	switch outcome.Kind {
	case Win:
		return "Winner: " + outcome.Winner.String()
	case InProgress:
		return "Next player: " + g.NextMark().String()
	default:
		return "Result: Draw!"
	}
}
