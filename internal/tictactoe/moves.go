package tictactoe

import "fmt"

// Move describes one history entry for the move list.
type Move struct {
	Step    int
	Label   string // "Go to game start" or "Go to move #n"
	Summary string // Empty for game start
	Mark    Cell   // Empty for game start
	Coord   Coordinate
	Current bool // Entry is the active step
}

// Describe builds the move-list row for the entry at step.
// The acting mark comes from the entry's stored NextIsX flag.
func Describe(step int, e HistoryEntry) Move {
	if step == 0 || e.LastMove == NoMove {
		return Move{Step: step, Label: "Go to game start"}
	}

	coord := CoordinateOf(e.LastMove)
	mark := e.Mark()
	return Move{
		Step:    step,
		Label:   fmt.Sprintf("Go to move #%d", step),
		Summary: fmt.Sprintf("%s played on coordinate %s", mark, coord),
		Mark:    mark,
		Coord:   coord,
	}
}

// Moves returns one row per history entry in play order.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.history))
	for i, e := range g.history {
		moves[i] = Describe(i, e)
		moves[i].Current = i == g.step
	}
	return moves
}
