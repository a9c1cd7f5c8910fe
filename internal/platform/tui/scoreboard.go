package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

const (
	resultsMinHeight = 3
	resultsChrome    = 8 // Title, tally, borders and help
)

// ResultsView shows the results ledger inside a game session.
type ResultsView struct {
	table       table.Model
	tally       storage.Tally
	results     []storage.Result
	unavailable bool
	width       int
	height      int
}

// NewResultsView creates an empty results view.
func NewResultsView(width, height int) ResultsView {
	v := ResultsView{width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a table sized to the current window.
func (v ResultsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Session", Width: 18},
		{Title: "Player", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Moves", Width: 5},
	}

	// Give spare width to the player column
	if spare := v.width - 4 - 64; spare > 0 {
		columns[2].Width += min(spare, 10)
	}

	width := 0
	for _, c := range columns {
		width += c.Width + 2 // Cell padding
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithWidth(width),
		table.WithHeight(max(v.height-resultsChrome, resultsMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Resize rebuilds the table for a new window size.
func (v *ResultsView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateRows()
}

// SetResults replaces the shown tally and results.
func (v *ResultsView) SetResults(tally storage.Tally, results []storage.Result) {
	v.unavailable = false
	v.tally = tally
	v.results = results
	v.updateRows()
}

// SetUnavailable marks the ledger as disabled.
func (v *ResultsView) SetUnavailable() {
	v.unavailable = true
	v.tally = storage.Tally{}
	v.results = nil
	v.updateRows()
}

func (v *ResultsView) updateRows() {
	rows := make([]table.Row, len(v.results))
	for i, r := range v.results {
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Session,
			r.Player,
			resultLabel(r.Outcome),
			fmt.Sprintf("%d", r.Moves),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// resultLabel renders a stored outcome for display.
func resultLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeX:
		return "X won"
	case storage.OutcomeO:
		return "O won"
	case storage.OutcomeDraw:
		return "Draw"
	}
	return outcome
}

// Update scrolls the table.
func (v ResultsView) Update(msg tea.Msg) (ResultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the tally and the table.
func (v ResultsView) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("RESULTS"))
	b.WriteString("\n\n")

	if v.unavailable {
		b.WriteString(emptyStyle.Render("Results are disabled.\nSet storage.enabled in the config to keep a tally."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("X wins: %d   O wins: %d   Draws: %d   Games: %d",
		v.tally.XWins, v.tally.OWins, v.tally.Draws, v.tally.Total()))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(v.results) == 0 {
		b.WriteString(tableStyle.Render(emptyStyle.Render("No games recorded yet.\nFinish a game to start the tally!")))
	} else {
		b.WriteString(tableStyle.Render(v.table.View()))
	}
	b.WriteString("\n")

	return b.String()
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(1, 2)
