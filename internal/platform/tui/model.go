package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Layout of the game view. The board starts below the title and a blank line,
// indented by boardLeft; the info panel starts infoGap columns after it.
const (
	boardLeft    = 2
	boardTop     = 2
	infoGap      = 3
	infoLeft     = boardLeft + boardW + infoGap
	historyTop   = boardTop + 3 // status, blank line, "Past Moves:"
	centerCell   = 4
	noSelection  = -1
	recentLimit  = 20
	defaultTitle = "Tic-Tac-Toe"
)

// Focus is the part of the view that receives navigation keys.
type Focus int

const (
	FocusBoard Focus = iota
	FocusHistory
)

// ResultStore is the part of the results ledger a session uses.
// *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
	RecentResults(limit int) ([]storage.Result, error)
	Tally() (storage.Tally, error)
}

var _ ResultStore = (*storage.Store)(nil)

// Options configures a game session.
type Options struct {
	Store   ResultStore // May be nil: results are not recorded
	Logger  *log.Logger // May be nil: logs are discarded
	Palette config.Palette
	Display config.DisplayConfig
	Session string // Session name recorded with results
	Config  core.RuntimeConfig
}

// Model is the Bubble Tea model for one Tic-Tac-Toe session.
// The game owns the rules; the model owns what is purely presentation:
// cursor, focus and the order of the move list.
type Model struct {
	game    *tictactoe.Game
	store   ResultStore
	logger  *log.Logger
	palette config.Palette
	keys    KeyMap
	help    help.Model
	results ResultsView
	session string
	config  core.RuntimeConfig

	cursor        int
	focus         Focus
	historyCursor int // Row in display order
	reversed      bool
	showResults   bool
	quitting      bool
}

// NewModel creates a session with a fresh game.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = opts.Display.ShowHelp
	h.Width = opts.Config.ScreenW

	return Model{
		game:     tictactoe.New(),
		store:    opts.Store,
		logger:   logger,
		palette:  opts.Palette,
		keys:     DefaultKeyMap(),
		help:     h,
		results:  NewResultsView(opts.Config.ScreenW, opts.Config.ScreenH),
		session:  opts.Session,
		config:   opts.Config,
		cursor:   centerCell,
		reversed: opts.Display.ReverseHistory,
	}
}

// Game returns the session's game.
func (m Model) Game() *tictactoe.Game {
	return m.game
}

// Reversed returns true if the move list shows the newest move first.
func (m Model) Reversed() bool {
	return m.reversed
}

// Cursor returns the highlighted board cell.
func (m Model) Cursor() int {
	return m.cursor
}

// Focus returns the part of the view receiving navigation keys.
func (m Model) Focus() Focus {
	return m.focus
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "session", m.session, "player", m.config.Player)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showResults {
			return m.handleResultsKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showResults {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.results.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input on the game view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("game ended", "session", m.session, "moves", m.game.Step())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Reverse):
		m.toggleOrder()

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()

	case key.Matches(msg, m.keys.NewGame):
		m.game = tictactoe.New()
		m.cursor = centerCell
		m.syncHistoryCursor()
		m.logger.Debug("new game", "session", m.session)

	case key.Matches(msg, m.keys.Start):
		m.jump(0)

	case key.Matches(msg, m.keys.Back):
		if m.game.Step() > 0 {
			m.jump(m.game.Step() - 1)
		}

	case key.Matches(msg, m.keys.Forward):
		if m.game.Step() < m.game.Len()-1 {
			m.jump(m.game.Step() + 1)
		}

	case key.Matches(msg, m.keys.Results):
		m.openResults()

	case key.Matches(msg, m.keys.PlayCell):
		if cell, ok := cellForKey(msg.String()); ok {
			m.cursor = cell
			m.play(cell)
		}

	case key.Matches(msg, m.keys.Select):
		if m.focus == FocusHistory {
			m.jump(m.stepAt(m.historyCursor))
		} else {
			m.play(m.cursor)
		}

	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)
	}

	return m, nil
}

// handleResultsKey processes keyboard input while the results table is open.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.showResults = false
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// handleMouse plays a clicked cell or jumps to a clicked move.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if cell, ok := cellAt(msg.X-boardLeft, msg.Y-boardTop); ok {
		m.focus = FocusBoard
		m.cursor = cell
		m.play(cell)
		return
	}

	row := msg.Y - historyTop
	if msg.X >= infoLeft && row >= 0 && row < m.game.Len() {
		m.focus = FocusHistory
		m.historyCursor = row
		m.jump(m.stepAt(row))
	}
}

// move steps the board cursor (wrapping within its row or column)
// or the history cursor, depending on focus.
func (m *Model) move(dx, dy int) {
	if m.focus == FocusHistory {
		m.historyCursor = core.Clamp(m.historyCursor+dy, 0, m.game.Len()-1)
		return
	}

	col := core.Wrap(m.cursor%tictactoe.BoardSize+dx, tictactoe.BoardSize)
	row := core.Wrap(m.cursor/tictactoe.BoardSize+dy, tictactoe.BoardSize)
	m.cursor = row*tictactoe.BoardSize + col
}

// play forwards a move to the game and records a result when it ends the game.
func (m *Model) play(cell int) {
	if !m.game.PlayMove(cell) {
		m.logger.Debug("move ignored", "session", m.session, "cell", cell, "status", m.game.Status())
		return
	}

	m.logger.Debug("move accepted", "session", m.session, "cell", cell, "step", m.game.Step())
	m.syncHistoryCursor()

	if outcome := m.game.Outcome(); outcome.Terminal() {
		m.recordResult(outcome)
	}
}

// jump time-travels to step.
func (m *Model) jump(step int) {
	m.game.JumpTo(step)
	m.syncHistoryCursor()
	m.logger.Debug("jumped", "session", m.session, "step", step)
}

// recordResult saves a finished game. Failures are logged; play continues.
func (m *Model) recordResult(outcome tictactoe.Outcome) {
	m.logger.Info("game finished", "session", m.session, "outcome", outcome.String(), "moves", m.game.Step())
	if m.store == nil {
		return
	}

	result := storage.Result{
		Session: m.session,
		Player:  m.config.Player,
		Outcome: outcomeValue(outcome),
		Moves:   m.game.Current().Count(),
	}
	if _, err := m.store.SaveResult(result); err != nil {
		m.logger.Warn("could not save result", "session", m.session, "error", err)
	}
}

// outcomeValue maps a terminal outcome to its stored form.
func outcomeValue(o tictactoe.Outcome) string {
	if o.Kind == tictactoe.Draw {
		return storage.OutcomeDraw
	}
	return o.Winner.String()
}

// toggleOrder flips the display order, keeping the same move selected.
func (m *Model) toggleOrder() {
	step := m.stepAt(m.historyCursor)
	m.reversed = !m.reversed
	m.historyCursor = m.rowOf(step)
}

// toggleFocus switches between the board and the move list.
func (m *Model) toggleFocus() {
	if m.focus == FocusBoard {
		m.focus = FocusHistory
		m.syncHistoryCursor()
		return
	}
	m.focus = FocusBoard
}

// openResults loads the ledger into the results table.
func (m *Model) openResults() {
	if m.store == nil {
		m.results.SetUnavailable()
		m.showResults = true
		return
	}

	tally, err := m.store.Tally()
	if err != nil {
		m.logger.Warn("could not load tally", "error", err)
	}
	recent, err := m.store.RecentResults(recentLimit)
	if err != nil {
		m.logger.Warn("could not load results", "error", err)
	}
	m.results.SetResults(tally, recent)
	m.showResults = true
}

// syncHistoryCursor puts the history cursor on the active step.
func (m *Model) syncHistoryCursor() {
	m.historyCursor = m.rowOf(m.game.Step())
}

// stepAt maps a display row to a history step.
func (m Model) stepAt(row int) int {
	row = core.Clamp(row, 0, m.game.Len()-1)
	if m.reversed {
		return m.game.Len() - 1 - row
	}
	return row
}

// rowOf maps a history step to its display row.
func (m Model) rowOf(step int) int {
	if m.reversed {
		return m.game.Len() - 1 - step
	}
	return step
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showResults {
		return m.results.View() + "\n" + dimStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Close, m.keys.Up, m.keys.Down, m.keys.Quit}))
	}

	cursor := noSelection
	if m.focus == FocusBoard {
		cursor = m.cursor
	}
	board := RenderScreen(DrawBoard(BoardView{
		Board:   m.game.Current(),
		Outcome: m.game.Outcome(),
		Cursor:  cursor,
		Hints:   true,
		Palette: m.palette,
	}))

	selected := noSelection
	if m.focus == FocusHistory {
		selected = m.historyCursor
	}
	info := []string{
		statusStyle.Render(m.game.Status()),
		"",
		headingStyle.Render("Past Moves:"),
	}
	info = append(info, renderHistory(HistoryView{
		Moves:    orderedMoves(m.game.Moves(), m.reversed),
		Selected: selected,
		Reversed: m.reversed,
	})...)
	info = append(info, "", dimStyle.Render(reverseLabel(m.reversed)))

	var b strings.Builder
	b.WriteString(titleStyle.Render(defaultTitle))
	if m.session != "" {
		b.WriteString(dimStyle.Render("  · " + m.session))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingLeft(boardLeft).Render(board),
		strings.Repeat(" ", infoGap),
		strings.Join(info, "\n"),
	))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to play or jump
	)

	_, err := p.Run()
	return err
}
