// Package tui renders a deduction run in the terminal, one assignment
// per tick, with pause and single-step control.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	givenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	deducedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lastStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Underline(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// keyMap lists the watch mode bindings.
type keyMap struct {
	Toggle key.Binding
	Step   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Toggle, k.Step, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	Step:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tickMsg asks for the next deduction. seq guards against stale tick
// chains after a pause/resume.
type tickMsg struct{ seq int }

// Model steps a run one assignment per tick.
type Model struct {
	run      *solver.Run
	board    *domain.Board
	interval time.Duration
	help     help.Model

	deduced [9][9]bool
	last    solver.Step
	hasLast bool
	seq     int
	paused  bool
	done    bool
	err     error
}

// NewModel binds a run over b to a fresh watch model. The board is
// mutated as the run advances.
func NewModel(b *domain.Board, engine *solver.Engine, interval time.Duration) (Model, error) {
	run, err := engine.Run(b)
	if err != nil {
		return Model{}, err
	}
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return Model{run: run, board: b, interval: interval, help: help.New()}, nil
}

// Done reports whether the run has finished, solved or not.
func (m Model) Done() bool { return m.done }

// Err returns the run error after a failed finish.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

// advance takes one deduction off the run.
func (m Model) advance() Model {
	if m.done {
		return m
	}
	if m.run.Next() {
		m.last = m.run.Step()
		m.hasLast = true
		m.deduced[m.last.Cell.Row][m.last.Cell.Col] = true
		if m.run.Remaining() == 0 {
			m.done = true
		}
		return m
	}
	m.done = true
	m.err = m.run.Err()
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.paused = !m.paused
			m.seq++
			if !m.paused && !m.done {
				return m, m.tick()
			}
		case key.Matches(msg, keys.Step):
			if m.paused {
				m = m.advance()
			}
		}
	case tickMsg:
		if msg.seq != m.seq || m.paused || m.done {
			return m, nil
		}
		m = m.advance()
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("sudoku watch"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.done && m.err != nil:
		return failStyle.Render(m.err.Error())
	case m.done:
		return statusStyle.Render(fmt.Sprintf("solved in %d steps", m.run.Stats().Assignments))
	case m.paused:
		return statusStyle.Render(fmt.Sprintf("paused, %d cells left", m.run.Remaining()))
	}
	return statusStyle.Render(fmt.Sprintf("running, %d cells left", m.run.Remaining()))
}

func (m Model) renderBoard() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString(emptyStyle.Render("------+-------+------"))
			b.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString(emptyStyle.Render("| "))
			}
			b.WriteString(m.renderCell(r, c))
			if c != 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderCell(r, c int) string {
	v := m.board.Values[r][c]
	if v == 0 {
		return emptyStyle.Render(".")
	}
	s := string('0' + rune(v))
	switch {
	case m.hasLast && m.last.Cell.Row == r && m.last.Cell.Col == c:
		return lastStyle.Render(s)
	case m.deduced[r][c]:
		return deducedStyle.Render(s)
	}
	return givenStyle.Render(s)
}
