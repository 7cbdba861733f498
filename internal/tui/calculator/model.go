// ============================================================================
// fracalc - Fraction Calculator
// ============================================================================
//
// Package:     calculator
// Description: Main Bubbletea model for the calculator TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package calculator is the interactive terminal front end: an input line,
// a result line and an optional history pane.
package calculator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calc "github.com/msto63/fracalc/internal/calculator"
	"github.com/msto63/fracalc/internal/format"
	"github.com/msto63/fracalc/internal/glyph"
	"github.com/msto63/fracalc/internal/history"
)

// Config holds TUI configuration
type Config struct {
	ShowHistory    bool
	HistoryRows    int
	MaxInputLength int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		ShowHistory:    true,
		HistoryRows:    8,
		MaxInputLength: 4096,
	}
}

// Model is the main Bubbletea model for the calculator
type Model struct {
	// State
	width  int
	height int
	result calc.Result
	shown  bool
	notice string
	err    error

	// Components
	input textinput.Model

	// History
	entries     []history.Entry
	recallIndex int
	showHistory bool
	historyRows int

	service *calc.Service
}

// New creates a new calculator model
func New(svc *calc.Service, cfg Config) Model {
	if cfg.HistoryRows <= 0 {
		cfg.HistoryRows = DefaultConfig().HistoryRows
	}

	ti := textinput.New()
	ti.Placeholder = "2 ³⁄₄ + 1/2 or 7*6"
	ti.Prompt = "› "
	ti.PromptStyle = PromptStyle
	ti.CharLimit = cfg.MaxInputLength
	ti.Focus()

	return Model{
		input:       ti,
		service:     svc,
		recallIndex: -1,
		showHistory: cfg.ShowHistory && svc.HistoryEnabled(),
		historyRows: cfg.HistoryRows,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKeyPress(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, 10)

	case evaluatedMsg:
		m.result = msg.result
		m.shown = true
		return m, m.loadHistory

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.entries = msg.entries
			m.err = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles calculator shortcuts. Keys it does not handle go
// to the input line.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyEnter:
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil, true
		}
		m.notice = ""
		m.recallIndex = -1
		return m, m.evaluate(text), true

	case tea.KeyCtrlF:
		composed, ok := glyph.ComposeTrailing(m.input.Value())
		if !ok {
			m.notice = "no trailing n/d to turn into a fraction"
			return m, nil, true
		}
		m.notice = ""
		m.input.SetValue(composed)
		m.input.CursorEnd()
		return m, nil, true

	case tea.KeyCtrlL:
		m.input.Reset()
		m.shown = false
		m.notice = ""
		m.recallIndex = -1
		return m, nil, true

	case tea.KeyTab:
		if m.service.HistoryEnabled() {
			m.showHistory = !m.showHistory
		}
		return m, nil, true

	case tea.KeyUp:
		if m.recallIndex+1 < len(m.entries) {
			m.recallIndex++
			m.input.SetValue(m.entries[m.recallIndex].Input)
			m.input.CursorEnd()
		}
		return m, nil, true

	case tea.KeyDown:
		switch {
		case m.recallIndex > 0:
			m.recallIndex--
			m.input.SetValue(m.entries[m.recallIndex].Input)
			m.input.CursorEnd()
		case m.recallIndex == 0:
			m.recallIndex = -1
			m.input.Reset()
		}
		return m, nil, true
	}

	return m, nil, false
}

// evaluate runs the calculation off the event loop; recording history may
// touch the disk
func (m Model) evaluate(text string) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return evaluatedMsg{result: svc.Evaluate(context.Background(), text)}
	}
}

// loadHistory loads the entries shown in the history pane
func (m Model) loadHistory() tea.Msg {
	if !m.service.HistoryEnabled() {
		return historyLoadedMsg{}
	}
	entries, err := m.service.History(context.Background(), m.historyRows)
	return historyLoadedMsg{entries: entries, err: err}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderResult())
	b.WriteString("\n")

	if m.showHistory {
		b.WriteString(m.renderHistory())
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) panelWidth() int {
	if m.width <= 4 {
		return 60
	}
	return m.width - 4
}

// renderHeader renders the logo and the mode the current input would use
func (m Model) renderHeader() string {
	mode := "plain arithmetic"
	if m.Mode() == format.ModeFraction {
		mode = "fraction mode"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		ModeStyle.Render(mode),
	)
	return TitlePanelStyle.Width(m.panelWidth()).Render(header)
}

func (m Model) renderInput() string {
	return InputPanelStyle.Width(m.panelWidth()).Render(m.input.View())
}

// renderResult renders the result or error line and any notice
func (m Model) renderResult() string {
	var line string
	switch {
	case m.notice != "":
		line = NoticeStyle.Render(m.notice)
	case !m.shown:
		line = HelpDescStyle.Render(" ")
	case m.result.Err != nil:
		line = ErrorStyle.Render(m.result.Display())
	default:
		line = ResultStyle.Render("= " + strings.TrimLeft(m.result.Display(), " "))
	}
	return StatusBarStyle.Width(m.panelWidth()).Render(line)
}

// renderHistory renders the newest entries, newest first
func (m Model) renderHistory() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(HistoryErrorStyle.Render("history unavailable: " + m.err.Error()))
	} else if len(m.entries) == 0 {
		b.WriteString(HelpDescStyle.Render("no history yet"))
	}

	for i, e := range m.entries {
		if i >= m.historyRows {
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if i == m.recallIndex {
			marker = "› "
		}
		result := HistoryResultStyle.Render(strings.TrimLeft(e.Result, " "))
		if e.Failed() {
			result = HistoryErrorStyle.Render(e.Result)
		}
		fmt.Fprintf(&b, "%s%s %s = %s",
			marker,
			HistoryTimeStyle.Render(e.CreatedAt.Local().Format("15:04:05")),
			HistoryInputStyle.Render(e.Input),
			result,
		)
	}
	return HistoryPanelStyle.Width(m.panelWidth()).Render(b.String())
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "evaluate"),
		RenderKeyHint("Ctrl+F", "n/d → ⁿ⁄d"),
		RenderKeyHint("Ctrl+L", "clear"),
	}
	if m.service.HistoryEnabled() {
		items = append(items,
			RenderKeyHint("↑/↓", "recall"),
			RenderKeyHint("Tab", "history"),
		)
	}
	items = append(items, RenderKeyHint("Esc", "quit"))
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Result returns the last evaluation shown, and whether there is one
func (m Model) Result() (calc.Result, bool) {
	return m.result, m.shown
}

// Mode reports the mode the current input would be evaluated in
func (m Model) Mode() format.Mode {
	if glyph.ContainsFraction(m.input.Value()) {
		return format.ModeFraction
	}
	return format.ModeArithmetic
}

// Run starts the calculator TUI
func Run(svc *calc.Service, cfg Config) error {
	p := tea.NewProgram(New(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
