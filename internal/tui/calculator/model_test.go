package calculator

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/msto63/fracalc/foundation/core/log"
	calc "github.com/msto63/fracalc/internal/calculator"
	"github.com/msto63/fracalc/internal/format"
)

func newTestModel(t *testing.T, withHistory bool) Model {
	t.Helper()
	cfg := calc.Config{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{Output: &bytes.Buffer{}}),
	}
	if withHistory {
		cfg.HistoryEnabled = true
		cfg.HistoryPath = filepath.Join(t.TempDir(), "history.db")
	}
	svc, err := calc.NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return New(svc, DefaultConfig())
}

// press sends a key and runs any command it returns, feeding the resulting
// message back into the model
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(Model)
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case evaluatedMsg, historyLoadedMsg:
			next, cmd = m.Update(msg)
			m = next.(Model)
		default:
			cmd = nil
		}
	}
	return m
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func TestEnterEvaluates(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"7*6", "42", false},
		{"¹⁄₂ + ¹⁄₃", "0.833", false},
		{"5/0", "Undefined", true},
		{"2++3", "Math Error", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := typeText(newTestModel(t, false), tt.input)
			m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			res, ok := m.Result()
			if !ok {
				t.Fatal("no result after Enter")
			}
			if got := res.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
			if (res.Err != nil) != tt.wantErr {
				t.Errorf("Err = %v, wantErr %v", res.Err, tt.wantErr)
			}
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() does not show %q", tt.want)
			}
		})
	}
}

func TestEnterOnEmptyInput(t *testing.T) {
	m := press(t, newTestModel(t, false), tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Result(); ok {
		t.Error("Enter on empty input produced a result")
	}
}

func TestCtrlFComposesFraction(t *testing.T) {
	m := typeText(newTestModel(t, false), "2 3/4")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})

	if got := m.input.Value(); got != "2 ³⁄₄" {
		t.Errorf("input after Ctrl+F = %q, want %q", got, "2 ³⁄₄")
	}
	if m.Mode() != format.ModeFraction {
		t.Errorf("Mode() = %v, want fraction", m.Mode())
	}

	m = typeText(m, "+1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if m.notice == "" {
		t.Error("Ctrl+F without a trailing n/d should leave a notice")
	}
}

func TestCtrlLClears(t *testing.T) {
	m := typeText(newTestModel(t, false), "1+1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	if m.input.Value() != "" {
		t.Errorf("input after Ctrl+L = %q", m.input.Value())
	}
	if _, ok := m.Result(); ok {
		t.Error("result still shown after Ctrl+L")
	}
}

func TestHistoryRecall(t *testing.T) {
	m := newTestModel(t, true)
	for _, in := range []string{"1+1", "2+2"} {
		m = typeText(m, in)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	}

	if len(m.entries) != 2 {
		t.Fatalf("history pane has %d entries, want 2", len(m.entries))
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "2+2" {
		t.Errorf("first recall = %q, want %q", got, "2+2")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "1+1" {
		t.Errorf("second recall = %q, want %q", got, "1+1")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.input.Value(); got != "" {
		t.Errorf("input after recalling past the newest entry = %q", got)
	}

	if !strings.Contains(m.View(), "2+2") {
		t.Error("history pane does not list past input")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showHistory {
		t.Error("Tab did not hide the history pane")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := newTestModel(t, false).Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v returned no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", key)
		}
	}
}
