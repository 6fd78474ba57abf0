package report

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deconflict/internal/detect"
)

func TestTUIModelView(t *testing.T) {
	m := newTUIModel(sampleResult(), 100, 40)
	view := m.View()
	if !strings.Contains(view, "UNSAFE") {
		t.Error("view missing verdict")
	}
	if !strings.Contains(view, "BRAVO") {
		t.Error("view missing conflict row")
	}
}

func TestTUIModelClearView(t *testing.T) {
	m := newTUIModel(detect.Result{Clear: true}, 100, 40)
	if !strings.Contains(m.View(), "CLEAR") {
		t.Error("clear result should render CLEAR verdict")
	}
}

func TestTUIModelQuitKeys(t *testing.T) {
	m := newTUIModel(sampleResult(), 100, 40)
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("key %q should quit", key)
		}
	}
}

func TestTUIModelTabSwitchesFocus(t *testing.T) {
	m := newTUIModel(sampleResult(), 100, 40)
	updated, _ := m.Update(keyMsg("tab"))
	if updated.(tuiModel).focused != 1 {
		t.Error("tab should move focus to report pane")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
