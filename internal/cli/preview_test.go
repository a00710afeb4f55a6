package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/qrgrid/pkg/qrcode"
)

func testPreviewModel(t *testing.T) PreviewModel {
	t.Helper()
	code, err := qrcode.Encode("preview")
	if err != nil {
		t.Fatal(err)
	}
	return NewPreviewModel(code)
}

func press(m PreviewModel, keys ...string) PreviewModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(PreviewModel)
	}
	return m
}

func TestPreviewCursorBounds(t *testing.T) {
	m := testPreviewModel(t)
	m = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.Cursor)
	}
	for range len(m.Knobs) + 3 {
		m = press(m, "down")
	}
	if m.Cursor != len(m.Knobs)-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor, len(m.Knobs)-1)
	}
}

func TestPreviewCycleWraps(t *testing.T) {
	m := testPreviewModel(t)
	n := len(m.Knobs[0].values)

	m = press(m, "left")
	if m.Knobs[0].index != n-1 {
		t.Errorf("left from first value: index = %d, want %d", m.Knobs[0].index, n-1)
	}
	m = press(m, "right")
	if m.Knobs[0].index != 0 {
		t.Errorf("right from last value: index = %d, want 0", m.Knobs[0].index)
	}
}

func TestPreviewUpdateDoesNotMutatePrevious(t *testing.T) {
	m := testPreviewModel(t)
	next := press(m, "right")
	if m.Knobs[0].index != 0 {
		t.Error("Update should not change the previous model's knobs")
	}
	if next.Knobs[0].index != 1 {
		t.Errorf("next index = %d, want 1", next.Knobs[0].index)
	}
}

func TestPreviewArgs(t *testing.T) {
	m := testPreviewModel(t)
	if len(m.Args()) != 0 {
		t.Errorf("default look should need no flags, got %v", m.Args())
	}

	m = press(m, "right", "down", "down", "right", "i")
	args := m.Args()
	want := []string{"--dot-color", "'#1d4ed8'", "--dot-radius", "'1px'", "--invert"}
	if !slices.Equal(args, want) {
		t.Errorf("Args() = %v, want %v", args, want)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "'hello'"},
		{"", "''"},
		{"$HOME `id`", "'$HOME `id`'"},
		{`a\b "c"`, `'a\b "c"'`},
		{"it's", `'it'\''s'`},
	}
	for _, tt := range tests {
		if got := shellQuote(tt.in); got != tt.want {
			t.Errorf("shellQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPreviewEnterAndQuit(t *testing.T) {
	m := testPreviewModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(PreviewModel).Done {
		t.Error("enter should mark the model done")
	}
	if cmd == nil {
		t.Error("enter should quit")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if next.(PreviewModel).Done {
		t.Error("q should not mark the model done")
	}
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPreviewView(t *testing.T) {
	m := testPreviewModel(t)
	view := m.View()
	for _, want := range []string{"QR Preview", "Dot colour", "modules", "px"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
