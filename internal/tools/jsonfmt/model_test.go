package jsonfmt

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ryan-rushton/devtools/internal/messages"
)

func keyRune(r rune) tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }
func altKey(t tea.KeyType) tea.KeyMsg  { return tea.KeyMsg{Type: t, Alt: true} }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	r, cmd := m.Update(msg)
	got, ok := r.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", r)
	}
	return got, cmd
}

func withInput(value string) Model {
	m := New(Options{Indent: 2})
	m.input.SetValue(value)
	m.reformat()
	return m
}

func TestBeautify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		indent int
		want   string
	}{
		{"object", `{"b":1,"a":[1,2]}`, 2, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}"},
		{"four spaces", `{"a":true}`, 4, "{\n    \"a\": true\n}"},
		{"compact", "{\n  \"a\": 1,\n  \"b\": null\n}", 0, `{"a":1,"b":null}`},
		{"array root", `[1, "x"]`, 2, "[\n  1,\n  \"x\"\n]"},
		{"scalar root", `42`, 2, "42"},
		{"comments and trailing comma", "{ // note\n\"a\": 1,\n}", 2, "{\n  \"a\": 1\n}"},
		{"blank", "   \n", 2, ""},
	}
	for _, tt := range tests {
		got, err := beautify(tt.input, tt.indent)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestBeautify_Invalid(t *testing.T) {
	for _, input := range []string{`{"a":}`, `{"a" 1}`, `[1,2`, `nope`} {
		if _, err := beautify(input, 2); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestTitle_MatchesCatalog(t *testing.T) {
	if got := New(Options{}).Title(); got != "JSON Beautifier" {
		t.Errorf("expected 'JSON Beautifier', got %q", got)
	}
}

func TestNew_FormatsDefault(t *testing.T) {
	m := New(Options{Indent: 4})
	if m.formatted != "{}" {
		t.Errorf("expected '{}', got %q", m.formatted)
	}
	if m.errText != "" {
		t.Errorf("unexpected error %q", m.errText)
	}
}

func TestNew_ClampsIndent(t *testing.T) {
	if m := New(Options{Indent: 20}); m.indent != maxIndent {
		t.Errorf("expected indent clamped to %d, got %d", maxIndent, m.indent)
	}
	if m := New(Options{Indent: -3}); m.indent != 0 {
		t.Errorf("expected indent clamped to 0, got %d", m.indent)
	}
}

func TestTyping_InvalidKeepsPreviousOutput(t *testing.T) {
	m := withInput(`{"a":1}`)
	want := m.formatted

	m, _ = update(t, m, keyRune('x'))
	if m.input.Value() != `{"a":1}x` {
		t.Fatalf("expected key to reach input, got %q", m.input.Value())
	}
	if m.errText == "" {
		t.Error("expected inline error for invalid JSON")
	}
	if m.formatted != want {
		t.Errorf("expected previous output kept, got %q", m.formatted)
	}

	m, _ = update(t, m, keyType(tea.KeyBackspace))
	if m.errText != "" {
		t.Errorf("expected error cleared once JSON is valid again, got %q", m.errText)
	}
}

func TestIndent_AltArrows(t *testing.T) {
	m := withInput(`{"a":1}`)

	m, _ = update(t, m, altKey(tea.KeyRight))
	if m.indent != 3 {
		t.Fatalf("expected indent 3, got %d", m.indent)
	}
	if m.formatted != "{\n   \"a\": 1\n}" {
		t.Errorf("unexpected output %q", m.formatted)
	}

	for range 5 {
		m, _ = update(t, m, altKey(tea.KeyLeft))
	}
	if m.indent != 0 {
		t.Errorf("expected indent to stop at 0, got %d", m.indent)
	}
	if m.formatted != `{"a":1}` {
		t.Errorf("expected compact output, got %q", m.formatted)
	}
}

func TestOutput_IsHighlighted(t *testing.T) {
	m := withInput(`{"a":1}`)
	view := m.output.View()
	if !strings.Contains(ansi.Strip(view), `"a": 1`) {
		t.Errorf("expected formatted JSON in output view, got %q", ansi.Strip(view))
	}
}

func TestExport_EmitsFormatted(t *testing.T) {
	dir := t.TempDir()
	m := New(Options{Indent: 2, ExportDir: dir})
	m.input.SetValue(`{"k":"v"}`)
	m.reformat()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.state != stateExportPath {
		t.Fatalf("expected export prompt, got %d", m.state)
	}
	if want := filepath.Join(dir, "beautified.json"); m.path.Value() != want {
		t.Errorf("expected path %q, got %q", want, m.path.Value())
	}

	m, cmd := update(t, m, keyType(tea.KeyEnter))
	if !m.exporting || m.state != stateEdit {
		t.Fatal("expected export pending and prompt closed")
	}
	if cmd == nil {
		t.Fatal("expected request cmd")
	}
	req, ok := cmd().(messages.ExportRequestMsg)
	if !ok {
		t.Fatal("expected ExportRequestMsg")
	}
	if string(req.Data) != "{\n  \"k\": \"v\"\n}\n" {
		t.Errorf("unexpected export data %q", req.Data)
	}
}

func TestExport_EscCancels(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = update(t, m, keyType(tea.KeyEscape))
	if m.state != stateEdit || m.exporting {
		t.Error("expected prompt closed without exporting")
	}
	if !m.input.Focused() {
		t.Error("expected input focus restored")
	}
}

func TestExportFinished_Status(t *testing.T) {
	m := New(Options{})
	m.exporting = true

	m, _ = update(t, m, messages.ExportFinishedMsg{Err: errors.New("permission denied")})
	if m.exporting {
		t.Error("expected exporting cleared")
	}
	if !m.statusErr || !strings.Contains(m.status, "permission denied") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestView_ShowsError(t *testing.T) {
	m := withInput(`{`)
	if m.errText == "" {
		t.Fatal("expected error")
	}
	if !strings.Contains(m.View(), m.errText) {
		t.Error("expected error text in view")
	}
}

func TestView_ShowsCursorPosition(t *testing.T) {
	m := New(Options{Indent: 2})
	if got := m.cursorPos(); got != "1:3" {
		t.Errorf("expected 1:3 after the default value, got %q", got)
	}

	m.input.SetValue("{\n\"a\":1}")
	if got := m.cursorPos(); got != "2:7" {
		t.Errorf("expected 2:7, got %q", got)
	}

	m, _ = update(t, m, keyType(tea.KeyLeft))
	if got := m.cursorPos(); got != "2:6" {
		t.Errorf("expected 2:6 after moving left, got %q", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "2:6") {
		t.Error("expected cursor position in view")
	}
}
