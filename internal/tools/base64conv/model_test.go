package base64conv

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	r, _ := m.Update(msg)
	got, ok := r.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", r)
	}
	return got
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, keyRune(r))
	}
	return m
}

func TestTitle_MatchesCatalog(t *testing.T) {
	if got := New().Title(); got != "Base64 Converter" {
		t.Errorf("expected 'Base64 Converter', got %q", got)
	}
}

func TestEncodeDecodeHelpers(t *testing.T) {
	if got := encode("hello\r\n"); got != "aGVsbG8=" {
		t.Errorf("expected trailing newlines trimmed before encoding, got %q", got)
	}
	got, err := decode("aGVsbG8=\n")
	if err != nil || got != "hello" {
		t.Errorf("decode = %q, %v", got, err)
	}
	if _, err := decode("not base64!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := decode("/w=="); err == nil {
		t.Error("expected error for non-UTF-8 bytes")
	}
}

func TestTypingDecoded_UpdatesEncoded(t *testing.T) {
	m := typeString(t, New(), "hi")

	if got := m.encoded.Value(); got != "aGk=" {
		t.Errorf("expected encoded 'aGk=', got %q", got)
	}
}

func TestTypingEncoded_UpdatesDecoded(t *testing.T) {
	m := update(t, New(), keyType(tea.KeyTab))
	if m.focus != sideEncoded {
		t.Fatalf("expected encoded focus, got %d", m.focus)
	}

	m = typeString(t, m, "aGk=")
	if got := m.decoded.Value(); got != "hi" {
		t.Errorf("expected decoded 'hi', got %q", got)
	}
	if m.errText != "" {
		t.Errorf("unexpected error %q", m.errText)
	}
}

func TestInvalidEncoded_KeepsDecoded(t *testing.T) {
	m := typeString(t, New(), "hi")
	m = update(t, m, keyType(tea.KeyTab))

	// Appending a character makes "aGk=" undecodable.
	m = update(t, m, keyRune('x'))
	if m.errText == "" {
		t.Error("expected inline error")
	}
	if got := m.decoded.Value(); got != "hi" {
		t.Errorf("expected decoded side untouched, got %q", got)
	}
	if !strings.Contains(m.View(), m.errText) {
		t.Error("expected error in view")
	}

	m = update(t, m, keyType(tea.KeyBackspace))
	if m.errText != "" {
		t.Errorf("expected error cleared, got %q", m.errText)
	}
}

func TestTab_TogglesFocus(t *testing.T) {
	m := New()
	m = update(t, m, keyType(tea.KeyTab))
	if !m.encoded.Focused() || m.decoded.Focused() {
		t.Error("expected encoded pane focused")
	}
	m = update(t, m, keyType(tea.KeyShiftTab))
	if !m.decoded.Focused() || m.encoded.Focused() {
		t.Error("expected decoded pane focused")
	}
}

func TestEsc_IsIgnored(t *testing.T) {
	m := typeString(t, New(), "abc")
	m = update(t, m, keyType(tea.KeyEscape))
	if m.decoded.Value() != "abc" {
		t.Errorf("expected value unchanged, got %q", m.decoded.Value())
	}
}
