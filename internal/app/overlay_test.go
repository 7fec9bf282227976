package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSplice_ReplacesRegion(t *testing.T) {
	base := "abcdefgh\nijklmnop\nqrstuvwx"
	got := ansi.Strip(splice(base, "12\n34", 3, 1))
	want := "abcdefgh\nijk12nop\nqrs34vwx"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSplice_PadsShortLines(t *testing.T) {
	got := ansi.Strip(splice("ab\n", "XY", 4, 0))
	if got != "ab  XY\n" {
		t.Errorf("unexpected %q", got)
	}
}

func TestSplice_DropsRowsOutsideBase(t *testing.T) {
	got := ansi.Strip(splice("aaaa\nbbbb", "1\n2\n3", 0, 1))
	if got != "aaaa\n1bbb" {
		t.Errorf("unexpected %q", got)
	}
	if splice("same", "", 0, 0) != "same" {
		t.Error("expected empty box to leave base alone")
	}
}

func TestSplice_KeepsStyledSuffix(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := splice(styled, "__", 0, 0)
	if ansi.Strip(got) != "__llo world" {
		t.Errorf("unexpected text %q", ansi.Strip(got))
	}
	if ansi.StringWidth(got) != ansi.StringWidth(styled) {
		t.Error("expected width preserved")
	}
	if !strings.HasPrefix(got, sgrReset) {
		t.Error("expected reset before the box")
	}
}
