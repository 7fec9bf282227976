package messages

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/devtools/internal/export"
)

// ErrExportPending is reported when a tool asks for an export while
// another one is still being written.
var ErrExportPending = errors.New("an export is already in progress")

// ToolSelectedMsg is sent by the launcher when the user picks a tool.
type ToolSelectedMsg struct {
	Name string
}

// OverlayDismissedMsg is sent by the launcher when the user presses
// outside its box.
type OverlayDismissedMsg struct{}

// ExportRequestMsg is sent by a tool that wants Data written to Path.
// Everything the write needs is carried by value.
type ExportRequestMsg struct {
	Path    string
	Data    []byte
	Summary string
}

// ExportFinishedMsg reports the outcome of an ExportRequestMsg.
type ExportFinishedMsg struct {
	Path    string
	Summary string
	Err     error
}

// ClipboardMsg reports the outcome of a Copy command.
type ClipboardMsg struct {
	Err error
}

// Request returns a command that emits req.
func Request(req ExportRequestMsg) tea.Cmd {
	return func() tea.Msg { return req }
}

// Export returns a command that performs req off the event loop.
func Export(req ExportRequestMsg) tea.Cmd {
	return func() tea.Msg {
		err := export.Write(req.Path, req.Data)
		return ExportFinishedMsg{Path: req.Path, Summary: req.Summary, Err: err}
	}
}

// Copy returns a command that writes text to the system clipboard.
func Copy(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Err: clipboard.WriteAll(text)}
	}
}

// standalone wraps a tool model when it runs without the shell: ctrl+c
// quits and export requests are run directly.
type standalone struct {
	inner tea.Model
}

// Standalone wraps a model for direct CLI invocation.
func Standalone(m tea.Model) tea.Model {
	return standalone{inner: m}
}

func (s standalone) Init() tea.Cmd {
	return s.inner.Init()
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return s, tea.Quit
	}
	if req, ok := msg.(ExportRequestMsg); ok {
		return s, Export(req)
	}
	m, cmd := s.inner.Update(msg)
	s.inner = m
	return s, cmd
}

func (s standalone) View() string {
	return s.inner.View()
}
