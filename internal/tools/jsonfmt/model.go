package jsonfmt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/devtools/internal/export"
	"github.com/ryan-rushton/devtools/internal/messages"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/styles"
)

const (
	maxIndent  = 8
	exportName = "beautified.json"
)

type viewState int

const (
	stateEdit viewState = iota
	stateExportPath
)

// Options configures a new beautifier.
type Options struct {
	Indent    int
	ExportDir string
}

// Model is the JSON beautifier tool.
type Model struct {
	state       viewState
	input       textarea.Model
	output      viewport.Model
	formatted   string
	errText     string
	indent      int
	highlighter *highlighter
	path        textinput.Model
	exportDir   string
	exporting   bool
	status      string
	statusErr   bool
}

func New(opts Options) Model {
	input := textarea.New()
	input.Placeholder = "Paste JSON here"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetValue("{}")
	input.Focus()

	path := textinput.New()
	path.CharLimit = 4096
	path.Width = 50
	path.Prompt = ""

	m := Model{
		input:       input,
		output:      viewport.New(40, 12),
		indent:      min(max(opts.Indent, 0), maxIndent),
		highlighter: newHighlighter(),
		path:        path,
		exportDir:   opts.ExportDir,
	}
	m.input.SetWidth(40)
	m.input.SetHeight(12)
	m.reformat()
	return m
}

func (m Model) Title() string {
	return registry.JSONBeautifier.String()
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// reformat recomputes the output from the input. On error the previous
// output is kept and the error is shown inline.
func (m *Model) reformat() {
	out, err := beautify(m.input.Value(), m.indent)
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.errText = ""
	m.formatted = out
	m.output.SetContent(m.highlighter.highlight(out))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		panel := max(20, (msg.Width-4)/2)
		height := max(5, msg.Height-12)
		m.input.SetWidth(panel)
		m.input.SetHeight(height)
		m.output.Width = panel
		m.output.Height = height
		m.path.Width = max(10, msg.Width-12)
		return m, nil

	case messages.ExportFinishedMsg:
		m.exporting = false
		if msg.Err != nil {
			m.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus("Saved "+msg.Summary+" to "+msg.Path, false)
		}
		return m, nil

	case messages.ClipboardMsg:
		if msg.Err != nil {
			m.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus("Copied to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateExportPath {
		switch msg.String() {
		case "esc":
			m.state = stateEdit
			m.path.Blur()
			return m, m.input.Focus()
		case "enter":
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				return m, nil
			}
			m.state = stateEdit
			m.path.Blur()
			m.exporting = true
			m.setStatus("Exporting...", false)
			m.input.Focus()
			return m, messages.Request(messages.ExportRequestMsg{
				Path:    path,
				Data:    []byte(m.formatted + "\n"),
				Summary: "JSON",
			})
		default:
			var cmd tea.Cmd
			m.path, cmd = m.path.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "alt+left":
		if m.indent > 0 {
			m.indent--
			m.reformat()
		}
		return m, nil
	case "alt+right":
		if m.indent < maxIndent {
			m.indent++
			m.reformat()
		}
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	case "ctrl+y":
		return m, messages.Copy(m.formatted)
	case "ctrl+s":
		if m.exporting {
			m.setStatus(messages.ErrExportPending.Error(), true)
			return m, nil
		}
		m.state = stateExportPath
		m.input.Blur()
		m.path.SetValue(export.DefaultPath(m.exportDir, exportName))
		m.path.CursorEnd()
		return m, m.path.Focus()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reformat()
	}
	return m, cmd
}

// cursorPos is the input cursor as 1-based line:col.
func (m Model) cursorPos() string {
	info := m.input.LineInfo()
	return fmt.Sprintf("%d:%d", m.input.Line()+1, info.StartColumn+info.ColumnOffset+1)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("JSON Beautifier") + "  ")
	b.WriteString(styles.Label.Render("Indent: ") + styles.Subtitle.Render(strings.Repeat("•", m.indent)+strings.Repeat("·", maxIndent-m.indent)))
	b.WriteString("\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		styles.Subtitle.Render("Input"),
		m.input.View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		styles.Subtitle.Render("Output"),
		m.output.View(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right) + "\n")
	b.WriteString(styles.Label.Render(m.cursorPos()) + "\n")

	if m.errText != "" {
		b.WriteString("\n" + styles.Err.Render(m.errText) + "\n")
	}
	if m.state == stateExportPath {
		b.WriteString("\n" + styles.Label.Render("Save to: ") + m.path.View() + "\n")
	}
	if m.status != "" {
		style := styles.Success
		if m.statusErr {
			style = styles.Err
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	help := "alt+←→ indent  pgup/pgdn scroll output  ctrl+y copy  ctrl+s save"
	if m.state == stateExportPath {
		help = "enter save  esc cancel"
	}
	b.WriteString("\n" + styles.Help.Render(help))
	return b.String()
}
