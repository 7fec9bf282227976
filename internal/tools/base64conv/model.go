package base64conv

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/styles"
)

type side int

const (
	sideDecoded side = iota
	sideEncoded
)

// Model is the base64 converter tool: editing either pane rewrites the other.
type Model struct {
	decoded textarea.Model
	encoded textarea.Model
	focus   side
	errText string
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(60)
	ta.SetHeight(8)
	return ta
}

func New() Model {
	m := Model{
		decoded: newArea("Plain text"),
		encoded: newArea("Base64"),
	}
	m.decoded.Focus()
	return m
}

func (m Model) Title() string {
	return registry.Base64Converter.String()
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func trimNewlines(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(trimNewlines(s)))
}

func decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(trimNewlines(s))
	if err != nil {
		return "", fmt.Errorf("invalid base64: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("decoded bytes are not valid UTF-8")
	}
	return string(raw), nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := max(20, msg.Width-2)
		height := max(3, (msg.Height-10)/2)
		for _, ta := range []*textarea.Model{&m.decoded, &m.encoded} {
			ta.SetWidth(width)
			ta.SetHeight(height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "tab" || msg.String() == "shift+tab" {
			return m.toggleFocus()
		}
		return m.edit(msg)
	}

	var cmd tea.Cmd
	if m.focus == sideDecoded {
		m.decoded, cmd = m.decoded.Update(msg)
	} else {
		m.encoded, cmd = m.encoded.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == sideDecoded {
		m.focus = sideEncoded
		m.decoded.Blur()
		return m, m.encoded.Focus()
	}
	m.focus = sideDecoded
	m.encoded.Blur()
	return m, m.decoded.Focus()
}

func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == sideDecoded {
		before := trimNewlines(m.decoded.Value())
		m.decoded, cmd = m.decoded.Update(msg)
		if trimNewlines(m.decoded.Value()) != before {
			m.encoded.SetValue(encode(m.decoded.Value()))
			m.errText = ""
		}
		return m, cmd
	}

	before := trimNewlines(m.encoded.Value())
	m.encoded, cmd = m.encoded.Update(msg)
	if trimNewlines(m.encoded.Value()) != before {
		decoded, err := decode(m.encoded.Value())
		if err != nil {
			m.errText = err.Error()
		} else {
			m.decoded.SetValue(decoded)
			m.errText = ""
		}
	}
	return m, cmd
}

func (m Model) View() string {
	label := func(s side, name string) string {
		if m.focus == s {
			return styles.Selected.Render("> " + name)
		}
		return styles.Subtitle.Render("  " + name)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Base64 Converter") + "\n\n")
	b.WriteString(label(sideDecoded, "Decoded") + "\n")
	b.WriteString(m.decoded.View() + "\n\n")
	b.WriteString(label(sideEncoded, "Encoded") + "\n")
	b.WriteString(m.encoded.View() + "\n")
	if m.errText != "" {
		b.WriteString("\n" + styles.Err.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + styles.Help.Render("tab switch pane"))
	return b.String()
}
