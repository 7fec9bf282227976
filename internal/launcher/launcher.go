// Package launcher implements the fuzzy tool picker shown over the shell.
package launcher

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ryan-rushton/devtools/internal/fuzzy"
	"github.com/ryan-rushton/devtools/internal/messages"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/styles"
)

const (
	maxWidth  = 56
	minWidth  = 24
	topMargin = 1
	nameCol   = 18
)

// Box geometry used for mouse hit-testing. firstRow skips the top border
// and the query line; frameX is the border plus padding on each side.
const (
	firstRow = 2
	frameX   = 2
)

// Model is the launcher overlay.
type Model struct {
	input   textinput.Model
	matcher *fuzzy.Matcher
	catalog []string
	matches []string
	hovered string

	width   int
	originX int
	originY int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search tools..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	m := Model{
		input:   ti,
		matcher: fuzzy.New(),
		catalog: registry.Names(),
		width:   maxWidth,
		originY: topMargin,
	}
	m.input.Width = m.innerWidth() - len(ti.Prompt) - 1
	return m
}

// Query returns the current search text.
func (m Model) Query() string { return m.input.Value() }

// Matches returns the ranked names for the current query.
func (m Model) Matches() []string { return slices.Clone(m.matches) }

// Hovered returns the name under the pointer, or "" when none.
func (m Model) Hovered() string { return m.hovered }

// Focused reports whether the query field has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Origin returns the screen cell of the box's top-left corner.
func (m Model) Origin() (x, y int) { return m.originX, m.originY }

// SetQuery replaces the query and recomputes matches. The hover survives
// only if the hovered name is still listed.
func (m *Model) SetQuery(text string) {
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
	m.matches = m.matcher.Match(text, m.catalog)
	if m.hovered != "" && !slices.Contains(m.matches, m.hovered) {
		m.hovered = ""
	}
}

// Submit returns the best match, if any.
func (m Model) Submit() (string, bool) {
	if len(m.matches) == 0 {
		return "", false
	}
	return m.matches[0], true
}

// Click returns the clicked name. Whether it is valid is the caller's call.
func (m Model) Click(name string) string {
	return name
}

func (m *Model) HoverEnter(name string) {
	m.hovered = name
}

// HoverExit clears the hover only when name is the current hover.
func (m *Model) HoverExit(name string) {
	if m.hovered == name {
		m.hovered = ""
	}
}

// Reset clears the query, matches and hover and blurs the input.
func (m *Model) Reset() {
	m.input.Reset()
	m.input.Blur()
	m.matches = nil
	m.hovered = ""
}

// Focus focuses the query field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m Model) innerWidth() int {
	return m.width - 2*frameX
}

func (m *Model) layout(screenWidth int) {
	m.width = min(maxWidth, max(minWidth, screenWidth-4))
	m.originX = max(0, (screenWidth-m.width)/2)
	m.originY = topMargin
	m.input.Width = max(1, m.innerWidth()-len(m.input.Prompt)-1)
}

// rowAt maps a screen cell to the match drawn there.
func (m Model) rowAt(x, y int) (string, bool) {
	if x < m.originX+frameX || x >= m.originX+m.width-frameX {
		return "", false
	}
	i := y - m.originY - firstRow
	if i < 0 || i >= len(m.matches) {
		return "", false
	}
	return m.matches[i], true
}

// height is the number of screen rows the box covers: both borders, the
// query, and the results or the single hint line.
func (m Model) height() int {
	return 3 + max(1, len(m.matches))
}

// inBox reports whether a screen cell falls on the box, border included.
func (m Model) inBox(x, y int) bool {
	return x >= m.originX && x < m.originX+m.width &&
		y >= m.originY && y < m.originY+m.height()
}

func describe(name string) string {
	id, ok := registry.Parse(name)
	if !ok {
		return ""
	}
	return id.Description()
}

func selected(name string) tea.Cmd {
	return func() tea.Msg { return messages.ToolSelectedMsg{Name: name} }
}

func dismissed() tea.Msg { return messages.OverlayDismissedMsg{} }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout(msg.Width)
		return m, nil

	case tea.MouseMsg:
		name, onRow := m.rowAt(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if onRow {
				return m, selected(m.Click(name))
			}
			if !m.inBox(msg.X, msg.Y) {
				return m, dismissed
			}
		case msg.Action == tea.MouseActionMotion:
			if onRow && name != m.hovered {
				if m.hovered != "" {
					m.HoverExit(m.hovered)
				}
				m.HoverEnter(name)
			} else if !onRow && m.hovered != "" {
				m.HoverExit(m.hovered)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			if name, ok := m.Submit(); ok {
				return m, selected(name)
			}
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.SetQuery(m.input.Value())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) row(name string) string {
	inner := m.innerWidth()
	if name == m.hovered {
		plain := fmt.Sprintf("%-*s %s", nameCol, name, describe(name))
		return styles.Hovered.Width(inner).Render(ansi.Truncate(plain, inner, "…"))
	}
	line := fmt.Sprintf("%-*s ", nameCol, name) + styles.Dimmed.Render(describe(name))
	return ansi.Truncate(line, inner, "…")
}

// View renders the overlay box. Every line is exactly the box width.
func (m Model) View() string {
	lines := []string{m.input.View()}
	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		lines = append(lines, styles.Help.Render("Type to search, esc to close"))
	case len(m.matches) == 0:
		lines = append(lines, styles.Dimmed.Render("No matching tools"))
	default:
		for _, name := range m.matches {
			lines = append(lines, m.row(name))
		}
	}
	inner := m.innerWidth()
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "")
	}
	return styles.Overlay.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}
