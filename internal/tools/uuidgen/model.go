package uuidgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/devtools/internal/export"
	"github.com/ryan-rushton/devtools/internal/messages"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/styles"
)

// MaxAmount bounds a single generation.
const MaxAmount = 10000

const exportName = "uuids.txt"

type viewState int

const (
	stateEdit viewState = iota
	stateExportPath
)

type field int

const (
	fieldVersion field = iota
	fieldAmount
	fieldQuotes
	fieldCount
)

// Options configures a new generator.
type Options struct {
	Version   Version
	ExportDir string
}

// Model is the UUID generator tool.
type Model struct {
	state     viewState
	focus     field
	version   Version
	quotes    Quotes
	amount    textinput.Model
	parsed    int
	amountErr string
	output    []string
	path      textinput.Model
	exportDir string
	exporting bool
	status    string
	statusErr bool
	height    int
}

func New(opts Options) Model {
	amount := textinput.New()
	amount.CharLimit = 6
	amount.Width = 8
	amount.Prompt = ""
	amount.SetValue("1")

	path := textinput.New()
	path.CharLimit = 4096
	path.Width = 50
	path.Prompt = ""

	m := Model{
		version:   opts.Version,
		amount:    amount,
		parsed:    1,
		path:      path,
		exportDir: opts.ExportDir,
	}
	m.output = []string{m.version.generate()}
	return m
}

func (m Model) Title() string {
	return registry.UUIDGenerator.String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.path.Width = max(10, msg.Width-8)
		return m, nil

	case messages.ExportFinishedMsg:
		m.exporting = false
		if msg.Err != nil {
			m.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Saved %s to %s", msg.Summary, msg.Path), false)
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

	return m, nil
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
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				return m, nil
			}
			m.state = stateEdit
			m.path.Blur()
			m.exporting = true
			m.setStatus("Exporting...", false)
			return m, messages.Request(messages.ExportRequestMsg{
				Path:    path,
				Data:    []byte(strings.Join(m.output, "\n") + "\n"),
				Summary: plural(len(m.output), "UUID"),
			})
		default:
			var cmd tea.Cmd
			m.path, cmd = m.path.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if m.amountErr == "" {
			m.generate()
		}
		return m, nil
	case "ctrl+y":
		return m, messages.Copy(strings.Join(m.output, "\n"))
	case "ctrl+s":
		if m.exporting {
			m.setStatus(messages.ErrExportPending.Error(), true)
			return m, nil
		}
		m.state = stateExportPath
		m.path.SetValue(export.DefaultPath(m.exportDir, exportName))
		m.path.CursorEnd()
		return m, m.path.Focus()
	}

	switch m.focus {
	case fieldVersion:
		if step := direction(msg); step != 0 {
			m.version = cycle(versions, m.version, step)
			m.output = []string{m.quotes.wrap(m.version.generate())}
		}
	case fieldQuotes:
		if step := direction(msg); step != 0 {
			m.quotes = cycle(quoteStyles, m.quotes, step)
		}
	case fieldAmount:
		before := m.amount.Value()
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		if m.amount.Value() != before {
			m.parseAmount()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) setFocus(f field) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == fieldAmount {
		return m, m.amount.Focus()
	}
	m.amount.Blur()
	return m, nil
}

func direction(msg tea.KeyMsg) int {
	switch msg.String() {
	case "left", "h":
		return -1
	case "right", "l", " ":
		return 1
	}
	return 0
}

func (m *Model) parseAmount() {
	raw := m.amount.Value()
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		m.amountErr = fmt.Sprintf("Cannot parse '%s'", raw)
	case n < 1:
		m.amountErr = fmt.Sprintf("Amount must be at least 1 '%s'", raw)
	case n > MaxAmount:
		m.amountErr = fmt.Sprintf("Amount must be at most %d '%s'", MaxAmount, raw)
	default:
		m.parsed = n
		m.amountErr = ""
	}
}

func (m *Model) generate() {
	out := make([]string, m.parsed)
	for i := range out {
		out[i] = m.quotes.wrap(m.version.generate())
	}
	m.output = out
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (m Model) visibleLines() int {
	if m.height <= 0 {
		return 20
	}
	return max(3, m.height-14)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("UUID Generator") + "\n\n")
	b.WriteString(styles.Subtitle.Render("Configuration") + "\n")

	row := func(f field, label, value string) {
		cursor := "  "
		if m.focus == f && m.state == stateEdit {
			cursor = styles.Selected.Render("> ")
		}
		b.WriteString(cursor + styles.Label.Render(fmt.Sprintf("%-10s", label)) + value + "\n")
	}

	row(fieldVersion, "Version", "◀ "+m.version.String()+" ▶")
	amount := m.amount.View()
	if m.amountErr != "" {
		amount += "  " + styles.Err.Render(m.amountErr)
	}
	row(fieldAmount, "Amount", amount)
	row(fieldQuotes, "Quotes", "◀ "+m.quotes.String()+" ▶")

	if m.state == stateExportPath {
		b.WriteString("\n" + styles.Label.Render("Save to: ") + m.path.View() + "\n")
	}

	b.WriteString("\n" + styles.Subtitle.Render("Result") + "\n")
	limit := m.visibleLines()
	for i, line := range m.output {
		if i == limit {
			b.WriteString(styles.Dimmed.Render(fmt.Sprintf("… %d more", len(m.output)-limit)) + "\n")
			break
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		style := styles.Success
		if m.statusErr {
			style = styles.Err
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	help := "tab field  ←→ change  enter generate  ctrl+y copy  ctrl+s save"
	if m.state == stateExportPath {
		help = "enter save  esc cancel"
	}
	b.WriteString("\n" + styles.Help.Render(help))
	return b.String()
}
