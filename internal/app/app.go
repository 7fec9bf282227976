// Package app is the shell: it hosts one tool at a time, the launcher
// overlay, and the global shortcuts.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/devtools/internal/config"
	"github.com/ryan-rushton/devtools/internal/keys"
	"github.com/ryan-rushton/devtools/internal/launcher"
	"github.com/ryan-rushton/devtools/internal/messages"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/scale"
	"github.com/ryan-rushton/devtools/internal/styles"
	"github.com/ryan-rushton/devtools/internal/tools"
	"github.com/ryan-rushton/devtools/internal/tools/base64conv"
	"github.com/ryan-rushton/devtools/internal/tools/jsonfmt"
	"github.com/ryan-rushton/devtools/internal/tools/uuidgen"
)

// Content size of the tool frame at 100% zoom. The frame never grows past
// the terminal.
const (
	baseWidth  = 96
	baseHeight = 30
)

// Box border plus padding, and the status bar line.
const (
	chromeX = 6
	chromeY = 5
)

// pendingExport is the export currently being written. gen is the tool
// generation that asked for it.
type pendingExport struct {
	path string
	gen  int
}

// Model is the top-level application model.
type Model struct {
	cfg      *config.Config
	keys     keys.KeyMap
	help     help.Model
	launcher launcher.Model
	overlay  bool

	active registry.ID
	tool   tools.Tool
	// gen increments every time a new tool instance is created.
	gen int

	scale      scale.Factor
	windowSize tea.WindowSizeMsg

	pending   *pendingExport
	status    string
	statusErr bool

	log *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := help.New()
	h.ShortSeparator = "  "
	m := Model{
		cfg:      cfg,
		keys:     cfg.KeyMap(),
		help:     h,
		launcher: launcher.New(),
		active:   cfg.Tool(),
		scale:    scale.New(cfg.ScaleFactor),
		log:      log,
	}
	m.tool = newTool(m.active, cfg)
	return m
}

// newTool builds a fresh instance of the tool id.
func newTool(id registry.ID, cfg *config.Config) tools.Tool {
	switch id {
	case registry.UUIDGenerator:
		version, _ := uuidgen.ParseVersion(cfg.UUIDVersion)
		return uuidgen.New(uuidgen.Options{Version: version, ExportDir: cfg.ExportDir})
	case registry.JSONBeautifier:
		return jsonfmt.New(jsonfmt.Options{Indent: cfg.Indent(), ExportDir: cfg.ExportDir})
	case registry.Base64Converter:
		return base64conv.New()
	}
	panic(fmt.Sprintf("app: no constructor for tool %d", id))
}

// Active returns the tool being shown.
func (m Model) Active() registry.ID { return m.active }

// OverlayOpen reports whether the launcher is visible.
func (m Model) OverlayOpen() bool { return m.overlay }

// Scale returns the current zoom factor.
func (m Model) Scale() scale.Factor { return m.scale }

func (m Model) Init() tea.Cmd {
	return m.tool.Init()
}

// contentSize is the area handed to the tool at the current zoom.
func (m Model) contentSize() tea.WindowSizeMsg {
	w, h := m.scale.Apply(baseWidth), m.scale.Apply(baseHeight)
	if m.windowSize.Width > 0 {
		w = min(w, max(1, m.windowSize.Width-chromeX))
	}
	if m.windowSize.Height > 0 {
		h = min(h, max(1, m.windowSize.Height-chromeY))
	}
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func (m Model) resizeTool() tea.Cmd {
	size := m.contentSize()
	return func() tea.Msg { return size }
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowSize = msg
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.launcher, cmd = m.launcher.Update(msg)
		return m, tea.Batch(cmd, m.updateTool(m.contentSize()))

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay {
			var cmd tea.Cmd
			m.launcher, cmd = m.launcher.Update(msg)
			return m, cmd
		}
		return m, m.updateTool(msg)

	case messages.ToolSelectedMsg:
		return m.selectTool(msg.Name)

	case messages.OverlayDismissedMsg:
		if m.overlay {
			m.closeOverlay()
		}
		return m, nil

	case messages.ExportRequestMsg:
		if m.pending != nil {
			m.log.Warn("export rejected", "path", msg.Path, "pending", m.pending.path)
			err := messages.ErrExportPending
			return m, func() tea.Msg {
				return messages.ExportFinishedMsg{Path: msg.Path, Summary: msg.Summary, Err: err}
			}
		}
		m.pending = &pendingExport{path: msg.Path, gen: m.gen}
		m.log.Info("export started", "path", msg.Path, "tool", m.active.String())
		return m, messages.Export(msg)

	case messages.ExportFinishedMsg:
		return m.finishExport(msg)
	}

	// Blinks and tool-private results reach both children.
	var cmd tea.Cmd
	m.launcher, cmd = m.launcher.Update(msg)
	return m, tea.Batch(cmd, m.updateTool(msg))
}

func (m *Model) updateTool(msg tea.Msg) tea.Cmd {
	updated, cmd := m.tool.Update(msg)
	if t, ok := updated.(tools.Tool); ok {
		m.tool = t
	}
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if m.overlay {
			m.closeOverlay()
			return m, nil
		}
		m.overlay = true
		return m, m.launcher.Focus()

	case m.overlay && key.Matches(msg, m.keys.Cancel):
		m.closeOverlay()
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.scale.Increment()
		return m.zoomed()
	case key.Matches(msg, m.keys.ZoomOut):
		m.scale.Decrement()
		return m.zoomed()
	case key.Matches(msg, m.keys.ZoomReset):
		m.scale.Reset()
		return m.zoomed()
	}

	if m.overlay {
		var cmd tea.Cmd
		m.launcher, cmd = m.launcher.Update(msg)
		return m, cmd
	}
	return m, m.updateTool(msg)
}

func (m Model) zoomed() (tea.Model, tea.Cmd) {
	m.log.Debug("zoom", "percent", m.scale.Percent())
	return m, m.resizeTool()
}

func (m *Model) closeOverlay() {
	m.overlay = false
	m.launcher.Reset()
}

func (m Model) selectTool(name string) (tea.Model, tea.Cmd) {
	id, ok := registry.Parse(name)
	if !ok {
		m.log.Warn("unknown tool selected", "name", name)
		return m, nil
	}
	m.closeOverlay()
	if id == m.active {
		return m, nil
	}

	m.log.Info("switching tool", "from", m.active.String(), "to", id.String())
	m.active = id
	m.tool = newTool(id, m.cfg)
	m.gen++
	return m, tea.Batch(m.tool.Init(), m.resizeTool())
}

func (m Model) finishExport(msg messages.ExportFinishedMsg) (tea.Model, tea.Cmd) {
	// Rejections are answered without touching the running export.
	if errors.Is(msg.Err, messages.ErrExportPending) {
		return m, m.updateTool(msg)
	}

	gen := m.gen
	if m.pending != nil {
		gen = m.pending.gen
	}
	m.pending = nil

	if msg.Err != nil {
		m.log.Error("export failed", "path", msg.Path, "err", msg.Err)
		m.setStatus("Export failed: "+msg.Err.Error(), true)
	} else {
		m.log.Info("export finished", "path", msg.Path, "summary", msg.Summary)
		m.setStatus(fmt.Sprintf("Saved %s to %s", msg.Summary, msg.Path), false)
	}

	if gen != m.gen {
		return m, nil
	}
	return m, m.updateTool(msg)
}

func (m Model) statusBar(width int) string {
	left := styles.Title.Render(m.tool.Title()) +
		styles.Label.Render(fmt.Sprintf("  %d%%", m.scale.Percent()))
	if m.status != "" {
		style := styles.Success
		if m.statusErr {
			style = styles.Err
		}
		left += "  " + style.Render(m.status)
	}
	right := m.help.View(m.keys)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.StatusBar.Render(left)
	}
	return styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// clip keeps the first n lines of s.
func clip(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) View() string {
	size := m.contentSize()
	frame := styles.Box.
		Width(size.Width + chromeX - 2).
		Render(clip(m.tool.View(), size.Height))

	var view string
	if m.windowSize.Width == 0 || m.windowSize.Height == 0 {
		view = frame + "\n" + m.statusBar(lipgloss.Width(frame))
	} else {
		height := m.windowSize.Height - 1
		body := lipgloss.Place(m.windowSize.Width, height,
			lipgloss.Center, lipgloss.Top, clip(frame, height))
		view = body + "\n" + m.statusBar(m.windowSize.Width)
	}

	if m.overlay {
		x, y := m.launcher.Origin()
		view = splice(view, m.launcher.View(), x, y)
	}
	return view
}
