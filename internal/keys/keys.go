package keys

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Action names used in the config file's keys section.
const (
	ActionToggle    = "toggle"
	ActionCancel    = "cancel"
	ActionZoomIn    = "zoom_in"
	ActionZoomOut   = "zoom_out"
	ActionZoomReset = "zoom_reset"
	ActionQuit      = "quit"
)

// KeyMap holds the shell's global shortcuts.
type KeyMap struct {
	Toggle    key.Binding
	Cancel    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Quit      key.Binding
}

// Default returns the built-in bindings. Terminals cannot report
// ctrl with "+" or "-", so zoom uses alt.
func Default() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+p", "ctrl+@"),
			key.WithHelp("ctrl+p", "tools"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("alt++", "alt+="),
			key.WithHelp("alt++", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("alt+-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("alt+0"),
			key.WithHelp("alt+0", "reset zoom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k *KeyMap) byAction() map[string]*key.Binding {
	return map[string]*key.Binding{
		ActionToggle:    &k.Toggle,
		ActionCancel:    &k.Cancel,
		ActionZoomIn:    &k.ZoomIn,
		ActionZoomOut:   &k.ZoomOut,
		ActionZoomReset: &k.ZoomReset,
		ActionQuit:      &k.Quit,
	}
}

// Override replaces the keys of the named actions. The help text keeps
// the description and shows the first configured key.
func (k KeyMap) Override(bindings map[string][]string) (KeyMap, error) {
	targets := k.byAction()

	// Sorted so the first unknown action reported is stable.
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		b, ok := targets[action]
		if !ok {
			return k, fmt.Errorf("unknown key action %q", action)
		}
		keys := slices.DeleteFunc(slices.Clone(bindings[action]), func(s string) bool {
			return strings.TrimSpace(s) == ""
		})
		if len(keys) == 0 {
			return k, fmt.Errorf("key action %q has no keys", action)
		}
		*b = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], b.Help().Desc),
		)
	}
	return k, nil
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ZoomIn, k.ZoomOut, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Cancel},
		{k.ZoomIn, k.ZoomOut, k.ZoomReset},
		{k.Quit},
	}
}
