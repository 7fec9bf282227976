package tools

import tea "github.com/charmbracelet/bubbletea"

// Tool is a screen hosted by the shell. Title must equal the tool's
// catalog name so launcher selections resolve back to it.
type Tool interface {
	tea.Model
	Title() string
}
