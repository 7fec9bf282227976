package styles

import "github.com/charmbracelet/lipgloss"

var (
	Pink    = lipgloss.Color("#FF2E97")
	Orange  = lipgloss.Color("#FF8C1A")
	Gray    = lipgloss.Color("#8A8F98")
	DimGray = lipgloss.Color("#3D4250")
	Green   = lipgloss.Color("#39FF14")
	Red     = lipgloss.Color("#FF3131")
	Cyan    = lipgloss.Color("#00F0FF")
	Ink     = lipgloss.Color("#0B0D12")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	Subtitle = lipgloss.NewStyle().
			Foreground(Cyan)

	Label = lipgloss.NewStyle().
		Foreground(Gray)

	Selected = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	// Hovered marks the launcher row under the mouse pointer.
	Hovered = lipgloss.NewStyle().
		Foreground(Ink).
		Background(Orange)

	Dimmed = lipgloss.NewStyle().
		Foreground(DimGray)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Err = lipgloss.NewStyle().
		Foreground(Red)

	Help = lipgloss.NewStyle().
		Foreground(DimGray).
		Italic(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2)

	// Overlay wraps the launcher. Its padding is part of the launcher's
	// mouse hit-testing, so change both together.
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Orange).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(Gray).
			Padding(0, 1)
)
