package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// splice draws box over base with its top-left corner at (x, y). Styled
// text on either side of the box keeps its escape sequences. Lines of box
// that fall outside base are dropped.
func splice(base, box string, x, y int) string {
	if box == "" {
		return base
	}
	x = max(x, 0)

	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := ansi.StringWidth(boxLines[0])

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		line := lines[row]
		width := ansi.StringWidth(line)

		var b strings.Builder
		if x > 0 {
			left := ansi.Truncate(line, x, "")
			b.WriteString(left)
			// Short lines are padded so the box lands on its column.
			if gap := x - ansi.StringWidth(left); gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		b.WriteString(sgrReset)
		b.WriteString(boxLine)
		b.WriteString(sgrReset)
		if end := x + boxWidth; end < width {
			b.WriteString(ansi.TruncateLeft(line, end, ""))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
