package jsonfmt

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// highlighter colors JSON text using a chroma style.
type highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

func newHighlighter() *highlighter {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &highlighter{
		lexer: chroma.Coalesce(lexer),
		style: chromastyles.Get("catppuccin-mocha"),
	}
}

// highlight colors text line by line. Formatted JSON never has a token
// spanning lines, and styling whole lines keeps lipgloss from padding.
func (h *highlighter) highlight(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = h.line(line)
	}
	return strings.Join(lines, "\n")
}

func (h *highlighter) line(line string) string {
	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		text := strings.TrimSuffix(token.Value, "\n")
		if !entry.Colour.IsSet() {
			result.WriteString(text)
			continue
		}
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			styled = styled.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			styled = styled.Italic(true)
		}
		result.WriteString(styled.Render(text))
	}
	return result.String()
}
