package tokenfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"relex/internal/source"
	"relex/internal/token"
)

var (
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	payloadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	posStyle     = lipgloss.NewStyle().Faint(true)
)

const kindColumnWidth = 15

// FormatPretty writes one line per token: index, kind, payload if any,
// and the resolved start/end positions.
func FormatPretty(w io.Writer, tokens []token.Token, buf *source.Buffer, color bool) error {
	index := source.NewLineIndex(buf)
	for i, tok := range tokens {
		start := index.LineCol(tok.Span.Start)
		end := index.LineCol(tok.Span.End)

		kind := padKind(tok.Kind.String())
		pos := fmt.Sprintf("at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if color {
			kind = kindStyle.Render(kind)
			pos = posStyle.Render(pos)
		}

		if _, err := fmt.Fprintf(w, "%3d: %s", i+1, kind); err != nil {
			return err
		}
		if payload, ok := payloadString(tok.Lit); ok {
			quoted := fmt.Sprintf(" %q", payload)
			if color {
				quoted = payloadStyle.Render(quoted)
			}
			if _, err := io.WriteString(w, quoted); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " %s\n", pos); err != nil {
			return err
		}
	}
	return nil
}

// padKind pads the kind name to a fixed column, truncating oversized
// names with an ellipsis.
func padKind(name string) string {
	if runewidth.StringWidth(name) > kindColumnWidth {
		return runewidth.Truncate(name, kindColumnWidth, "...")
	}
	return runewidth.FillRight(name, kindColumnWidth)
}
