package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth  = 100
	descColOffset = 4
)

// RenderMarkdown renders a document body for the terminal: headings are
// emphasized and fenced code blocks are syntax highlighted. Everything
// else passes through untouched.
func RenderMarkdown(body string) string {
	var out strings.Builder

	var highlighter *Highlighter
	inFence := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				inFence = true
				highlighter = NewHighlighter(strings.TrimPrefix(trimmed, "```"))
			} else {
				inFence = false
				highlighter = nil
			}
			out.WriteString(Styled(SourceStyle, line))
			out.WriteByte('\n')
			continue
		}

		switch {
		case inFence:
			if ColorEnabled() {
				out.WriteString(highlighter.HighlightLine(line))
			} else {
				out.WriteString(line)
			}
		case strings.HasPrefix(trimmed, "#"):
			out.WriteString(Styled(HeadingStyle, line))
		default:
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderList renders name/description rows in two aligned columns, with
// descriptions word-wrapped to the terminal width.
func RenderList(rows [][2]string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	nameWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > nameWidth {
			nameWidth = w
		}
	}

	descWidth := width - nameWidth - descColOffset
	if descWidth < 20 {
		descWidth = 20
	}

	var out strings.Builder
	for _, row := range rows {
		name, desc := row[0], row[1]
		wrapped := wordwrap.String(desc, descWidth)

		lines := strings.Split(wrapped, "\n")
		pad := nameWidth - runewidth.StringWidth(name)
		fmt.Fprintf(&out, "  %s%s  %s\n",
			Styled(NameStyle, name), strings.Repeat(" ", pad), Styled(DescStyle, lines[0]))
		indent := strings.Repeat(" ", nameWidth+descColOffset)
		for _, line := range lines[1:] {
			fmt.Fprintf(&out, "%s%s\n", indent, Styled(DescStyle, line))
		}
	}

	return out.String()
}
