package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tOgg1/chatspan/internal/styles"
)

// ANSI renders a styled-text buffer to terminal output: each uniform
// segment gets a lipgloss style derived from its attributes, concealed
// spoiler glyphs are masked, then the result is word-wrapped to width.
// Width <= 0 disables wrapping.
func ANSI(buf *StyledText, theme styles.Theme, width int) string {
	var b strings.Builder
	for _, seg := range buf.Segments() {
		text := seg.Text
		if seg.Attr.SpoilerConcealed {
			text = maskSpoilerText(text)
		}
		b.WriteString(segmentStyle(seg.Attr, theme).Render(text))
	}

	out := b.String()
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	return out
}

func segmentStyle(attr Attributes, theme styles.Theme) lipgloss.Style {
	// Overlay precedence: search highlight over everything, then the
	// pre-styled structured spans, then link styling.
	switch {
	case attr.SearchMatch:
		return theme.SearchMatchStyle()
	case attr.SpoilerConcealed:
		return theme.SpoilerStyle()
	case attr.Mention:
		return theme.MentionStyle()
	}

	style := lipgloss.NewStyle()
	if attr.LinkColored {
		style = style.Foreground(lipgloss.Color(theme.Span.Link))
	}
	if attr.Underline {
		style = style.Underline(true)
	}
	if attr.Bold {
		style = style.Bold(true)
	}
	if attr.Italic {
		style = style.Italic(true)
	}
	if attr.Strikethrough {
		style = style.Strikethrough(true)
	}
	if attr.Monospace {
		style = style.Faint(true)
	}
	return style
}

// maskSpoilerText replaces every non-newline rune with a block glyph so the
// concealed text's length survives but its content does not.
func maskSpoilerText(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('█')
	}
	return b.String()
}
