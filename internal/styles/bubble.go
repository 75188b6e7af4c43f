package styles

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// BubbleStyles contains pre-built styles for chat bubble chrome. Span-level
// styling happens in the render pipeline; this only draws the frame around
// already-styled content.
type BubbleStyles struct {
	Theme Theme

	Own       lipgloss.Style
	Other     lipgloss.Style
	Sender    lipgloss.Style
	Timestamp lipgloss.Style
}

// NewBubbleStyles builds a reusable style set for bubbles.
func NewBubbleStyles(theme Theme) BubbleStyles {
	border := theme.borderKind()
	return BubbleStyles{
		Theme: theme,
		Own: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(theme.Bubble.Own)).
			Padding(0, 1),
		Other: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(theme.Bubble.Other)).
			Padding(0, 1),
		Sender:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Bubble.Sender)).Bold(true),
		Timestamp: theme.mutedStyle(),
	}
}

// RenderHeader renders the sender line above a bubble.
func (s BubbleStyles) RenderHeader(sender string, ts time.Time) string {
	name := strings.TrimSpace(sender)
	if name == "" {
		name = "unknown"
	}
	head := s.Sender.Render(name)
	if !ts.IsZero() {
		head += " " + s.Timestamp.Render(ts.Format("15:04"))
	}
	return head
}

// RenderBubble frames already-styled body content.
func (s BubbleStyles) RenderBubble(content string, outgoing bool) string {
	if outgoing {
		return s.Own.Render(content)
	}
	return s.Other.Render(content)
}
