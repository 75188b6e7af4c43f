package styles

import "github.com/charmbracelet/lipgloss"

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
}

// SpanColors defines colors for interactive spans inside a bubble.
type SpanColors struct {
	Link            string
	Mention         string
	MentionBg       string
	SpoilerMask     string
	SearchMatch     string
	SearchMatchBg   string
	PlaceholderText string
}

// BubbleColors defines colors for bubble chrome.
type BubbleColors struct {
	Own    string
	Other  string
	Sender string
}

// Theme defines the chatspan style/theme tokens.
type Theme struct {
	Name        string
	BorderStyle string // "rounded", "sharp", "hidden"

	Base   BaseColors
	Span   SpanColors
	Bubble BubbleColors
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the named theme, falling back to the default palette.
func Lookup(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return DefaultTheme
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Muted))
}

// LinkStyle is the visual style for linkified spans: underline plus the
// link foreground color.
func (t Theme) LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Span.Link)).Underline(true)
}

// MentionStyle is the visual style for @mention spans.
func (t Theme) MentionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Span.Mention)).
		Background(lipgloss.Color(t.Span.MentionBg)).
		Bold(true)
}

// SpoilerStyle is the visual style for concealed spoiler spans. The
// renderer masks the glyphs; this only colors the mask.
func (t Theme) SpoilerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Span.SpoilerMask))
}

// SearchMatchStyle is the overlay style for search highlight spans.
func (t Theme) SearchMatchStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Span.SearchMatch)).
		Background(lipgloss.Color(t.Span.SearchMatchBg)).
		Bold(true)
}

// PlaceholderStyle renders the oversize/deleted placeholder labels.
func (t Theme) PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Span.PlaceholderText)).Italic(true)
}

func (t Theme) borderKind() lipgloss.Border {
	switch t.BorderStyle {
	case "sharp":
		return lipgloss.NormalBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
