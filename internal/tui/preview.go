// Package tui is the interactive conversation preview: bubbles with live
// span styling, a search box, spoiler reveal toggling and a pending-request
// simulation.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/chatspan/internal/config"
	"github.com/tOgg1/chatspan/internal/fixture"
	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/render"
	"github.com/tOgg1/chatspan/internal/span"
	"github.com/tOgg1/chatspan/internal/styles"
)

// Model is the preview TUI model.
type Model struct {
	conv    *fixture.Conversation
	cfg     *config.Config
	theme   styles.Theme
	bubbles styles.BubbleStyles

	width  int
	height int

	selected int
	expanded map[int]bool
	revealed map[int]span.RevealedSpoilers
	pending  bool

	searching bool
	query     string

	quitting bool
}

// New builds the preview model for a conversation.
func New(conv *fixture.Conversation, cfg *config.Config) Model {
	theme := styles.Lookup(cfg.TUI.Theme)
	revealed := make(map[int]span.RevealedSpoilers, len(conv.Messages))
	for i, msg := range conv.Messages {
		revealed[i] = msg.Revealed()
	}
	return Model{
		conv:     conv,
		cfg:      cfg,
		theme:    theme,
		bubbles:  styles.NewBubbleStyles(theme),
		expanded: make(map[int]bool),
		revealed: revealed,
		pending:  conv.PendingRequest,
	}
}

// Run launches the preview program.
func Run(conv *fixture.Conversation, cfg *config.Config) error {
	program := tea.NewProgram(New(conv, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.query = ""
		case "enter":
			m.searching = false
		case "backspace":
			if len(m.query) > 0 {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.query += string(msg.Runes)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		if m.selected < len(m.conv.Messages)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "/":
		m.searching = true
	case "esc":
		m.query = ""
	case "r":
		m.toggleReveal(m.selected)
	case "e":
		m.expanded[m.selected] = !m.expanded[m.selected]
	case "p":
		m.pending = !m.pending
	}
	return m, nil
}

// toggleReveal flips every spoiler in the selected message between hidden
// and revealed.
func (m Model) toggleReveal(index int) {
	if index < 0 || index >= len(m.conv.Messages) {
		return
	}
	msg := m.conv.Messages[index]
	if len(msg.Spoilers) == 0 {
		return
	}
	set := m.revealed[index]
	if set == nil {
		set = span.NewRevealedSpoilers()
		m.revealed[index] = set
	}
	allRevealed := true
	for _, sp := range msg.Spoilers {
		if !set.Contains(sp.ID) {
			allRevealed = false
			break
		}
	}
	if allRevealed {
		m.revealed[index] = span.NewRevealedSpoilers()
		return
	}
	for _, sp := range msg.Spoilers {
		set.Reveal(sp.ID)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	bubbleWidth := m.width - 8
	if m.cfg.TUI.Width > 0 && m.cfg.TUI.Width < bubbleWidth {
		bubbleWidth = m.cfg.TUI.Width
	}
	if bubbleWidth < 16 {
		bubbleWidth = 16
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	for i, msg := range m.conv.Messages {
		state := render.BuildState(msg.Body(), render.Context{
			Expanded:        m.expanded[i],
			SearchText:      m.query,
			Revealed:        m.revealed[i],
			PendingRequest:  m.pending,
			AllowLinks:      m.cfg.Detection.AllowLinks,
			SpoilerReceipts: m.cfg.Detection.SpoilerReceipts,
			HasTapForMore:   false,
			OwnerMessageID:  msg.ID,
			SnippetRunes:    m.cfg.Detection.SnippetRunes,
			MinSearchRunes:  m.cfg.Detection.MinSearchRunes,
		})

		var body string
		switch {
		case state.Variant != message.VariantText:
			body = m.theme.PlaceholderStyle().Render(state.DisplayText)
		case state.NeedsStyledText:
			body = render.ANSI(state.Compose(render.ModeVisual), m.theme, bubbleWidth)
		default:
			body = state.DisplayText
		}

		cursor := "  "
		if i == m.selected {
			cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Base.Accent)).Render("▸ ")
		}

		header := m.bubbles.RenderHeader(msg.From, msg.Time)
		if !m.cfg.TUI.ShowTimestamps {
			header = m.bubbles.Sender.Render(msg.From)
		}
		b.WriteString(cursor + header + m.renderItemCount(state) + "\n")
		b.WriteString(indent(m.bubbles.RenderBubble(body, msg.Outgoing), "  "))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Base.Accent)).Render("chatspan preview")
	name := m.conv.Name
	if name == "" {
		name = "conversation"
	}
	status := ""
	if m.pending {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Span.SearchMatchBg)).Render("  [message request pending - detection off]")
	}
	return fmt.Sprintf("%s - %s%s", title, name, status)
}

func (m Model) renderItemCount(state render.State) string {
	if len(state.Items) == 0 {
		return ""
	}
	return m.theme.PlaceholderStyle().Render(fmt.Sprintf("  (%d items)", len(state.Items)))
}

func (m Model) renderFooter() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Base.Muted))
	if m.searching {
		return muted.Render("search: ") + m.query + "_"
	}
	line := "j/k move · / search · r reveal spoilers · e expand · p toggle pending · q quit"
	if strings.TrimSpace(m.query) != "" {
		line = fmt.Sprintf("search %q · esc clear · %s", m.query, line)
	}
	return muted.Render(line)
}

func indent(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}
