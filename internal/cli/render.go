package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tOgg1/chatspan/internal/config"
	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/render"
	"github.com/tOgg1/chatspan/internal/styles"
)

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var (
		search   string
		expanded bool
		width    int
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "render [fixture.json]",
		Short: "Render a conversation as styled bubbles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConversation(args)
			if err != nil {
				return err
			}

			theme := styles.Lookup(cfg.TUI.Theme)
			bubbles := styles.NewBubbleStyles(theme)

			bubbleWidth := resolveWidth(width, cfg.TUI.Width)

			mode := render.ModeVisual
			if plain {
				mode = render.ModeLinkAttribute
			}

			out := cmd.OutOrStdout()
			for _, msg := range conv.Messages {
				state := render.BuildState(msg.Body(), render.Context{
					Expanded:        expanded,
					SearchText:      search,
					Revealed:        msg.Revealed(),
					PendingRequest:  conv.PendingRequest,
					AllowLinks:      cfg.Detection.AllowLinks,
					SpoilerReceipts: cfg.Detection.SpoilerReceipts,
					OwnerMessageID:  msg.ID,
					SnippetRunes:    cfg.Detection.SnippetRunes,
					MinSearchRunes:  cfg.Detection.MinSearchRunes,
				})

				var body string
				switch {
				case state.Variant != message.VariantText:
					body = theme.PlaceholderStyle().Render(state.DisplayText)
				case state.NeedsStyledText:
					body = render.ANSI(state.Compose(mode), theme, bubbleWidth)
				default:
					// Cheap plain-label path: no attributed buffer needed.
					body = wordwrap.String(state.DisplayText, bubbleWidth)
				}

				if cfg.TUI.ShowTimestamps {
					fmt.Fprintln(out, bubbles.RenderHeader(msg.From, msg.Time))
				} else {
					fmt.Fprintln(out, bubbles.RenderHeader(msg.From, zeroTime))
				}
				fmt.Fprintln(out, bubbles.RenderBubble(body, msg.Outgoing))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search query to highlight")
	cmd.Flags().BoolVar(&expanded, "expanded", false, "Disable snippet truncation")
	cmd.Flags().IntVar(&width, "width", 0, "Bubble width (0 = terminal width)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Apply link attributes without visible link styling")

	return cmd
}

func resolveWidth(flagWidth, cfgWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if cfgWidth > 0 {
		return cfgWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 8 {
		// Leave room for bubble borders and padding.
		return w - 6
	}
	return 72
}

var zeroTime time.Time
