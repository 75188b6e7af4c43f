package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tOgg1/chatspan/internal/config"
	"github.com/tOgg1/chatspan/internal/render"
	"github.com/tOgg1/chatspan/internal/span"
)

func newDetectCmd(cfg *config.Config) *cobra.Command {
	var (
		asJSON   bool
		search   string
		expanded bool
		pending  bool
	)

	cmd := &cobra.Command{
		Use:   "detect [fixture.json]",
		Short: "Print the reconciled interactive items for each message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := loadConversation(args)
			if err != nil {
				return err
			}

			type result struct {
				MessageID uuid.UUID   `json:"message_id"`
				From      string      `json:"from"`
				Variant   string      `json:"variant"`
				Truncated bool        `json:"truncated,omitempty"`
				Items     []span.Item `json:"items"`
			}

			results := make([]result, 0, len(conv.Messages))
			for _, msg := range conv.Messages {
				state := render.BuildState(msg.Body(), render.Context{
					Expanded:        expanded,
					SearchText:      search,
					Revealed:        msg.Revealed(),
					PendingRequest:  pending || conv.PendingRequest,
					AllowLinks:      cfg.Detection.AllowLinks,
					SpoilerReceipts: cfg.Detection.SpoilerReceipts,
					OwnerMessageID:  msg.ID,
					SnippetRunes:    cfg.Detection.SnippetRunes,
					MinSearchRunes:  cfg.Detection.MinSearchRunes,
				})
				results = append(results, result{
					MessageID: msg.ID,
					From:      msg.From,
					Variant:   state.Variant.String(),
					Truncated: state.WasTruncated,
					Items:     state.Items,
				})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			headers := []string{"MESSAGE", "FROM", "KIND", "RANGE", "DETAIL"}
			rows := make([][]string, 0, len(results))
			for _, res := range results {
				if len(res.Items) == 0 {
					rows = append(rows, []string{shortID(res.MessageID), res.From, "-", "-", "(no items)"})
					continue
				}
				for _, item := range res.Items {
					rows = append(rows, []string{
						shortID(res.MessageID),
						res.From,
						itemKindLabel(item),
						fmt.Sprintf("[%d,%d)", item.Range.Start, item.Range.End),
						itemDetail(item),
					})
				}
			}
			return writeTable(cmd.OutOrStdout(), headers, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&search, "search", "", "Search query to evaluate against each body")
	cmd.Flags().BoolVar(&expanded, "expanded", false, "Disable snippet truncation")
	cmd.Flags().BoolVar(&pending, "pending", false, "Treat the conversation as a pending message request")

	return cmd
}

func itemKindLabel(item span.Item) string {
	if item.Kind == span.KindData {
		return string(item.DataKind)
	}
	return item.Kind.String()
}

func itemDetail(item span.Item) string {
	switch item.Kind {
	case span.KindMention:
		return "participant " + shortID(item.ParticipantID)
	case span.KindUnrevealedSpoiler:
		return fmt.Sprintf("spoiler %d", item.SpoilerID)
	case span.KindData:
		return item.Payload
	default:
		return ""
	}
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
