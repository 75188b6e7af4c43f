package render

import (
	"github.com/tOgg1/chatspan/internal/logging"
	"github.com/tOgg1/chatspan/internal/span"
)

var linkifyLog = logging.Component("render.linkify")

// StyleMode selects how data items are surfaced in the buffer.
type StyleMode int

const (
	// ModeLinkAttribute applies only the machine-actionable link target,
	// with no visible change.
	ModeLinkAttribute StyleMode = iota

	// ModeVisual applies underline plus the link foreground color.
	ModeVisual
)

// ApplyStyles walks the item list in ascending range order and applies
// link attributes for data items. Mention, referenced-user and
// unrevealed-spoiler items are skipped: structured text already carries
// their styling. Overlapping data items are all applied; the buffer's
// last-write-wins semantics decide the shared offsets.
func ApplyStyles(buf *StyledText, mode StyleMode, items []span.Item) {
	sorted := make([]span.Item, len(items))
	copy(sorted, items)
	span.Sort(sorted)

	// Furthest end styled so far. Diagnostic bookkeeping only; overlap is
	// allowed and resolved by the buffer.
	furthestEnd := 0

	for _, item := range sorted {
		switch item.Kind {
		case span.KindMention, span.KindReferencedUser, span.KindUnrevealedSpoiler:
			continue
		case span.KindData:
		default:
			continue
		}

		if item.Payload == "" {
			linkifyLog.Warn().Str("data_kind", string(item.DataKind)).
				Int("start", item.Range.Start).Int("end", item.Range.End).
				Msg("data item has empty payload; skipping")
			continue
		}

		if item.Range.Start < furthestEnd {
			linkifyLog.Debug().Int("start", item.Range.Start).Int("furthest_end", furthestEnd).
				Msg("data item overlaps previously styled range")
		}

		switch mode {
		case ModeVisual:
			buf.SetVisualLink(item.Range, item.Payload)
		default:
			buf.SetLink(item.Range, item.Payload)
		}

		if item.Range.End > furthestEnd {
			furthestEnd = item.Range.End
		}
	}
}
