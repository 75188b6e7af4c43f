package render

import (
	"github.com/google/uuid"

	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/span"
)

// Placeholder labels for non-text body variants. No detection runs on
// placeholders.
const (
	PlaceholderOversize = "Downloading long message…"
	PlaceholderDeleted  = "This message was deleted"
)

// Context is the per-pass input the component cannot derive from the body
// itself: viewer state, search, privacy gating and feature knobs.
type Context struct {
	// Expanded disables snippet truncation for this pass.
	Expanded bool

	// SearchText is the live search query; applied only past the minimum
	// length gate.
	SearchText string

	// Revealed is the set of spoiler IDs unmasked for this message.
	Revealed span.RevealedSpoilers

	// PendingRequest suppresses all span detection while the sender
	// relationship is unconfirmed.
	PendingRequest bool

	// HasTapForMore marks that the bubble shows a tap-for-more affordance.
	HasTapForMore bool

	// AllowLinks selects the detector configuration with link matching.
	AllowLinks bool

	// SpoilerReceipts gates unrevealed-spoiler items.
	SpoilerReceipts bool

	// OwnerMessageID identifies the message for emitted spoiler items.
	OwnerMessageID uuid.UUID

	// SnippetRunes overrides the collapsed-bubble rune budget; zero means
	// message.DefaultSnippetRunes.
	SnippetRunes int

	// MinSearchRunes overrides the search length gate; zero means
	// DefaultMinSearchRunes.
	MinSearchRunes int
}

// State is the immutable per-render-pass snapshot handed to measurement and
// drawing. Built once per pass, never mutated, superseded by the next pass.
type State struct {
	Variant message.Variant

	// DisplayText is the resolved text for this pass; the placeholder
	// label for non-text variants.
	DisplayText  string
	WasTruncated bool

	// Ranges is the structured form of the body when present, kept so the
	// styled buffer can re-apply upstream styling.
	Ranges *message.BodyRanges

	SearchText     string
	Revealed       span.RevealedSpoilers
	PendingRequest bool

	// NeedsStyledText selects the heavier attributed-text path over the
	// cheap plain-label path.
	NeedsStyledText bool

	// DedicatedCellOK reports whether a reusable fixed-layout cell may
	// render this state.
	DedicatedCellOK bool

	// Items is the reconciled interactive item list, ascending by range
	// start.
	Items []span.Item

	minSearchRunes int
}

// BuildState resolves the body variant, runs span reconciliation and
// packages the snapshot for one render pass.
func BuildState(body message.Body, ctx Context) State {
	switch body.Variant {
	case message.VariantOversize:
		return placeholderState(body.Variant, PlaceholderOversize)
	case message.VariantDeleted:
		return placeholderState(body.Variant, PlaceholderDeleted)
	case message.VariantText:
	default:
		return placeholderState(body.Variant, "")
	}

	structured := body.IsStructured()

	displayText := body.Text
	wasTruncated := false
	if !structured {
		snippet := ctx.SnippetRunes
		if snippet <= 0 {
			snippet = message.DefaultSnippetRunes
		}
		displayText, wasTruncated = message.Truncate(body.Text, snippet, ctx.Expanded)
	}

	var ranges *message.BodyRanges
	if structured {
		ranges = body.Ranges
		displayText = ranges.Text
	}

	items := span.DetectItems(span.Params{
		Text:            displayText,
		Ranges:          ranges,
		PendingRequest:  ctx.PendingRequest,
		AllowLinks:      ctx.AllowLinks,
		WasTruncated:    wasTruncated,
		Revealed:        ctx.Revealed,
		OwnerMessageID:  ctx.OwnerMessageID,
		SpoilerReceipts: ctx.SpoilerReceipts,
	})
	span.Sort(items)

	searchActive := SearchActive(ctx.SearchText, ctx.MinSearchRunes)

	return State{
		Variant:         message.VariantText,
		DisplayText:     displayText,
		WasTruncated:    wasTruncated,
		Ranges:          ranges,
		SearchText:      ctx.SearchText,
		Revealed:        ctx.Revealed,
		PendingRequest:  ctx.PendingRequest,
		NeedsStyledText: structured || searchActive || len(items) > 0,
		DedicatedCellOK: !structured && !searchActive && !ctx.HasTapForMore,
		Items:           items,
		minSearchRunes:  ctx.MinSearchRunes,
	}
}

func placeholderState(variant message.Variant, label string) State {
	return State{
		Variant:         variant,
		DisplayText:     label,
		NeedsStyledText: false,
		DedicatedCellOK: false,
	}
}

// Compose builds the styled-text buffer for the pass: upstream styling from
// the structured body, linkified data items, then the search overlay.
// Callers on the cheap path (NeedsStyledText false) should render
// DisplayText directly instead.
func (s State) Compose(mode StyleMode) *StyledText {
	var buf *StyledText
	if s.Ranges != nil {
		buf = NewStyledBody(s.Ranges, s.Revealed)
	} else {
		buf = NewStyledText(s.DisplayText)
	}
	ApplyStyles(buf, mode, s.Items)
	HighlightSearch(buf, s.SearchText, s.minSearchRunes)
	return buf
}

// ItemAt surfaces the item containing a tap offset, if any.
func (s State) ItemAt(offset int) (span.Item, bool) {
	return span.ItemAt(s.Items, offset)
}
