package span

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tOgg1/chatspan/internal/logging"
	"github.com/tOgg1/chatspan/internal/message"
)

func logComponent(name string) zerolog.Logger {
	return logging.Component(name)
}

var reconcileLog = logComponent("span.reconcile")

// detectMu serializes the whole detection call: detector build, scan and
// truncation filtering. Measurement runs off the render goroutine
// concurrently with rendering, and the reconciliation path is not
// reentrant, so callers serialize globally rather than per message.
var detectMu sync.Mutex

// detectorCache holds the two detector singletons, indexed by allowLinks.
// Entries are built at most once under detectMu; a failed build leaves a
// nil entry, which every caller must treat as "no pattern matches".
var (
	detectorCache [2]*detector
	detectorBuilt [2]bool
)

// cachedDetector returns the detector for the link configuration, building
// it on first use. Callers must hold detectMu.
func cachedDetector(allowLinks bool) *detector {
	idx := 0
	if allowLinks {
		idx = 1
	}
	if !detectorBuilt[idx] {
		detectorBuilt[idx] = true
		d, err := newDetector(allowLinks)
		if err != nil {
			detectorLog.Warn().Err(err).Bool("allow_links", allowLinks).
				Msg("detector construction failed; pattern matching disabled for this configuration")
			d = nil
		}
		detectorCache[idx] = d
	}
	return detectorCache[idx]
}

// Params carries one reconciliation request.
type Params struct {
	// Text is the displayed plain text. Ignored when Ranges is set, whose
	// own plain string takes precedence.
	Text string

	// Ranges is the structured form of the body, when it has one.
	Ranges *message.BodyRanges

	// PendingRequest gates all detection: while the sender relationship is
	// unconfirmed nothing in the body may become interactive.
	PendingRequest bool

	// AllowLinks selects the detector configuration with link matching.
	AllowLinks bool

	// WasTruncated marks that Text was cut short with the truncation
	// suffix, enabling the truncation artifact filter.
	WasTruncated bool

	// TruncationSuffix overrides message.TruncationSuffix when the caller
	// renders a different marker. Empty means the default.
	TruncationSuffix string

	// Revealed is the set of spoiler IDs the user has unmasked.
	Revealed RevealedSpoilers

	// OwnerMessageID identifies the message owning emitted spoiler items.
	OwnerMessageID uuid.UUID

	// SpoilerReceipts gates emission of unrevealed-spoiler items. When
	// off, spoiler ranges render as plain revealed text.
	SpoilerReceipts bool
}

// DetectItems reconciles every annotation source for one body into a single
// item list: tagged ranges from the structured body, pattern-detector
// matches filtered for truncation artifacts, all behind the pending-request
// gate. Safe to call from any goroutine; the final ascending sort is left
// to the consumer (style application sorts before walking).
func DetectItems(p Params) []Item {
	if p.PendingRequest {
		return nil
	}

	detectMu.Lock()
	defer detectMu.Unlock()

	det := cachedDetector(p.AllowLinks)

	suffix := p.TruncationSuffix
	if suffix == "" {
		suffix = message.TruncationSuffix
	}

	text := p.Text
	var items []Item

	if p.Ranges != nil {
		text = p.Ranges.Text
		for _, m := range p.Ranges.Mentions {
			items = append(items, MentionItem(m.Range, m.ParticipantID))
		}
		for _, s := range p.Ranges.Spoilers {
			if !p.SpoilerReceipts {
				continue
			}
			if p.Revealed.Contains(s.ID) {
				continue
			}
			items = append(items, SpoilerItem(s.Range, s.ID, p.OwnerMessageID))
		}
	}

	if det == nil {
		return items
	}

	for _, m := range det.scan(text) {
		if discardTruncated(m.r, p.WasTruncated, text, suffix) {
			reconcileLog.Debug().Str("kind", string(m.kind)).
				Int("start", m.r.Start).Int("end", m.r.End).
				Msg("dropping detector match at truncation boundary")
			continue
		}
		items = append(items, DataItem(m.kind, m.r, m.payload))
	}

	return items
}
