// Package span finds the interactive spans inside a message body: links,
// addresses and phone numbers from the pattern detector, plus mention and
// unrevealed-spoiler ranges carried by structured bodies. The reconciled
// item list drives styling and tap routing downstream.
package span

import (
	"sort"

	"github.com/google/uuid"

	"github.com/tOgg1/chatspan/internal/message"
)

// Kind discriminates the interactive item union.
type Kind int

const (
	// KindMention is an @mention of a conversation member.
	KindMention Kind = iota

	// KindUnrevealedSpoiler is a spoiler range the user has not unmasked.
	KindUnrevealedSpoiler

	// KindData is a pattern-detector match (link, address, phone, date).
	KindData

	// KindReferencedUser is a pre-styled pass-through span; style
	// application never touches it.
	KindReferencedUser
)

// String returns the kind name for logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindMention:
		return "mention"
	case KindUnrevealedSpoiler:
		return "spoiler"
	case KindData:
		return "data"
	case KindReferencedUser:
		return "referenced-user"
	default:
		return "unknown"
	}
}

// DataKind classifies a pattern-detector match.
type DataKind string

const (
	DataLink    DataKind = "link"
	DataAddress DataKind = "address"
	DataPhone   DataKind = "phone"
	DataDate    DataKind = "date"
)

// Item is one interactive span. Kind selects which of the remaining fields
// are meaningful: ParticipantID for mentions, SpoilerID/OwnerMessageID for
// unrevealed spoilers, DataKind/Payload for detector matches.
type Item struct {
	Kind  Kind          `json:"kind"`
	Range message.Range `json:"range"`

	ParticipantID uuid.UUID `json:"participant_id,omitempty"`

	SpoilerID      int       `json:"spoiler_id,omitempty"`
	OwnerMessageID uuid.UUID `json:"owner_message_id,omitempty"`

	DataKind DataKind `json:"data_kind,omitempty"`
	Payload  string   `json:"payload,omitempty"`
}

// MentionItem builds a mention item.
func MentionItem(r message.Range, participantID uuid.UUID) Item {
	return Item{Kind: KindMention, Range: r, ParticipantID: participantID}
}

// SpoilerItem builds an unrevealed-spoiler item owned by a message.
func SpoilerItem(r message.Range, spoilerID int, ownerMessageID uuid.UUID) Item {
	return Item{Kind: KindUnrevealedSpoiler, Range: r, SpoilerID: spoilerID, OwnerMessageID: ownerMessageID}
}

// DataItem builds a detector-match item with its resolved payload.
func DataItem(kind DataKind, r message.Range, payload string) Item {
	return Item{Kind: KindData, Range: r, DataKind: kind, Payload: payload}
}

// ReferencedUserItem builds a pass-through item that is already styled.
func ReferencedUserItem(r message.Range) Item {
	return Item{Kind: KindReferencedUser, Range: r}
}

// Sort orders items ascending by range start, ties broken by range end.
// Style application and hit testing both assume this order.
func Sort(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Range.Start != items[j].Range.Start {
			return items[i].Range.Start < items[j].Range.Start
		}
		return items[i].Range.End < items[j].Range.End
	})
}

// ItemAt returns the first item in sort order whose range contains the byte
// offset, for tap and long-press dispatch. The bool reports whether any
// item matched.
func ItemAt(items []Item, offset int) (Item, bool) {
	for _, item := range items {
		if item.Range.Contains(offset) {
			return item, true
		}
	}
	return Item{}, false
}

// RevealedSpoilers is the per-message set of spoiler IDs the user has
// chosen to unmask.
type RevealedSpoilers map[int]struct{}

// NewRevealedSpoilers builds a set from spoiler IDs.
func NewRevealedSpoilers(ids ...int) RevealedSpoilers {
	set := make(RevealedSpoilers, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the spoiler ID has been revealed.
func (s RevealedSpoilers) Contains(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s[id]
	return ok
}

// Reveal adds a spoiler ID to the set.
func (s RevealedSpoilers) Reveal(id int) {
	if s != nil {
		s[id] = struct{}{}
	}
}
