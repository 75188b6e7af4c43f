package span

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/chatspan/internal/message"
)

func TestDetectItems_PendingRequestGate(t *testing.T) {
	t.Parallel()

	ranges := &message.BodyRanges{
		Text: "@alice visit http://example.com",
		Mentions: []message.MentionRange{
			{Range: message.Range{Start: 0, End: 6}, ParticipantID: uuid.New()},
		},
		Spoilers: []message.SpoilerRange{
			{Range: message.Range{Start: 7, End: 12}, ID: 1},
		},
	}

	cases := []Params{
		{Text: "visit http://example.com now", PendingRequest: true, AllowLinks: true},
		{Ranges: ranges, PendingRequest: true, AllowLinks: true, SpoilerReceipts: true},
		{Text: "call 555-123-4567", PendingRequest: true},
	}
	for _, p := range cases {
		require.Empty(t, DetectItems(p))
	}
}

func TestDetectItems_PlainLink(t *testing.T) {
	t.Parallel()

	text := "visit http://example.com now"
	items := DetectItems(Params{Text: text, AllowLinks: true})

	require.Len(t, items, 1)
	require.Equal(t, KindData, items[0].Kind)
	require.Equal(t, DataLink, items[0].DataKind)
	require.Equal(t, "http://example.com", text[items[0].Range.Start:items[0].Range.End])
	require.Equal(t, "http://example.com", items[0].Payload)
}

func TestDetectItems_LinksSuppressed(t *testing.T) {
	t.Parallel()

	items := DetectItems(Params{Text: "visit http://example.com now", AllowLinks: false})
	require.Empty(t, items)

	// Non-link checks stay active in the link-suppressed configuration.
	items = DetectItems(Params{Text: "call 555-123-4567 now", AllowLinks: false})
	require.Len(t, items, 1)
	require.Equal(t, DataPhone, items[0].DataKind)
}

func TestDetectItems_TruncatedPhoneDiscarded(t *testing.T) {
	t.Parallel()

	text := "call 555-123-4567" + message.TruncationSuffix
	items := DetectItems(Params{Text: text, AllowLinks: true, WasTruncated: true})
	require.Empty(t, items)

	// The same text without the truncation flag keeps the match.
	items = DetectItems(Params{Text: text, AllowLinks: true})
	require.Len(t, items, 1)
	require.Equal(t, DataPhone, items[0].DataKind)
}

func TestDetectItems_TruncationKeepsEarlierMatches(t *testing.T) {
	t.Parallel()

	text := "see http://example.com or call 555-123-4567" + message.TruncationSuffix
	items := DetectItems(Params{Text: text, AllowLinks: true, WasTruncated: true})

	require.Len(t, items, 1)
	require.Equal(t, DataLink, items[0].DataKind)
}

func TestDetectItems_SpoilerGating(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	ranges := &message.BodyRanges{
		Text: "the butler did it",
		Spoilers: []message.SpoilerRange{
			{Range: message.Range{Start: 4, End: 17}, ID: 7},
		},
	}

	// Hidden: id absent from the revealed set.
	items := DetectItems(Params{
		Ranges:          ranges,
		SpoilerReceipts: true,
		OwnerMessageID:  owner,
	})
	require.Len(t, items, 1)
	require.Equal(t, KindUnrevealedSpoiler, items[0].Kind)
	require.Equal(t, 7, items[0].SpoilerID)
	require.Equal(t, owner, items[0].OwnerMessageID)

	// Revealed: never emitted.
	items = DetectItems(Params{
		Ranges:          ranges,
		SpoilerReceipts: true,
		Revealed:        NewRevealedSpoilers(7),
		OwnerMessageID:  owner,
	})
	require.Empty(t, items)

	// Receipt gate off: dropped regardless of reveal state.
	items = DetectItems(Params{
		Ranges:         ranges,
		OwnerMessageID: owner,
	})
	require.Empty(t, items)
}

func TestDetectItems_MentionPlusLink(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	text := "@alice see https://example.com/x ok"
	ranges := &message.BodyRanges{
		Text: text,
		Mentions: []message.MentionRange{
			{Range: message.Range{Start: 0, End: 6}, ParticipantID: alice},
		},
	}

	items := DetectItems(Params{Ranges: ranges, AllowLinks: true, SpoilerReceipts: true})
	Sort(items)

	require.Len(t, items, 2)
	require.Equal(t, KindMention, items[0].Kind)
	require.Equal(t, alice, items[0].ParticipantID)
	require.Equal(t, KindData, items[1].Kind)
	require.Equal(t, "https://example.com/x", text[items[1].Range.Start:items[1].Range.End])

	// Ordering invariant after sort.
	for i := 0; i+1 < len(items); i++ {
		require.LessOrEqual(t, items[i].Range.Start, items[i+1].Range.Start)
	}
}

func TestDetectItems_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	text := "visit http://example.com or call 555-123-4567"
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				items := DetectItems(Params{Text: text, AllowLinks: true})
				if len(items) != 2 {
					t.Errorf("got %d items, want 2", len(items))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestItemAt(t *testing.T) {
	t.Parallel()

	items := []Item{
		MentionItem(message.Range{Start: 0, End: 6}, uuid.New()),
		DataItem(DataLink, message.Range{Start: 10, End: 30}, "https://example.com"),
	}

	hit, ok := ItemAt(items, 3)
	require.True(t, ok)
	require.Equal(t, KindMention, hit.Kind)

	hit, ok = ItemAt(items, 12)
	require.True(t, ok)
	require.Equal(t, KindData, hit.Kind)

	_, ok = ItemAt(items, 8)
	require.False(t, ok)

	// End offset is exclusive.
	_, ok = ItemAt(items, 30)
	require.False(t, ok)
}

func TestSort_StableAscending(t *testing.T) {
	t.Parallel()

	items := []Item{
		DataItem(DataLink, message.Range{Start: 20, End: 25}, "https://b"),
		MentionItem(message.Range{Start: 0, End: 5}, uuid.New()),
		DataItem(DataPhone, message.Range{Start: 20, End: 22}, "tel:1"),
		SpoilerItem(message.Range{Start: 7, End: 12}, 1, uuid.New()),
	}
	Sort(items)

	require.Equal(t, 0, items[0].Range.Start)
	require.Equal(t, 7, items[1].Range.Start)
	require.Equal(t, 20, items[2].Range.Start)
	// Tie on start: shorter range first.
	require.Equal(t, 22, items[2].Range.End)
	require.Equal(t, 25, items[3].Range.End)
}
