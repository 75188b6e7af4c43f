// Package fixture loads conversation files for the chatspan CLI and TUI.
// A fixture is a JSON conversation: messages with plain or structured
// bodies, per-message revealed-spoiler sets and the conversation-level
// pending-request flag.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/span"
)

// Conversation is one fixture file.
type Conversation struct {
	Name           string    `json:"name"`
	PendingRequest bool      `json:"pending_request,omitempty"`
	Messages       []Message `json:"messages"`
}

// Message is one message entry. Variant defaults to "text".
type Message struct {
	ID       uuid.UUID `json:"id"`
	From     string    `json:"from"`
	Outgoing bool      `json:"outgoing,omitempty"`
	Time     time.Time `json:"time,omitempty"`

	Variant string `json:"variant,omitempty"`
	Text    string `json:"text,omitempty"`

	Mentions []message.MentionRange `json:"mentions,omitempty"`
	Spoilers []message.SpoilerRange `json:"spoilers,omitempty"`
	Styles   []message.StyleRange   `json:"styles,omitempty"`

	RevealedSpoilers []int `json:"revealed_spoilers,omitempty"`
}

// Body resolves the entry into a message body.
func (m Message) Body() message.Body {
	switch m.Variant {
	case "oversize":
		return message.OversizeBody()
	case "deleted":
		return message.DeletedBody()
	}

	if len(m.Mentions) > 0 || len(m.Spoilers) > 0 || len(m.Styles) > 0 {
		return message.StructuredBody(&message.BodyRanges{
			Text:     m.Text,
			Mentions: m.Mentions,
			Spoilers: m.Spoilers,
			Styles:   m.Styles,
		})
	}
	return message.TextBody(m.Text)
}

// Revealed builds the revealed-spoiler set for the entry.
func (m Message) Revealed() span.RevealedSpoilers {
	return span.NewRevealedSpoilers(m.RevealedSpoilers...)
}

// Load reads and validates a conversation file.
func Load(path string) (*Conversation, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(payload)
}

// Parse decodes and validates conversation JSON.
func Parse(payload []byte) (*Conversation, error) {
	var conv Conversation
	if err := json.Unmarshal(payload, &conv); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := conv.Validate(); err != nil {
		return nil, err
	}
	return &conv, nil
}

// Validate checks message entries for shapes the pipeline cannot accept.
func (c *Conversation) Validate() error {
	if len(c.Messages) == 0 {
		return fmt.Errorf("fixture %q has no messages", c.Name)
	}
	for i, m := range c.Messages {
		switch m.Variant {
		case "", "text", "oversize", "deleted":
			// ok
		default:
			return fmt.Errorf("messages[%d]: unknown variant %q", i, m.Variant)
		}
		textLen := len(m.Text)
		for _, mr := range m.Mentions {
			if !mr.Range.ValidFor(textLen) {
				return fmt.Errorf("messages[%d]: mention range [%d,%d) out of bounds", i, mr.Range.Start, mr.Range.End)
			}
		}
		for _, sr := range m.Spoilers {
			if !sr.Range.ValidFor(textLen) {
				return fmt.Errorf("messages[%d]: spoiler range [%d,%d) out of bounds", i, sr.Range.Start, sr.Range.End)
			}
		}
		for _, st := range m.Styles {
			if !st.Range.ValidFor(textLen) {
				return fmt.Errorf("messages[%d]: style range [%d,%d) out of bounds", i, st.Range.Start, st.Range.End)
			}
		}
	}
	return nil
}

// Sample returns the built-in demo conversation used when no fixture file
// is given.
func Sample() *Conversation {
	alice := uuid.MustParse("6b4a1f32-8d3e-4f5a-9c27-3d1b8e2a4c50")
	base := time.Date(2026, 8, 20, 9, 15, 0, 0, time.UTC)

	spoilerText := "The finale twist: the narrator did it. Call me after!"
	mentionText := "@alice check out https://example.com/roadmap when you land"

	return &Conversation{
		Name: "demo",
		Messages: []Message{
			{
				ID:   uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e01"),
				From: "alice",
				Time: base,
				Text: "visit http://example.com now, or call 555-123-4567",
			},
			{
				ID:       uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e02"),
				From:     "me",
				Outgoing: true,
				Time:     base.Add(2 * time.Minute),
				Text:     mentionText,
				Mentions: []message.MentionRange{
					{Range: message.Range{Start: 0, End: 6}, ParticipantID: alice},
				},
			},
			{
				ID:   uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e03"),
				From: "alice",
				Time: base.Add(5 * time.Minute),
				Text: spoilerText,
				Spoilers: []message.SpoilerRange{
					{Range: message.Range{Start: 18, End: 18 + len("the narrator did it")}, ID: 1},
				},
			},
			{
				ID:      uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e04"),
				From:    "alice",
				Time:    base.Add(7 * time.Minute),
				Variant: "oversize",
			},
			{
				ID:      uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e05"),
				From:    "me",
				Time:    base.Add(9 * time.Minute),
				Variant: "deleted",
			},
			{
				ID:   uuid.MustParse("f1f9211d-5f1a-4f0e-a6f2-0c6f3a9d8e06"),
				From: "alice",
				Time: base.Add(11 * time.Minute),
				Text: "meet at 221 Baker Street around noon",
			},
		},
	}
}
