// Package message models chat message bodies: the plain or structured text a
// bubble displays, plus the tagged sub-ranges (mentions, spoilers, inline
// styles) the upstream rich-text builder attaches to it.
package message

import (
	"fmt"

	"github.com/google/uuid"
)

// Variant identifies which kind of body a message carries.
type Variant int

const (
	// VariantText is a regular text body, optionally with tagged ranges.
	VariantText Variant = iota

	// VariantOversize is a long body whose full text is still downloading.
	VariantOversize

	// VariantDeleted is the placeholder left by a remote delete.
	VariantDeleted
)

// String returns the variant name for logs and fixtures.
func (v Variant) String() string {
	switch v {
	case VariantText:
		return "text"
	case VariantOversize:
		return "oversize"
	case VariantDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Body is a message body resolved for one render pass. Consumption sites
// switch exhaustively on Variant; Text and Ranges are only meaningful for
// VariantText.
type Body struct {
	Variant Variant

	// Text is the plain string form of the body.
	Text string

	// Ranges carries the tagged sub-ranges when the body is structured.
	// Nil for bodies that are plain text all the way down.
	Ranges *BodyRanges
}

// TextBody builds a plain text body.
func TextBody(text string) Body {
	return Body{Variant: VariantText, Text: text}
}

// StructuredBody builds a text body carrying tagged ranges.
func StructuredBody(ranges *BodyRanges) Body {
	if ranges == nil {
		return Body{Variant: VariantText}
	}
	return Body{Variant: VariantText, Text: ranges.Text, Ranges: ranges}
}

// OversizeBody builds the downloading-long-message placeholder body.
func OversizeBody() Body {
	return Body{Variant: VariantOversize}
}

// DeletedBody builds the remotely-deleted placeholder body.
func DeletedBody() Body {
	return Body{Variant: VariantDeleted}
}

// IsStructured reports whether the body carries any tagged ranges.
func (b Body) IsStructured() bool {
	return b.Variant == VariantText && b.Ranges != nil && !b.Ranges.Empty()
}

// Range is a half-open [Start, End) byte range into a body's plain string.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewRange builds a range from a start offset and length.
func NewRange(start, length int) Range {
	return Range{Start: start, End: start + length}
}

// Len returns the byte length of the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether the byte offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether two ranges share at least one offset.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// ValidFor reports whether the range is a well-formed sub-range of a string
// of the given byte length.
func (r Range) ValidFor(textLen int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= textLen
}

// TextStyle is a bitmask of inline formatting applied to a style range.
type TextStyle int

const (
	StyleBold TextStyle = 1 << iota
	StyleItalic
	StyleStrikethrough
	StyleMonospace
)

// Has reports whether the style includes the given bit.
func (s TextStyle) Has(bit TextStyle) bool { return s&bit != 0 }

// MentionRange tags a sub-range as an @mention of a conversation member.
type MentionRange struct {
	Range         Range     `json:"range"`
	ParticipantID uuid.UUID `json:"participant_id"`
}

// SpoilerRange tags a sub-range as spoiler-concealed text. IDs are assigned
// by the upstream builder and are stable within one body.
type SpoilerRange struct {
	Range Range `json:"range"`
	ID    int   `json:"id"`
}

// StyleRange tags a sub-range with inline formatting.
type StyleRange struct {
	Range Range     `json:"range"`
	Style TextStyle `json:"style"`
}

// BodyRanges is the structured form of a body: the plain string plus the
// tagged sub-ranges the rich-text builder produced. Trusted input; ranges
// are assumed valid for Text and are not re-checked here.
type BodyRanges struct {
	Text     string         `json:"text"`
	Mentions []MentionRange `json:"mentions,omitempty"`
	Spoilers []SpoilerRange `json:"spoilers,omitempty"`
	Styles   []StyleRange   `json:"styles,omitempty"`
}

// Empty reports whether no tagged ranges are present.
func (br *BodyRanges) Empty() bool {
	if br == nil {
		return true
	}
	return len(br.Mentions) == 0 && len(br.Spoilers) == 0 && len(br.Styles) == 0
}
