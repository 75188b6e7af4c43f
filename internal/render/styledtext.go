// Package render turns a reconciled item list into styled bubble content:
// it owns the attributed-text buffer, linkification, the search highlight
// overlay and the per-pass component state snapshot.
package render

import (
	"sort"

	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/span"
)

// Attributes is the resolved styling at one offset of a styled-text buffer.
// Zero value means unstyled.
type Attributes struct {
	// Link is the machine-actionable target; carries no visible change.
	Link string

	// Underline and LinkColored form the visible link style.
	Underline   bool
	LinkColored bool

	Mention          bool
	SpoilerConcealed bool

	Bold          bool
	Italic        bool
	Strikethrough bool
	Monospace     bool

	SearchMatch bool
}

// attrMask selects which Attributes fields a style op writes. Fields not in
// the mask keep whatever earlier ops set, so re-applying the same op is a
// no-op and a later op wins only the fields it owns.
type attrMask uint16

const (
	maskLink attrMask = 1 << iota
	maskUnderline
	maskLinkColored
	maskMention
	maskSpoiler
	maskBold
	maskItalic
	maskStrikethrough
	maskMonospace
	maskSearchMatch
)

type styleOp struct {
	r    message.Range
	attr Attributes
	set  attrMask
}

// StyledText is an editable attributed-string buffer: an immutable plain
// string plus an ordered list of range-scoped attribute writes. Later
// writes win per field at shared offsets.
type StyledText struct {
	text string
	ops  []styleOp
}

// NewStyledText wraps a plain string with no attributes.
func NewStyledText(text string) *StyledText {
	return &StyledText{text: text}
}

// Text returns the underlying plain string.
func (st *StyledText) Text() string { return st.text }

// Len returns the byte length of the underlying string.
func (st *StyledText) Len() int { return len(st.text) }

func (st *StyledText) push(r message.Range, attr Attributes, set attrMask) {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > len(st.text) {
		r.End = len(st.text)
	}
	if r.Start >= r.End {
		return
	}
	st.ops = append(st.ops, styleOp{r: r, attr: attr, set: set})
}

// SetLink applies the semantic link attribute: actionable, not visible.
func (st *StyledText) SetLink(r message.Range, target string) {
	st.push(r, Attributes{Link: target}, maskLink)
}

// SetVisualLink applies the visible link style plus the link target.
func (st *StyledText) SetVisualLink(r message.Range, target string) {
	st.push(r, Attributes{Link: target, Underline: true, LinkColored: true},
		maskLink|maskUnderline|maskLinkColored)
}

// SetMention marks a range as mention-styled.
func (st *StyledText) SetMention(r message.Range) {
	st.push(r, Attributes{Mention: true}, maskMention)
}

// SetSpoilerConcealed marks a range as a concealed spoiler.
func (st *StyledText) SetSpoilerConcealed(r message.Range) {
	st.push(r, Attributes{SpoilerConcealed: true}, maskSpoiler)
}

// SetTextStyle applies inline formatting bits to a range.
func (st *StyledText) SetTextStyle(r message.Range, style message.TextStyle) {
	attr := Attributes{
		Bold:          style.Has(message.StyleBold),
		Italic:        style.Has(message.StyleItalic),
		Strikethrough: style.Has(message.StyleStrikethrough),
		Monospace:     style.Has(message.StyleMonospace),
	}
	var set attrMask
	if style.Has(message.StyleBold) {
		set |= maskBold
	}
	if style.Has(message.StyleItalic) {
		set |= maskItalic
	}
	if style.Has(message.StyleStrikethrough) {
		set |= maskStrikethrough
	}
	if style.Has(message.StyleMonospace) {
		set |= maskMonospace
	}
	if set == 0 {
		return
	}
	st.push(r, attr, set)
}

// SetSearchMatch marks a range as a search highlight.
func (st *StyledText) SetSearchMatch(r message.Range) {
	st.push(r, Attributes{SearchMatch: true}, maskSearchMatch)
}

// AttributesAt resolves the styling at a byte offset by replaying every op
// covering it in application order.
func (st *StyledText) AttributesAt(offset int) Attributes {
	var out Attributes
	for _, op := range st.ops {
		if !op.r.Contains(offset) {
			continue
		}
		if op.set&maskLink != 0 {
			out.Link = op.attr.Link
		}
		if op.set&maskUnderline != 0 {
			out.Underline = op.attr.Underline
		}
		if op.set&maskLinkColored != 0 {
			out.LinkColored = op.attr.LinkColored
		}
		if op.set&maskMention != 0 {
			out.Mention = op.attr.Mention
		}
		if op.set&maskSpoiler != 0 {
			out.SpoilerConcealed = op.attr.SpoilerConcealed
		}
		if op.set&maskBold != 0 {
			out.Bold = op.attr.Bold
		}
		if op.set&maskItalic != 0 {
			out.Italic = op.attr.Italic
		}
		if op.set&maskStrikethrough != 0 {
			out.Strikethrough = op.attr.Strikethrough
		}
		if op.set&maskMonospace != 0 {
			out.Monospace = op.attr.Monospace
		}
		if op.set&maskSearchMatch != 0 {
			out.SearchMatch = op.attr.SearchMatch
		}
	}
	return out
}

// Segment is a maximal run of text with uniform attributes.
type Segment struct {
	Range message.Range
	Text  string
	Attr  Attributes
}

// Segments splits the buffer into contiguous uniform-attribute runs in
// text order. Adjacent runs with equal attributes are merged.
func (st *StyledText) Segments() []Segment {
	if len(st.text) == 0 {
		return nil
	}

	boundarySet := map[int]struct{}{0: {}, len(st.text): {}}
	for _, op := range st.ops {
		boundarySet[op.r.Start] = struct{}{}
		boundarySet[op.r.End] = struct{}{}
	}
	boundaries := make([]int, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)

	var out []Segment
	for i := 0; i+1 < len(boundaries); i++ {
		start, end := boundaries[i], boundaries[i+1]
		if start >= end {
			continue
		}
		attr := st.AttributesAt(start)
		if n := len(out); n > 0 && out[n-1].Attr == attr && out[n-1].Range.End == start {
			out[n-1].Range.End = end
			out[n-1].Text = st.text[out[n-1].Range.Start:end]
			continue
		}
		out = append(out, Segment{
			Range: message.Range{Start: start, End: end},
			Text:  st.text[start:end],
			Attr:  attr,
		})
	}
	return out
}

// NewStyledBody builds the upstream-styled buffer for a structured body:
// mention, concealed-spoiler and inline-format attributes are applied here
// so linkification can treat those spans as already styled. Revealed
// spoiler ranges are left plain.
func NewStyledBody(ranges *message.BodyRanges, revealed span.RevealedSpoilers) *StyledText {
	st := NewStyledText(ranges.Text)
	for _, s := range ranges.Styles {
		st.SetTextStyle(s.Range, s.Style)
	}
	for _, m := range ranges.Mentions {
		st.SetMention(m.Range)
	}
	for _, sp := range ranges.Spoilers {
		if revealed.Contains(sp.ID) {
			continue
		}
		st.SetSpoilerConcealed(sp.Range)
	}
	return st
}
