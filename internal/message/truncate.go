package message

import (
	"strings"
	"unicode"
)

// TruncationSuffix is the marker appended when a displayed body was cut
// short of the full message text.
const TruncationSuffix = "…"

// DefaultSnippetRunes is the default rune budget for a collapsed bubble.
const DefaultSnippetRunes = 800

// Truncate derives the displayed text for a render pass. When expanded is
// false and the text exceeds maxRunes, the text is cut on a word boundary
// near the budget and TruncationSuffix is appended; the second return
// reports whether truncation happened.
func Truncate(text string, maxRunes int, expanded bool) (string, bool) {
	if expanded || maxRunes <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text, false
	}

	cut := maxRunes
	// Back up to the last word boundary so the suffix never splits a word,
	// but never give up more than a short tail.
	for i := cut; i > cut-24 && i > 0; i-- {
		if unicode.IsSpace(runes[i-1]) {
			cut = i - 1
			break
		}
	}
	return strings.TrimRight(string(runes[:cut]), " \t\n") + TruncationSuffix, true
}
