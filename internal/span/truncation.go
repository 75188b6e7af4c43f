package span

import "github.com/tOgg1/chatspan/internal/message"

// discardTruncated reports whether a detector match is an artifact of text
// truncation. When the displayed text was cut short and ends with the
// truncation suffix, a match is discarded if it ran into the synthetic
// suffix (its end coincides with the end of the text) or if the suffix
// immediately follows it (the real match most likely continued into the
// removed remainder). Pure predicate, no I/O.
func discardTruncated(r message.Range, wasTruncated bool, fullText, suffix string) bool {
	if !wasTruncated || suffix == "" {
		return false
	}
	if !r.ValidFor(len(fullText)) {
		return false
	}
	if r.End == len(fullText) {
		return true
	}
	return fullText[r.End:] == suffix
}
