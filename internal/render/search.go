package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tOgg1/chatspan/internal/logging"
	"github.com/tOgg1/chatspan/internal/message"
)

var searchLog = logging.Component("render.search")

// DefaultMinSearchRunes is the minimum query length before highlighting.
const DefaultMinSearchRunes = 2

// SearchActive reports whether a query clears the minimum-length gate.
func SearchActive(query string, minRunes int) bool {
	if minRunes <= 0 {
		minRunes = DefaultMinSearchRunes
	}
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= minRunes
}

// HighlightSearch overlays case-insensitive matches of the query onto the
// buffer and returns the match count. Highlights are ephemeral per render
// pass and never part of the item list. A query below the minimum length
// highlights nothing; a query that fails to compile after escaping is
// logged and highlights nothing.
func HighlightSearch(buf *StyledText, query string, minRunes int) int {
	if !SearchActive(query, minRunes) {
		return 0
	}
	query = strings.TrimSpace(query)

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(query))
	if err != nil {
		searchLog.Warn().Err(err).Str("query", query).Msg("search pattern failed to compile")
		return 0
	}

	matches := re.FindAllStringIndex(buf.Text(), -1)
	for _, loc := range matches {
		buf.SetSearchMatch(message.Range{Start: loc[0], End: loc[1]})
	}
	return len(matches)
}
