package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlightSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	buf := NewStyledText("Token refresh failed; token expired")
	n := HighlightSearch(buf, "token", 0)

	require.Equal(t, 2, n)
	require.True(t, buf.AttributesAt(0).SearchMatch)
	require.True(t, buf.AttributesAt(22).SearchMatch)
	require.False(t, buf.AttributesAt(6).SearchMatch)
}

func TestHighlightSearch_MinimumLengthGate(t *testing.T) {
	t.Parallel()

	buf := NewStyledText("a a a a")
	require.Equal(t, 0, HighlightSearch(buf, "a", 0))
	require.Equal(t, 0, HighlightSearch(buf, "  a  ", 0))
	require.False(t, buf.AttributesAt(0).SearchMatch)

	require.Equal(t, 0, HighlightSearch(buf, "", 0))
}

func TestHighlightSearch_MetaCharactersEscaped(t *testing.T) {
	t.Parallel()

	buf := NewStyledText("cost is $4.99 (sale)")
	require.Equal(t, 1, HighlightSearch(buf, "$4.99", 0))
	require.Equal(t, 1, HighlightSearch(buf, "(sale)", 0))

	// A regex that would match everything if unescaped matches nothing
	// as a literal.
	require.Equal(t, 0, HighlightSearch(buf, ".*", 0))
}

func TestSearchActive(t *testing.T) {
	t.Parallel()

	require.False(t, SearchActive("", 0))
	require.False(t, SearchActive("x", 0))
	require.True(t, SearchActive("ok", 0))
	require.False(t, SearchActive("ok", 3))
	require.True(t, SearchActive("  ok  ", 2))
}
