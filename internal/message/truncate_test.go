package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate_ShortTextUntouched(t *testing.T) {
	t.Parallel()

	got, truncated := Truncate("short message", 800, false)
	require.Equal(t, "short message", got)
	require.False(t, truncated)
}

func TestTruncate_ExpandedBypassesBudget(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 300)
	got, truncated := Truncate(long, 100, true)
	require.Equal(t, long, got)
	require.False(t, truncated)
}

func TestTruncate_CutsOnWordBoundary(t *testing.T) {
	t.Parallel()

	text := "alpha beta gamma delta epsilon"
	got, truncated := Truncate(text, 13, false)

	require.True(t, truncated)
	require.Equal(t, "alpha beta"+TruncationSuffix, got)
}

func TestTruncate_LongWordCutMidway(t *testing.T) {
	t.Parallel()

	// No boundary within the backup window: hard cut at the budget.
	text := strings.Repeat("x", 200)
	got, truncated := Truncate(text, 50, false)

	require.True(t, truncated)
	require.Equal(t, strings.Repeat("x", 50)+TruncationSuffix, got)
}

func TestTruncate_ExactBudgetNotTruncated(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("y", 50)
	got, truncated := Truncate(text, 50, false)
	require.Equal(t, text, got)
	require.False(t, truncated)
}

func TestTruncate_RuneBudgetNotBytes(t *testing.T) {
	t.Parallel()

	// 10 runes, 30 bytes. A 10-rune budget keeps everything.
	text := strings.Repeat("é", 5) + strings.Repeat("ü", 5)
	got, truncated := Truncate(text, 10, false)
	require.Equal(t, text, got)
	require.False(t, truncated)

	got, truncated = Truncate(text+"!", 10, false)
	require.True(t, truncated)
	require.Equal(t, text+TruncationSuffix, got)
}

func TestTruncate_ZeroBudgetDisables(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 300)
	got, truncated := Truncate(long, 0, false)
	require.Equal(t, long, got)
	require.False(t, truncated)
}
