package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/chatspan/internal/span"
)

type detectResult struct {
	From    string      `json:"from"`
	Variant string      `json:"variant"`
	Items   []span.Item `json:"items"`
}

func runDetect(t *testing.T, args ...string) []detectResult {
	t.Helper()

	cmd := newRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"detect", "--json"}, args...))

	require.NoError(t, cmd.Execute())

	var results []detectResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	return results
}

func TestDetectCommandJSON(t *testing.T) {
	results := runDetect(t)
	require.Len(t, results, 6)

	// First demo message carries a link and a phone number.
	kinds := map[span.DataKind]bool{}
	for _, item := range results[0].Items {
		require.Equal(t, span.KindData, item.Kind)
		kinds[item.DataKind] = true
	}
	require.True(t, kinds[span.DataLink])
	require.True(t, kinds[span.DataPhone])

	// Spoiler message surfaces an unrevealed spoiler item.
	var spoilers int
	for _, item := range results[2].Items {
		if item.Kind == span.KindUnrevealedSpoiler {
			spoilers++
		}
	}
	require.Equal(t, 1, spoilers)

	// Placeholders carry no items.
	require.Equal(t, "oversize", results[3].Variant)
	require.Empty(t, results[3].Items)
	require.Equal(t, "deleted", results[4].Variant)
	require.Empty(t, results[4].Items)
}

func TestDetectCommandPendingSuppressesItems(t *testing.T) {
	results := runDetect(t, "--pending")
	for _, res := range results {
		require.Empty(t, res.Items)
	}
}

func TestDetectCommandTableOutput(t *testing.T) {
	cmd := newRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"detect"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "MESSAGE")
	require.Contains(t, out.String(), "http://example.com")
}
