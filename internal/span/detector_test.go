package span

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDetector_LinkConfiguration(t *testing.T) {
	t.Parallel()

	withLinks, err := newDetector(true)
	require.NoError(t, err)
	withoutLinks, err := newDetector(false)
	require.NoError(t, err)

	text := "visit http://example.com now"

	matches := withLinks.scan(text)
	require.Len(t, matches, 1)
	require.Equal(t, DataLink, matches[0].kind)
	require.Equal(t, "http://example.com", text[matches[0].r.Start:matches[0].r.End])
	require.Equal(t, "http://example.com", matches[0].payload)

	require.Empty(t, withoutLinks.scan(text))
}

func TestDetector_SchemelessLinkPayload(t *testing.T) {
	t.Parallel()
	d, err := newDetector(true)
	require.NoError(t, err)

	matches := d.scan("check www.example.org/path please")
	require.Len(t, matches, 1)
	require.Equal(t, DataLink, matches[0].kind)
	require.Equal(t, "https://www.example.org/path", matches[0].payload)
}

func TestDetector_Phone(t *testing.T) {
	t.Parallel()
	d, err := newDetector(false)
	require.NoError(t, err)

	cases := []struct {
		text    string
		payload string
	}{
		{"call 555-123-4567 today", "tel:5551234567"},
		{"call (555) 123-4567 today", "tel:5551234567"},
		{"call +1 555 123 4567 today", "tel:+15551234567"},
	}
	for _, tc := range cases {
		matches := d.scan(tc.text)
		require.Len(t, matches, 1, "text %q", tc.text)
		require.Equal(t, DataPhone, matches[0].kind)
		require.Equal(t, tc.payload, matches[0].payload)
	}
}

func TestDetector_Address(t *testing.T) {
	t.Parallel()
	d, err := newDetector(false)
	require.NoError(t, err)

	text := "meet at 221 Baker Street around noon"
	matches := d.scan(text)
	require.Len(t, matches, 1)
	require.Equal(t, DataAddress, matches[0].kind)
	require.Equal(t, "221 Baker Street", text[matches[0].r.Start:matches[0].r.End])
}

func TestDetector_DateFlagDisabled(t *testing.T) {
	t.Parallel()
	d, err := newDetector(false)
	require.NoError(t, err)

	require.Empty(t, d.scan("shipping on 2026-09-01 or 9/1/26"))
}

func TestDetector_EmptyText(t *testing.T) {
	t.Parallel()
	d, err := newDetector(true)
	require.NoError(t, err)
	require.Empty(t, d.scan(""))
}
