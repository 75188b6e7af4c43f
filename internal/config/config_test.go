package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, "info", cfg.Logging.Level)
	require.True(t, cfg.Detection.AllowLinks)
	require.True(t, cfg.Detection.SpoilerReceipts)
	require.Equal(t, 2, cfg.Detection.MinSearchRunes)
	require.Equal(t, 800, cfg.Detection.SnippetRunes)
	require.Equal(t, "default", cfg.TUI.Theme)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min search runes", func(c *Config) { c.Detection.MinSearchRunes = 0 }},
		{"tiny snippet budget", func(c *Config) { c.Detection.SnippetRunes = 8 }},
		{"negative width", func(c *Config) { c.TUI.Width = -1 }},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
detection:
  allow_links: false
  snippet_runes: 120
tui:
  theme: high-contrast
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Logging.Level)
	require.False(t, cfg.Detection.AllowLinks)
	require.Equal(t, 120, cfg.Detection.SnippetRunes)
	require.Equal(t, "high-contrast", cfg.TUI.Theme)

	// Keys absent from the file keep their defaults.
	require.True(t, cfg.Detection.SpoilerReceipts)
	require.Equal(t, 2, cfg.Detection.MinSearchRunes)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFromFileInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: neon\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tui.theme")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHATSPAN_LOGGING_LEVEL", "warn")
	t.Setenv("CHATSPAN_DETECTION_ALLOW_LINKS", "false")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Env beats the file.
	require.Equal(t, "warn", cfg.Logging.Level)
	require.False(t, cfg.Detection.AllowLinks)
}
