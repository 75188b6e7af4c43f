// Package config handles chatspan configuration loading and validation.
package config

import (
	"fmt"

	"github.com/tOgg1/chatspan/internal/message"
	"github.com/tOgg1/chatspan/internal/render"
)

// Config is the root configuration structure for chatspan.
type Config struct {
	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Detection settings for span reconciliation and display
	Detection DetectionConfig `yaml:"detection" mapstructure:"detection"`

	// TUI settings
	TUI TUIConfig `yaml:"tui" mapstructure:"tui"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// DetectionConfig contains span detection and display settings.
type DetectionConfig struct {
	// AllowLinks enables link matching in the pattern detector.
	AllowLinks bool `yaml:"allow_links" mapstructure:"allow_links"`

	// SpoilerReceipts gates unrevealed-spoiler items. When off, spoiler
	// ranges render as plain revealed text.
	SpoilerReceipts bool `yaml:"spoiler_receipts" mapstructure:"spoiler_receipts"`

	// MinSearchRunes is the minimum search query length before
	// highlighting kicks in.
	MinSearchRunes int `yaml:"min_search_runes" mapstructure:"min_search_runes"`

	// SnippetRunes is the rune budget for a collapsed bubble before the
	// truncation suffix is appended.
	SnippetRunes int `yaml:"snippet_runes" mapstructure:"snippet_runes"`
}

// TUIConfig contains TUI settings.
type TUIConfig struct {
	// Theme is the color theme (default, high-contrast).
	Theme string `yaml:"theme" mapstructure:"theme"`

	// ShowTimestamps shows timestamps next to senders.
	ShowTimestamps bool `yaml:"show_timestamps" mapstructure:"show_timestamps"`

	// Width is a fixed bubble width; 0 means derive from the terminal.
	Width int `yaml:"width" mapstructure:"width"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			EnableCaller: false,
		},
		Detection: DetectionConfig{
			AllowLinks:      true,
			SpoilerReceipts: true,
			MinSearchRunes:  render.DefaultMinSearchRunes,
			SnippetRunes:    message.DefaultSnippetRunes,
		},
		TUI: TUIConfig{
			Theme:          "default",
			ShowTimestamps: true,
			Width:          0,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Detection.MinSearchRunes < 1 {
		return fmt.Errorf("detection.min_search_runes must be at least 1")
	}

	if c.Detection.SnippetRunes < 16 {
		return fmt.Errorf("detection.snippet_runes must be at least 16")
	}

	if c.TUI.Width < 0 {
		return fmt.Errorf("tui.width must not be negative")
	}

	switch c.TUI.Theme {
	case "default", "high-contrast":
		// ok
	default:
		return fmt.Errorf("tui.theme must be one of default, high-contrast")
	}

	return nil
}
