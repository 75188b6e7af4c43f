// Package cli implements the chatspan command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/chatspan/internal/config"
	"github.com/tOgg1/chatspan/internal/fixture"
	"github.com/tOgg1/chatspan/internal/logging"
)

// Execute runs the root command.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	var configFile string
	var logLevel string

	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "chatspan",
		Short:         "Detect and style interactive spans in chat message bodies",
		Long:          "chatspan reconciles links, mentions, spoilers and search matches in message bodies and renders them as styled bubbles.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			*cfg = *loaded

			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			logging.Init(logging.Config{
				Level:        cfg.Logging.Level,
				Format:       cfg.Logging.Format,
				EnableCaller: cfg.Logging.EnableCaller,
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	cmd.AddCommand(
		newDetectCmd(cfg),
		newRenderCmd(cfg),
		newPreviewCmd(cfg),
	)

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.LoadDefault()
}

// loadConversation resolves the fixture argument, falling back to the
// built-in demo conversation.
func loadConversation(args []string) (*fixture.Conversation, error) {
	if len(args) == 0 {
		return fixture.Sample(), nil
	}
	conv, err := fixture.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return conv, nil
}
