package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tOgg1/chatspan/internal/config"
	"github.com/tOgg1/chatspan/internal/tui"
)

func newPreviewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [fixture.json]",
		Short: "Launch the interactive conversation preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !hasTTY() {
				return fmt.Errorf("preview requires an interactive terminal")
			}
			conv, err := loadConversation(args)
			if err != nil {
				return err
			}
			return tui.Run(conv, cfg)
		},
	}
	return cmd
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
