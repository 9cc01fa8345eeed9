package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/launcher"
)

// TUICmd returns the tui subcommand. Running basket with no subcommand does the same.
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive shopping list",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := cli.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	return launcher.Launch(cmd.Context(), c.App, c.Config)
}
