// Package configcmd implements `basket config`.
package configcmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the basket configuration file",
		Long: `Write or inspect the YAML configuration file.

The file lives at $XDG_CONFIG_HOME/basket/config.yaml, or
~/.config/basket/config.yaml when XDG_CONFIG_HOME is unset.
Any key can be overridden with a BASKET_ environment variable,
for example BASKET_LOG_LEVEL=debug or BASKET_DAEMON_ENABLED=false.`,
		Annotations: map[string]string{cli.NoAppAnnotation: "true"},
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
