package configcmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/config"
)

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default configuration to the config file.
An existing file is only replaced with --force.

Examples:
  basket config init
  basket config init --path ./basket.yaml --force
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.NoAppAnnotation: "true"},
		RunE:        runInit,
	}

	cmd.Flags().String("path", "", "Write to this file instead of the default location")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "Pass --path explicitly")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("config file %s already exists", path),
			"Re-run with --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(cli.ExitError, "CONFIG_STAT_ERROR", err, "")
	}

	if err := config.Default().Save(path); err != nil {
		return formatter.Fail(cli.ExitDataErr, "CONFIG_WRITE_ERROR", err, "")
	}

	if formatter.Quiet {
		formatter.Printf("%s\n", path)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"path":    path,
		})
	}

	formatter.Printf("✓ Wrote default config to %s\n", path)
	return nil
}
