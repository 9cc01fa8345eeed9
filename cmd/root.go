// Package cmd wires the basket command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/cli/configcmd"
	"github.com/thenoetrevino/basket/internal/cli/item"
	"github.com/thenoetrevino/basket/internal/cli/styles"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/logging"
)

// session holds what PersistentPreRunE opens so Execute can release it
// whether or not the command succeeded.
type session struct {
	configPath string
	cli        *cli.CLI
	logs       io.Closer
}

func (s *session) close() error {
	var errs []error
	if s.cli != nil {
		if err := s.cli.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.logs != nil {
		if err := s.logs.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "basket",
		Short: "Basket - a shopping list for the terminal",
		Long: `Basket keeps a shopping list in a local SQLite database.

Run without a subcommand to open the interactive list. Every change shows
up live in all open basket windows while basket-daemon is running.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		RunE: runTUI,
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/basket/config.yaml)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	root.AddCommand(item.Commands()...)
	root.AddCommand(configcmd.ConfigCmd())
	root.AddCommand(TUICmd())

	return root
}

// open loads the config, starts file logging and, unless the command opts
// out, opens the App.
func (s *session) open(cmd *cobra.Command) error {
	cfg, err := loadConfig(s.configPath)
	if err != nil {
		return cli.WithExitCode(cli.ExitError, err)
	}

	s.logs, err = logging.Init(cfg.LogDir(), "basket", cfg.LogLevel)
	if err != nil {
		logging.Discard()
	}
	styles.Init(cfg.Theme)

	c := &cli.CLI{Config: cfg}
	if cli.NeedsApp(cmd.Annotations) && !isBuiltin(cmd) {
		if c, err = cli.NewCLI(cmd.Context(), cfg); err != nil {
			return cli.WithExitCode(cli.ExitError, err)
		}
	}
	s.cli = c

	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

// isBuiltin reports whether cmd is one of cobra's help or completion commands.
func isBuiltin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}
	return false
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// Execute runs the command line and releases everything it opened.
// main turns the returned error into an exit code with cli.ExitCodeOf.
func Execute(ctx context.Context, args ...string) error {
	s := &session{}
	root := newRootCmd(s)
	if args != nil {
		root.SetArgs(args)
	}

	err := root.ExecuteContext(ctx)
	return errors.Join(err, s.close())
}
