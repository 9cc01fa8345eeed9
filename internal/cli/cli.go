// Package cli holds the pieces shared by every basket subcommand: the
// per-invocation App, output formatting and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/basket/internal/app"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/services/list"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
}

// NewCLI opens the database and, when it is running, connects to the daemon.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	a, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return &CLI{App: a, Config: cfg}, nil
}

// List is a shorthand for the list controller.
func (c *CLI) List() list.Service {
	return c.App.ListService
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c == nil || c.App == nil {
		return nil
	}
	return c.App.Close()
}

type cliKey struct{}

// ErrNoCLI is returned when a command runs without an initialized CLI.
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI returns a context carrying c. The root command stores the CLI this
// way; tests inject one backed by an in-memory store.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// FromContext returns the CLI stored by WithCLI.
func FromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

// NoAppAnnotation marks commands that only need the config. The root command
// does not open the database for them.
const NoAppAnnotation = "basket.no-app"

// NeedsApp reports whether the root command should open the App before running cmd.
func NeedsApp(annotations map[string]string) bool {
	return annotations[NoAppAnnotation] != "true"
}
