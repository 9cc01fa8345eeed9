package item_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/app"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/store"
	"github.com/thenoetrevino/basket/internal/testutil"
)

var fixedNow = time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC)

// setupCLITest returns a CLI over an in-memory store with a fixed clock.
func setupCLITest(t *testing.T) (*cli.CLI, *store.Store) {
	t.Helper()
	s := testutil.SetupTestStore(t)
	a := app.New(s, app.WithClock(func() time.Time { return fixedNow }))
	return &cli.CLI{App: a, Config: config.Default()}, s
}

// executeCLICommand runs cmd with args against c and returns its stdout.
func executeCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	return testutil.ExecuteCommand(t, cmd)
}

// syncBuffer is a bytes.Buffer safe for one writer and one polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
