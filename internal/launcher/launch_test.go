package launcher

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/app"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/testutil"
)

func TestLaunch_StopsOnContextCancel(t *testing.T) {
	a := app.New(testutil.SetupTestStore(t))
	cfg := config.Default()
	cfg.TUI.SplashDuration = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Launch(ctx, a, cfg,
			tea.WithInput(nil),
			tea.WithOutput(&bytes.Buffer{}),
			tea.WithoutRenderer(),
		)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		require.FailNow(t, "Launch did not return after cancel")
	}
}
