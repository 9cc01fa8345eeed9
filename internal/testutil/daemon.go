package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/basket/internal/daemon"
	"github.com/thenoetrevino/basket/internal/events"
)

// SetupTestDaemon starts a daemon on a socket under t.TempDir() and waits
// until it accepts connections. Shutdown is automatic.
func SetupTestDaemon(t *testing.T, opts ...daemon.Option) (*daemon.Server, string) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "basket.sock")

	server, err := daemon.NewServer(socketPath, opts...)
	require.NoError(t, err, "failed to create test daemon")

	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = server.Start(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond, "daemon socket never appeared")

	return server, socketPath
}

// SetupTestClient connects an event client with a short debounce and starts
// listening. Cleanup is automatic.
func SetupTestClient(t *testing.T, socketPath string) (*events.Client, <-chan events.Event) {
	t.Helper()

	client := events.NewClient(socketPath, events.WithDebounce(10*time.Millisecond))
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, client.Connect(ctx), "failed to connect test client")
	ch, err := client.Listen(ctx)
	require.NoError(t, err)
	return client, ch
}

// WaitForValue waits for a value on ch or fails the test.
func WaitForValue[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return v
	case <-time.After(timeout):
		t.Fatalf("timeout waiting for value after %v", timeout)
	}
	var zero T
	return zero
}
