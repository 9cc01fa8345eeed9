package events

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDaemonError(t *testing.T) {
	assert.Nil(t, ClassifyDaemonError(nil))

	notExist := fmt.Errorf("dial: %w", os.ErrNotExist)
	assert.Equal(t, ErrSocketNotFound, ClassifyDaemonError(notExist).Code)

	perm := fmt.Errorf("dial: %w", os.ErrPermission)
	assert.Equal(t, ErrSocketPermission, ClassifyDaemonError(perm).Code)

	other := ClassifyDaemonError(assert.AnError)
	assert.Equal(t, ErrDaemonNotRunning, other.Code)
	assert.Contains(t, other.Error(), "basket-daemon")
	assert.Contains(t, other.Error(), "changes stay local")
}

func TestDaemonError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial unix /tmp/basket.sock: %w", os.ErrNotExist)
	classified := ClassifyDaemonError(cause)

	assert.ErrorIs(t, classified, os.ErrNotExist)
	assert.Equal(t, cause, classified.Unwrap())
}

func TestClassifyDaemonError_MissingSocket(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "missing.sock"))
	defer func() { _ = client.Close() }()

	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrSocketNotFound, ClassifyDaemonError(err).Code)
}

func TestClassifyDaemonError_StaleSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "stale.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	// Keep the file but stop listening
	listener.(*net.UnixListener).SetUnlinkOnClose(false)
	require.NoError(t, listener.Close())

	client := NewClient(socketPath)
	defer func() { _ = client.Close() }()

	err = client.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrConnectionRefused, ClassifyDaemonError(err).Code)
}
