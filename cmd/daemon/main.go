// Command basket-daemon relays change notifications between basket processes
// over a unix socket.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/daemon"
	"github.com/thenoetrevino/basket/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// The daemon runs under a supervisor (systemd, launchd), so it logs to stderr.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Ensure the socket directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(cfg.SocketPath), 0o700); err != nil {
		slog.Error("failed to create socket directory", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(cfg.SocketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("basket daemon starting", "socket_path", cfg.SocketPath, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("basket daemon shutting down gracefully")
}
