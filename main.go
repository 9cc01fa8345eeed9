package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/basket/cmd"
	"github.com/thenoetrevino/basket/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)

	err := cmd.Execute(ctx)
	stop()

	if err != nil && !cli.Reported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCodeOf(err))
}
