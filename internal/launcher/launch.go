// Package launcher runs the TUI program.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/basket/internal/app"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/tui"
)

// Launch runs the TUI over a until the user quits or ctx is done.
// The caller owns a and closes it afterwards.
func Launch(ctx context.Context, a *app.App, cfg *config.Config, opts ...tea.ProgramOption) error {
	if a.Live() {
		slog.Info("live updates shared through the event daemon")
	}

	model := tui.New(ctx, a.ListService, cfg)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		// A cancelled context is a normal shutdown (SIGINT/SIGTERM).
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received, closing TUI")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
