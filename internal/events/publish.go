package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const notifyBaseDelay = 50 * time.Millisecond

// NotifyItemsChanged sends an items_changed event stamped with origin.
// A failed send is retried with doubling delays (50ms, 100ms, ...) for up to
// attempts sends in total. ctx only cuts the wait between attempts short.
func NotifyItemsChanged(ctx context.Context, n ChangeNotifier, origin string, attempts int) error {
	if n == nil {
		return nil // no daemon configured
	}
	attempts = max(attempts, 1)

	event := Event{
		Type:      EventItemsChanged,
		Origin:    origin,
		Timestamp: time.Now(),
	}

	delay := notifyBaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = n.SendEvent(event); err == nil {
			if attempt > 1 {
				slog.Debug("item change notified after retry", "attempt", attempt, "origin", origin)
			}
			return nil
		}
		if attempt == attempts {
			break
		}

		slog.Debug("item change notification failed, retrying",
			"attempt", attempt,
			"attempts", attempts,
			"retry_in", delay,
			"error", err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("item change notification abandoned: %w", errors.Join(err, ctx.Err()))
		case <-time.After(delay):
		}
		delay *= 2
	}

	slog.Warn("item change notification dropped",
		"attempts", attempts,
		"origin", origin,
		"error", err)
	return err
}
