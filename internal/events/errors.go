package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode says why the event daemon could not be reached.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// ErrQueueFull is returned by SendEvent when the outgoing queue is saturated.
var ErrQueueFull = errors.New("event queue full")

// DaemonError explains a failed daemon connection with a hint for the user.
// Live updates keep working inside the process either way.
type DaemonError struct {
	Code ErrorCode
	Hint string
	Err  error
}

func (e *DaemonError) Error() string {
	msg := e.summary()
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

func (e *DaemonError) Unwrap() error {
	return e.Err
}

func (e *DaemonError) summary() string {
	switch e.Code {
	case ErrSocketNotFound:
		return "event daemon socket not found, changes stay local"
	case ErrSocketPermission:
		return "event daemon socket not accessible, changes stay local"
	case ErrConnectionRefused:
		return "event daemon refused the connection, changes stay local"
	default:
		return "event daemon unreachable, changes stay local"
	}
}

// ClassifyDaemonError wraps a dial or read error with its cause and a hint.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &DaemonError{Code: ErrSocketNotFound, Err: err,
			Hint: "Start the daemon: basket-daemon &"}
	case errors.Is(err, os.ErrPermission):
		return &DaemonError{Code: ErrSocketPermission, Err: err,
			Hint: "Check ~/.basket/ permissions: chmod 700 ~/.basket/"}
	case errors.As(err, &errno) && errno == syscall.ECONNREFUSED:
		return &DaemonError{Code: ErrConnectionRefused, Err: err,
			Hint: "Daemon may have crashed. Remove the stale socket and restart basket-daemon"}
	}
	return &DaemonError{Code: ErrDaemonNotRunning, Err: err,
		Hint: "Start the daemon: basket-daemon &"}
}
