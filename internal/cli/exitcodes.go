package cli

import (
	"errors"
	"strconv"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, daemon errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, bad arguments, or a destructive
	// command run without --force.
	ExitUsage = 2

	// ExitNotFound indicates the requested item does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin or a config file that cannot be written.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank title, description or price, or an unknown
	// category or priority.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command.
// Commands return it instead of calling os.Exit so they stay testable.
type CodedError struct {
	Code int
	Err  error

	// Reported is set once the error has been shown to the user.
	Reported bool
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err.
func WithExitCode(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCodeOf returns the code main should exit with for err.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}

// Reported reports whether err was already printed by an OutputFormatter.
func Reported(err error) bool {
	var coded *CodedError
	return errors.As(err, &coded) && coded.Reported
}
