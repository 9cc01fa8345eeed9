package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out receives results; nil means os.Stdout.
	Out io.Writer
}

// NewFormatter reads the --json and --quiet flags every command carries.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: cmd.OutOrStdout()}
}

// Writer returns where results are printed.
func (f *OutputFormatter) Writer() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

// Printf writes human-readable output.
func (f *OutputFormatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.Writer(), format, args...)
}

// AddOutputFlags registers --json and --quiet on cmd.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			f.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// WriteJSON encodes v as one line.
func (f *OutputFormatter) WriteJSON(v any) error {
	return json.NewEncoder(f.Writer()).Encode(v)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.WriteJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	writeHumanError(os.Stderr, message, suggestion)
	return nil
}

// Fail reports err under code and returns it tagged with exitCode, ready to
// be returned from a RunE.
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CodedError{Code: exitCode, Err: err, Reported: true}
}

func writeHumanError(w io.Writer, message, suggestion string) {
	fmt.Fprintf(w, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(w, "💡 Suggestion: %s\n", suggestion)
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		f.Printf("%s\n", s.String())
		return nil
	}
	f.Printf("%+v\n", data)
	return nil
}
