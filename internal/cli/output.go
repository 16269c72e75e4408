package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/strideapp/stride/internal/habit"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (unknown habit, duplicate, lapsed storage, ...)
	ExitCommandError = 2 // Command error (bad arguments, unreadable database path, ...)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`            // "HABIT_NOT_FOUND", "DUPLICATE_HABIT", ...
	Message string `json:"message"`         // human-readable message
	Habit   string `json:"habit,omitempty"` // affected habit, when known
}

// Success outputs a successful result in the configured format.
// In text mode, data is printed as-is, so commands pass prerendered strings.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message, habitName string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Habit:   habitName,
			},
		})
	}

	fmt.Fprintln(f.Writer, message)
	return nil
}

// fail renders a domain error through the formatter and converts it into an
// ExitError so the process exits nonzero without cobra re-printing it.
// The text message keeps the original tracker's phrasing where one exists.
func fail(f *OutputFormatter, err error) error {
	var he *habit.Error
	if errors.As(err, &he) {
		_ = f.Error(string(he.Code), textMessage(he), he.Habit)
		return WrapExitError(ExitFailure, he.Message, err)
	}

	_ = f.Error("ERROR", err.Error(), "")
	return WrapExitError(ExitFailure, "command failed", err)
}

// textMessage maps a domain error to the user-facing sentence the original
// tracker printed.
func textMessage(he *habit.Error) string {
	switch he.Code {
	case habit.ErrCodeDuplicateHabit:
		return fmt.Sprintf("Habit '%s' already exists.", he.Habit)
	case habit.ErrCodeHabitNotFound:
		return fmt.Sprintf("Habit '%s' does not exist.", he.Habit)
	case habit.ErrCodeDuplicateCompletion:
		return fmt.Sprintf("Habit '%s' has already been completed for this period.", he.Habit)
	default:
		return he.Error()
	}
}
