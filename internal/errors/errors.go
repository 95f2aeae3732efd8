package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the
// program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorEval     = 3   // Indicates an expression evaluation error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid
// flags or values. It indicates that the application cannot proceed due
// to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvalError encapsulates an expression evaluation failure while
// preserving the original cause, so callers can inspect what went wrong
// inside the arithmetic layer.
type EvalError struct {
	// Expr is the expression or token that failed.
	Expr string
	// Cause is the underlying error.
	Cause error
}

// Error returns a message naming the failing expression and its cause.
func (e EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection with errors.Is or errors.As.
func (e EvalError) Unwrap() error { return e.Cause }

// NewEvalError wraps a cause with the expression it occurred in.
func NewEvalError(expr string, cause error) error {
	return EvalError{Expr: expr, Cause: cause}
}

// TimeoutError represents an evaluation timeout. It captures the
// operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered
	// timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable
// explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and
// %w, so the result can be unwrapped with errors.Unwrap and checked
// with errors.Is and errors.As. Returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or
// deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
