// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--prec"),
			expected: "invalid value 42 for flag --prec",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	t.Parallel()
	cause := errors.New("division by zero")
	err := NewEvalError("10 0 /", cause)

	if !errors.Is(err, cause) {
		t.Error("EvalError should unwrap to its cause")
	}
	var evalErr EvalError
	if !errors.As(err, &evalErr) {
		t.Fatal("expected error to be EvalError type")
	}
	if evalErr.Expr != "10 0 /" {
		t.Errorf("Expr = %q", evalErr.Expr)
	}
	if msg := err.Error(); msg != `evaluating "10 0 /": division by zero` {
		t.Errorf("Error() = %q", msg)
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "factorial", Limit: 5 * time.Second}
	want := `operation "factorial" timed out after 5s`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "base", Message: "must be in 2..62"}
	want := `validation error for "base": must be in 2..62`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	cause := errors.New("boom")
	err := WrapError(cause, "reading %s", "input")
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
	if err.Error() != "reading input: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should be a context error")
	}
	if !IsContextError(WrapError(context.DeadlineExceeded, "calc")) {
		t.Error("wrapped DeadlineExceeded should be a context error")
	}
	if IsContextError(errors.New("other")) {
		t.Error("unrelated error reported as context error")
	}
}
