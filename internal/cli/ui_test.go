package cli

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
)

// MockSpinner for testing
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

// swapSpinner substitutes the spinner constructor for the duration of a
// test and returns the mock it installs.
func swapSpinner(t *testing.T) *MockSpinner {
	t.Helper()
	mock := &MockSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return mock }
	t.Cleanup(func() { newSpinner = orig })
	return mock
}

func TestRunWithSpinnerQuickResult(t *testing.T) {
	mock := swapSpinner(t)

	duration, err := RunWithSpinner("working...", func() error { return nil })
	if err != nil {
		t.Fatalf("RunWithSpinner: %v", err)
	}
	if duration < 0 {
		t.Errorf("duration = %v, want non-negative", duration)
	}
	// The function returned well before spinnerDelay, so no spinner
	// should have appeared.
	if mock.started {
		t.Error("spinner should not start for a quick function")
	}
}

func TestRunWithSpinnerSlowResult(t *testing.T) {
	mock := swapSpinner(t)

	_, err := RunWithSpinner("working...", func() error {
		time.Sleep(spinnerDelay + 100*time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("RunWithSpinner: %v", err)
	}
	if !mock.started {
		t.Error("spinner should start for a slow function")
	}
	if !mock.stopped {
		t.Error("spinner should stop when the function returns")
	}
	if mock.suffix != " working..." {
		t.Errorf("suffix = %q, want %q", mock.suffix, " working...")
	}
}

func TestRunWithSpinnerPropagatesError(t *testing.T) {
	swapSpinner(t)

	want := errors.New("boom")
	_, err := RunWithSpinner("working...", func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestFormatExecutionDurationDelegation(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{2 * time.Second, "2s"},
	}
	for _, tc := range tests {
		if got := FormatExecutionDuration(tc.d); got != tc.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
