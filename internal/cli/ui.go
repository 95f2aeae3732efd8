package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/apmath/bignum/internal/format"
)

// FormatExecutionDuration formats a duration for display; see
// format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the spinner animation interval.
	SpinnerRefreshRate = 200 * time.Millisecond
	// spinnerDelay is how long an evaluation may run before the spinner
	// appears; quick results never flicker one.
	spinnerDelay = 300 * time.Millisecond
)

// Spinner abstracts the behavior of a terminal spinner, decoupling the
// evaluation loop from a specific implementation and making it testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a constructor hook so tests can substitute a mock.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// RunWithSpinner runs fn, showing a spinner with the given message when
// it takes longer than spinnerDelay. It returns fn's error and the
// elapsed time.
func RunWithSpinner(message string, fn func() error) (time.Duration, error) {
	done := make(chan error, 1)
	start := time.Now()
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(spinnerDelay):
	}

	sp := newSpinner()
	sp.UpdateSuffix(" " + message)
	sp.Start()
	err := <-done
	sp.Stop()
	return time.Since(start), err
}
