// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing
//     I/O. They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apmath/bignum"
	"github.com/apmath/bignum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Base is the base results are rendered in.
	Base int
	// OutputFile is the path to save the result (empty for no file
	// output).
	OutputFile string
	// Quiet mode prints the bare result only.
	Quiet bool
	// Verbose shows the full result value regardless of length.
	Verbose bool
}

// FormatResult renders x in the configured base, truncating long
// values to their edges unless verbose output is requested.
func FormatResult(x *bignum.Int, cfg OutputConfig) (string, error) {
	s, err := x.Text(cfg.Base)
	if err != nil {
		return "", err
	}
	if cfg.Verbose || cfg.Quiet || len(s) <= TruncationLimit {
		return s, nil
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s)), nil
}

// DisplayResult writes an evaluation result with timing and size
// details. Quiet mode reduces the output to the bare value for
// scripting.
func DisplayResult(out io.Writer, x *bignum.Int, duration time.Duration, cfg OutputConfig) error {
	s, err := FormatResult(x, cfg)
	if err != nil {
		return err
	}
	if cfg.Quiet {
		fmt.Fprintln(out, s)
		return nil
	}

	fmt.Fprintf(out, "%s= %s%s\n", ui.ColorGreen(), s, ui.ColorReset())
	fmt.Fprintf(out, "  %sbits:%s %d  %stime:%s %s\n",
		ui.ColorGrey(), ui.ColorReset(), x.BitLen(),
		ui.ColorGrey(), ui.ColorReset(), FormatExecutionDuration(duration))
	return nil
}

// WriteResultToFile writes a result to a file with a small metadata
// header. Parent directories are created as needed.
func WriteResultToFile(x *bignum.Int, expr string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	s, err := x.Text(cfg.Base)
	if err != nil {
		return err
	}

	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", expr)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Base: %d\n", cfg.Base)
	fmt.Fprintf(file, "# Bits: %d\n", x.BitLen())
	fmt.Fprintf(file, "\n%s\n", s)
	return nil
}
