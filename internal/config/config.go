// Package config defines the application configuration and its
// resolution chain: CLI flags take priority over environment variables,
// which take priority over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/apmath/bignum/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application
// reads, e.g. APCALC_BASE.
const EnvPrefix = "APCALC_"

// Defaults for the configuration fields.
const (
	DefaultBase    = 10
	DefaultTimeout = 5 * time.Minute
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Base is the output base for results, 2..62.
	Base int
	// Prec is the floating-point precision in bits; 0 keeps the engine
	// default.
	Prec uint
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// Eval is a one-shot expression to evaluate; empty starts the REPL.
	Eval string
	// OutputFile is the path to save results to (empty for none).
	OutputFile string
	// Seed seeds the deterministic random commands; 0 seeds from the
	// current time.
	Seed uint64
	// Quiet suppresses everything except the bare result.
	Quiet bool
	// Verbose prints full results without truncation.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Completion names a shell to emit a completion script for.
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not given on the command line, and
// validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Base:    DefaultBase,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Base, "base", cfg.Base, "Output base for results (2..62)")
	fs.IntVar(&cfg.Base, "b", cfg.Base, "Shorthand for -base")
	prec := fs.Uint("prec", 0, "Floating-point precision in bits (0 = engine default)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of a single evaluation")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "Shorthand for -timeout")
	fs.StringVar(&cfg.Eval, "eval", "", "Evaluate one RPN expression and exit")
	fs.StringVar(&cfg.Eval, "e", "", "Shorthand for -eval")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the result to a file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for -output")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for the deterministic random commands")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the bare result")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Never truncate results")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.StringVar(&cfg.Completion, "completion", "", "Emit a completion script (bash, zsh, fish, powershell)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [expression]\n\n", programName)
		fmt.Fprintf(errWriter, "An arbitrary-precision RPN calculator. Without -eval or an\n")
		fmt.Fprintf(errWriter, "expression argument it starts an interactive session.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment: every flag can be preset via %s<NAME>,\n", EnvPrefix)
		fmt.Fprintf(errWriter, "e.g. %sBASE=16. Command-line flags win.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	cfg.Prec = *prec

	applyEnvOverrides(&cfg, fs)

	// Positional arguments form an expression, like -eval.
	if rest := fs.Args(); len(rest) > 0 && cfg.Eval == "" {
		cfg.Eval = strings.Join(rest, " ")
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the evaluator cannot honor.
func (c AppConfig) Validate() error {
	if c.Base < 2 || c.Base > 62 {
		return apperrors.NewConfigError("base must be in 2..62, got %d", c.Base)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell", "ps":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", c.Completion)
	}
	return nil
}
