// Package app wires configuration, evaluation and output into the
// apcalc application: one-shot expression evaluation, an interactive
// session, and shell completion generation.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/apmath/bignum"
	"github.com/apmath/bignum/internal/cli"
	"github.com/apmath/bignum/internal/config"
	apperrors "github.com/apmath/bignum/internal/errors"
	"github.com/apmath/bignum/internal/logging"
	"github.com/apmath/bignum/internal/ui"
)

// Application represents the apcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "apcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logging.NewLogger(errWriter, "apcalc"),
	}, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Prec > 0 {
		if err := bignum.SetDefaultPrecision(a.Config.Prec); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
	}

	if a.Config.Eval != "" {
		return a.runEval(ctx, out)
	}

	return a.runREPL()
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runEval evaluates a single expression and prints the top of the
// resulting stack.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.Logger.Debug("starting evaluation",
		logging.String("expr", a.Config.Eval),
		logging.Int("base", a.Config.Base),
		logging.Uint64("seed", a.Config.Seed))

	eval := cli.NewEvaluator(a.Config.Seed)

	start := time.Now()
	done := make(chan error, 1)
	go func() { done <- eval.EvalLine(a.Config.Eval) }()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n",
				apperrors.TimeoutError{Operation: "evaluation", Limit: a.Config.Timeout})
			return apperrors.ExitErrorTimeout
		}
		fmt.Fprintln(a.ErrWriter, "Canceled.")
		return apperrors.ExitErrorCanceled
	case err := <-done:
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorEval
		}
	}
	duration := time.Since(start)

	result, err := eval.Top()
	if err != nil {
		fmt.Fprintln(a.ErrWriter, "Error: expression left an empty stack")
		return apperrors.ExitErrorEval
	}

	a.Logger.Debug("evaluation complete",
		logging.Uint64("bits", uint64(result.BitLen())),
		logging.Int("depth", eval.Depth()),
		logging.String("duration", duration.String()))

	return a.outputResult(out, result, duration)
}

// outputResult displays the result and saves it to a file when one is
// configured.
func (a *Application) outputResult(out io.Writer, result *bignum.Int, duration time.Duration) int {
	outputCfg := cli.OutputConfig{
		Base:       a.Config.Base,
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	if err := cli.DisplayResult(out, result, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(result, a.Config.Eval, duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// runREPL launches the interactive session.
func (a *Application) runREPL() int {
	r := cli.NewREPL(cli.REPLConfig{
		Base:    a.Config.Base,
		Timeout: a.Config.Timeout,
		Seed:    a.Config.Seed,
		Verbose: a.Config.Verbose,
	})
	r.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
