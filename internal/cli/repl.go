package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apmath/bignum"
	"github.com/apmath/bignum/internal/format"
	"github.com/apmath/bignum/internal/ui"
)

// REPLConfig holds configuration for an interactive session.
type REPLConfig struct {
	// Base is the output base for results.
	Base int
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
	// Seed seeds the session's random commands.
	Seed uint64
	// Verbose disables result truncation.
	Verbose bool
}

// REPL is an interactive calculator session: every input line is an RPN
// expression evaluated against a persistent stack.
type REPL struct {
	config REPLConfig
	eval   *Evaluator
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new session with an empty stack.
func NewREPL(config REPLConfig) *REPL {
	if config.Base == 0 {
		config.Base = 10
	}
	return &REPL{
		config: config,
		eval:   NewEvaluator(config.Seed),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until the user exits or input is exhausted.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"calc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processLine(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sArbitrary-Precision Calculator - Interactive Mode%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sRPN input: operands push, operators pop.%s\n", ui.ColorGrey(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	w := r.out
	fmt.Fprintf(w, "\n%sOperators:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(w, "  + - * / %% divmod pow powmod neg abs sq sqrt\n")
	fmt.Fprintf(w, "  gcd lcm and or xor not shl shr\n")
	fmt.Fprintf(w, "  fact fib lucas binomial prime? nextprime prevprime rand\n")
	fmt.Fprintf(w, "  dup drop swap clear\n")
	fmt.Fprintf(w, "%sSession commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(w, "  %sbase <n>%s    - Change output base (2..62)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(w, "  %shex%s         - Shortcut for base 16 (again for base 10)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(w, "  %sstack%s       - Show the whole stack\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(w, "  %sstatus%s      - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(w, "  %shelp%s        - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(w, "  %sexit%s / %squit%s - Leave the session\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processLine handles one input line. Returns false when the session
// should end.
func (r *REPL) processLine(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "base":
		r.cmdBase(parts[1:])
	case "hex":
		r.cmdHex()
	case "stack", "st":
		r.cmdStack()
	case "status":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(input)
	}
	return true
}

// evaluate runs one expression, showing a spinner when it takes long,
// and prints the resulting top of stack.
func (r *REPL) evaluate(input string) {
	duration, err := RunWithSpinner("evaluating...", func() error {
		return r.eval.EvalLine(input)
	})
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	top, err := r.eval.Top()
	if err != nil {
		fmt.Fprintf(r.out, "%s(stack empty)%s\n", ui.ColorGrey(), ui.ColorReset())
		return
	}
	r.displayTop(top, duration)
}

func (r *REPL) displayTop(top *bignum.Int, duration time.Duration) {
	s, err := top.Text(r.config.Base)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	if !r.config.Verbose && len(s) > TruncationLimit {
		fmt.Fprintf(r.out, "%s%s...%s%s %s(%d digits, %s)%s\n",
			ui.ColorGreen(), s[:DisplayEdges], s[len(s)-DisplayEdges:], ui.ColorReset(),
			ui.ColorGrey(), len(s), FormatExecutionDuration(duration), ui.ColorReset())
		return
	}
	if r.config.Base == 10 {
		s = format.FormatNumberString(s)
	}
	fmt.Fprintf(r.out, "%s%s%s %s(%s)%s\n",
		ui.ColorGreen(), s, ui.ColorReset(),
		ui.ColorGrey(), FormatExecutionDuration(duration), ui.ColorReset())
}

func (r *REPL) cmdBase(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 2 || n > 62 {
		fmt.Fprintf(r.out, "%sBase must be in 2..62%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.config.Base = n
	fmt.Fprintf(r.out, "Output base: %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

// cmdHex toggles between hexadecimal and decimal output.
func (r *REPL) cmdHex() {
	if r.config.Base == 16 {
		r.config.Base = 10
	} else {
		r.config.Base = 16
	}
	fmt.Fprintf(r.out, "Output base: %s%d%s\n", ui.ColorGreen(), r.config.Base, ui.ColorReset())
}

func (r *REPL) cmdStack() {
	stack := r.eval.Stack()
	if len(stack) == 0 {
		fmt.Fprintf(r.out, "%s(stack empty)%s\n", ui.ColorGrey(), ui.ColorReset())
		return
	}
	// Top last, matching the push order of the input.
	for i, x := range stack {
		s, err := x.Text(r.config.Base)
		if err != nil {
			s = x.String()
		}
		if len(s) > TruncationLimit && !r.config.Verbose {
			s = fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
		}
		fmt.Fprintf(r.out, "  %s%2d:%s %s\n", ui.ColorGrey(), i, ui.ColorReset(), s)
	}
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Base:     %s%d%s\n", ui.ColorCyan(), r.config.Base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Depth:    %s%d%s\n", ui.ColorCyan(), r.eval.Depth(), ui.ColorReset())
	verbose := "no"
	if r.config.Verbose {
		verbose = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:  %s%s%s\n", ui.ColorCyan(), verbose, ui.ColorReset())
	fmt.Fprintln(r.out)
}
