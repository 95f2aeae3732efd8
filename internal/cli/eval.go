// Package cli provides the evaluator, REPL and output formatting for
// the interactive arbitrary-precision calculator.
package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/apmath/bignum"
	apperrors "github.com/apmath/bignum/internal/errors"
)

// Evaluator errors reported for malformed expressions.
var (
	// ErrStackUnderflow means an operator needed more operands than the
	// stack held.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOperandRange means an operand was outside the range an
	// operator accepts (e.g. a negative shift count).
	ErrOperandRange = errors.New("operand out of range")
	// ErrUnknownToken means the token is neither a number nor a known
	// operator.
	ErrUnknownToken = errors.New("unknown token")
)

// Evaluator is a stack machine over arbitrary-precision integers.
// Expressions are in reverse Polish notation: operands push, operators
// pop their arguments and push their result. An evaluation error
// leaves the stack as the failing token found it.
type Evaluator struct {
	stack []*bignum.Int
	rng   *bignum.Rand
}

// NewEvaluator returns an empty Evaluator whose "rand" command is
// seeded with seed. A zero seed is replaced with the current time, so
// unseeded sessions do not all share one sequence.
func NewEvaluator(seed uint64) *Evaluator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Evaluator{rng: bignum.NewRand(seed)}
}

// Depth returns the number of values on the stack.
func (e *Evaluator) Depth() int { return len(e.stack) }

// Stack returns the stack bottom-first. The handles are shared, so
// callers must treat them as read-only.
func (e *Evaluator) Stack() []*bignum.Int {
	out := make([]*bignum.Int, len(e.stack))
	copy(out, e.stack)
	return out
}

// Top returns the top of the stack without popping it.
func (e *Evaluator) Top() (*bignum.Int, error) {
	if len(e.stack) == 0 {
		return nil, ErrStackUnderflow
	}
	return e.stack[len(e.stack)-1], nil
}

// Clear drops every value from the stack.
func (e *Evaluator) Clear() { e.stack = e.stack[:0] }

// Push pushes x onto the stack.
func (e *Evaluator) Push(x *bignum.Int) { e.stack = append(e.stack, x) }

func (e *Evaluator) pop() (*bignum.Int, error) {
	if len(e.stack) == 0 {
		return nil, ErrStackUnderflow
	}
	x := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return x, nil
}

// pop2 pops y then x, so that x is the earlier (left) operand.
func (e *Evaluator) pop2() (x, y *bignum.Int, err error) {
	if len(e.stack) < 2 {
		return nil, nil, ErrStackUnderflow
	}
	y, _ = e.pop()
	x, _ = e.pop()
	return x, y, nil
}

// popUint pops a value that must fit a non-negative machine integer,
// for shift counts and sequence indices.
func (e *Evaluator) popUint() (uint, error) {
	x, err := e.pop()
	if err != nil {
		return 0, err
	}
	if x.Sign() < 0 || !x.IsUint64() {
		return 0, ErrOperandRange
	}
	return uint(x.Uint64()), nil
}

// EvalLine evaluates a whitespace-separated RPN expression. It stops at
// the first failing token and reports it; tokens already evaluated keep
// their effect.
func (e *Evaluator) EvalLine(line string) error {
	for _, tok := range strings.Fields(line) {
		if err := e.EvalToken(tok); err != nil {
			return err
		}
	}
	return nil
}

// EvalToken evaluates a single token: a numeric literal in any
// auto-detected base, an operator, or a stack command.
func (e *Evaluator) EvalToken(tok string) error {
	depth := len(e.stack)
	if err := e.apply(tok); err != nil {
		// No operator pushes before its last error check, so popped
		// operands are still in the backing array and re-slicing
		// restores the stack the token found.
		if len(e.stack) < depth {
			e.stack = e.stack[:depth]
		}
		return apperrors.NewEvalError(tok, err)
	}
	return nil
}

func (e *Evaluator) apply(tok string) error {
	switch tok {
	case "+":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.Add(y))
	case "-":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.Sub(y))
	case "*":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.Mul(y))
	case "/":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		q, err := x.FloorQuo(y)
		if err != nil {
			return err
		}
		e.Push(q)
	case "%":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		r, err := x.Mod(y)
		if err != nil {
			return err
		}
		e.Push(r)
	case "divmod":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		q, r, err := x.FloorQuoRem(y)
		if err != nil {
			return err
		}
		e.Push(q)
		e.Push(r)
	case "pow", "**":
		if err := e.require(2); err != nil {
			return err
		}
		n, err := e.popUint()
		if err != nil {
			return err
		}
		x, _ := e.pop()
		e.Push(x.Pow(n))
	case "powmod":
		if len(e.stack) < 3 {
			return ErrStackUnderflow
		}
		m, _ := e.pop()
		exp, _ := e.pop()
		base, _ := e.pop()
		r, err := base.PowMod(exp, m)
		if err != nil {
			return err
		}
		e.Push(r)
	case "neg":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(x.Neg())
	case "abs":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(x.Abs())
	case "sq":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(x.Mul(x))
	case "sqrt":
		x, err := e.pop()
		if err != nil {
			return err
		}
		s, err := x.Sqrt()
		if err != nil {
			return err
		}
		e.Push(s)
	case "gcd":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(bignum.GCD(x, y))
	case "lcm":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(bignum.LCM(x, y))
	case "and":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.And(y))
	case "or":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.Or(y))
	case "xor":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(x.Xor(y))
	case "not":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(x.Not())
	case "shl", "<<":
		if err := e.require(2); err != nil {
			return err
		}
		n, err := e.popUint()
		if err != nil {
			return err
		}
		x, _ := e.pop()
		e.Push(x.Lsh(n))
	case "shr", ">>":
		if err := e.require(2); err != nil {
			return err
		}
		n, err := e.popUint()
		if err != nil {
			return err
		}
		x, _ := e.pop()
		e.Push(x.Rsh(n))
	case "fact", "!":
		n, err := e.popUint()
		if err != nil {
			return err
		}
		e.Push(bignum.Factorial(n))
	case "fib":
		n, err := e.popUint()
		if err != nil {
			return err
		}
		e.Push(bignum.Fibonacci(n))
	case "lucas":
		n, err := e.popUint()
		if err != nil {
			return err
		}
		e.Push(bignum.Lucas(n))
	case "binomial":
		if err := e.require(2); err != nil {
			return err
		}
		k, err := e.popUint()
		if err != nil {
			return err
		}
		x, _ := e.pop()
		e.Push(bignum.BinomialInt(x, k))
	case "prime?":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(bignum.NewInt64(int64(x.ProbablyPrime(25))))
	case "nextprime":
		x, err := e.pop()
		if err != nil {
			return err
		}
		e.Push(x.NextPrime())
	case "prevprime":
		x, err := e.pop()
		if err != nil {
			return err
		}
		p, err := x.PreviousPrime()
		if err != nil {
			return err
		}
		e.Push(p)
	case "rand":
		x, err := e.pop()
		if err != nil {
			return err
		}
		r, err := bignum.RandBelow(e.rng, x)
		if err != nil {
			return err
		}
		e.Push(r)
	case "dup":
		x, err := e.Top()
		if err != nil {
			return err
		}
		e.Push(x.Copy())
	case "drop":
		_, err := e.pop()
		return err
	case "swap":
		x, y, err := e.pop2()
		if err != nil {
			return err
		}
		e.Push(y)
		e.Push(x)
	case "clear":
		e.Clear()
	default:
		x, err := bignum.Parse(tok, 0)
		if err != nil {
			return ErrUnknownToken
		}
		e.Push(x)
	}
	return nil
}

// require fails early when fewer than n operands are available, before
// any of them is popped.
func (e *Evaluator) require(n int) error {
	if len(e.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}
