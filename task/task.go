package task

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/randalmurphal/cliforge/config"
	"github.com/randalmurphal/cliforge/console"
	clierr "github.com/randalmurphal/cliforge/errors"
)

// ExitCode is the process exit status of a task.
type ExitCode int

const (
	// ExitSuccess means the task completed.
	ExitSuccess ExitCode = iota

	// ExitAbort means the user declined to continue.
	ExitAbort

	// ExitSystemFail means an I/O operation failed.
	ExitSystemFail

	// ExitApplicationFail means the task failed for any other reason,
	// including a panic.
	ExitApplicationFail

	// ExitContractFail means the task was invoked or used incorrectly.
	ExitContractFail
)

func (c ExitCode) String() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitAbort:
		return "abort"
	case ExitSystemFail:
		return "system failure"
	case ExitApplicationFail:
		return "application failure"
	case ExitContractFail:
		return "contract failure"
	default:
		return fmt.Sprintf("exit code %d", int(c))
	}
}

// ExitFor maps an error to its exit code.
func ExitFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	if clierr.IsAborted(err) {
		return ExitAbort
	}
	switch clierr.KindOf(err) {
	case clierr.KindSystem:
		return ExitSystemFail
	case clierr.KindContract:
		return ExitContractFail
	default:
		return ExitApplicationFail
	}
}

// Env is what a task body works with.
type Env struct {
	Console *console.Console
	Config  *config.Store
	Logger  *slog.Logger
	Home    string
}

// Func is the body of a subcommand. A body returning an error returns
// ExitFor(err) with it, or the explicit code of an error it builds itself.
type Func func(ctx context.Context, env *Env, args []string) (ExitCode, error)

// Loader builds the Env for a run. Load failures are classified like task
// failures.
type Loader func(ctx context.Context) (*Env, error)

// Options controls reporting.
type Options struct {
	// Time prints the processing time after the task.
	Time bool

	// StackTrace prints the full error chain, and the stack for panics,
	// instead of a one-line summary.
	StackTrace bool
}

// PanicError carries a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Runner runs task bodies.
type Runner struct {
	console *console.Console
	load    Loader
	opts    Options
	now     func() time.Time
}

// NewRunner creates a runner reporting to c.
func NewRunner(c *console.Console, load Loader, opts Options) *Runner {
	return &Runner{console: c, load: load, opts: opts, now: time.Now}
}

type outcome struct {
	code  ExitCode
	err   error
	stack []byte
}

// Run loads the environment, runs fn, and returns the exit code. Errors and
// panics are reported on the console, never returned.
func (r *Runner) Run(ctx context.Context, fn Func, args []string) ExitCode {
	start := r.now()

	out := r.exec(ctx, fn, args)
	if out.err != nil {
		out.code = ExitFor(out.err)
		r.report(out)
	}

	if r.opts.Time {
		elapsed := r.now().Sub(start)
		r.console.Print("Processing time: %.04f msec.", float64(elapsed.Nanoseconds())/1e6)
	}
	return out.code
}

func (r *Runner) exec(ctx context.Context, fn Func, args []string) (out outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = outcome{code: ExitApplicationFail, err: &PanicError{Value: p}, stack: debug.Stack()}
		}
	}()

	env, err := r.load(ctx)
	if err != nil {
		return outcome{err: err}
	}
	code, err := fn(ctx, env, args)
	return outcome{code: code, err: err}
}

func (r *Runner) report(out outcome) {
	if r.opts.StackTrace {
		r.console.Trace(out.err, out.stack)
		return
	}
	if clierr.IsAborted(out.err) {
		r.console.Warning("Aborted.")
		return
	}
	r.console.Error("%s: %s", failureName(out.err), out.err.Error())
}

func failureName(err error) string {
	if _, ok := err.(*PanicError); ok {
		return "Panic"
	}
	switch clierr.KindOf(err) {
	case clierr.KindSystem:
		return "SystemError"
	case clierr.KindContract:
		return "ContractError"
	default:
		return "ApplicationError"
	}
}
