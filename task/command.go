package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/cliforge/console"
)

// Host shares one console, environment loader and set of options between the
// commands of a tree, and records the exit code of the command that ran.
type Host struct {
	Console *console.Console
	Load    Loader
	Options Options

	code ExitCode
}

// BindFlags registers --time and -x/--exception on root as persistent flags.
func (h *Host) BindFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.BoolVar(&h.Options.Time, "time", false, "Measure execution time.")
	flags.BoolVarP(&h.Options.StackTrace, "exception", "x", false, "Print stack trace on exception.")
}

// Command makes cmd run fn through a Runner. Any RunE already on cmd is replaced.
func (h *Host) Command(cmd *cobra.Command, fn Func) *cobra.Command {
	cmd.RunE = func(c *cobra.Command, args []string) error {
		h.code = NewRunner(h.Console, h.Load, h.Options).Run(c.Context(), fn, args)
		return nil
	}
	return cmd
}

// ExitCode returns the exit code of the last command run.
func (h *Host) ExitCode() ExitCode {
	return h.code
}

// Execute runs root with args. Command line errors reported by cobra, such as
// unknown flags or wrong argument counts, are contract failures.
func (h *Host) Execute(ctx context.Context, root *cobra.Command, args []string) ExitCode {
	h.code = ExitSuccess
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		h.Console.Error("%s", err.Error())
		return ExitContractFail
	}
	return h.code
}
