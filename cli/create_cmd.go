package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	clierr "github.com/randalmurphal/cliforge/errors"
	"github.com/randalmurphal/cliforge/scaffold"
	"github.com/randalmurphal/cliforge/task"
)

func (a *App) createCommand() *cobra.Command {
	var (
		dir       string
		overrides []string
		verbose   bool
		strict    bool
	)
	cmd := &cobra.Command{
		Use:   "create TYPE NAME",
		Short: "Expand the NAME template of kind TYPE",
		Long: `Expand <home>/template/TYPE/NAME.zip into the target directory.

Entry names may reference ${property} placeholders. Entries ending in .tmpl
are rendered with the merged project and global properties and written without
the suffix.`,
		Args: cobra.ExactArgs(2),
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default: working directory).")
	cmd.Flags().StringArrayVar(&overrides, "var", nil, "Extra variable as key=value. Repeatable.")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every created file.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown placeholders in entry names.")

	return a.host.Command(cmd, func(_ context.Context, env *task.Env, args []string) (task.ExitCode, error) {
		if env.Home == "" {
			return task.ExitContractFail, clierr.WithSuggestion(
				clierr.Contract("create", clierr.ErrInvalidHome, "No installation home."),
				"Pass --home or set "+HomeEnv+".")
		}

		variables := env.Config.Variables()
		for _, kv := range overrides {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return task.ExitContractFail, clierr.Contract("create", nil, "Invalid variable |%s|, expected key=value.", kv)
			}
			variables[k] = v
		}

		if dir == "" {
			wd, err := a.workDir()
			if err != nil {
				return task.ExitFor(err), err
			}
			dir = wd
		}

		exp := &scaffold.Expander{
			TargetDir: dir,
			Verbose:   verbose,
			Printer:   env.Console,
			Strict:    strict,
			Logger:    env.Logger,
		}
		kind, name := args[0], args[1]
		if err := exp.Exec(env.Home, kind, name, variables); err != nil {
			return task.ExitFor(err), err
		}
		env.Logger.Info("template expanded", "type", kind, "name", name, "dir", dir)
		return task.ExitSuccess, nil
	})
}
