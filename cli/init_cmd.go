package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/cliforge/config"
	clierr "github.com/randalmurphal/cliforge/errors"
	"github.com/randalmurphal/cliforge/task"
)

const projectNameKey = "project.name"

func (a *App) initCommand() *cobra.Command {
	var (
		name string
		yes  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project properties file in the working directory",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&name, "name", "", "Project name. Prompted for when omitted.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	return a.host.Command(cmd, func(_ context.Context, env *task.Env, _ []string) (task.ExitCode, error) {
		dir, err := a.workDir()
		if err != nil {
			return task.ExitFor(err), err
		}

		if env.Config.InProject() {
			// Fails with ErrProjectExists before anything is asked.
			err := env.Config.InitProject()
			return task.ExitFor(err), err
		}

		if !yes {
			ok, err := env.Console.Confirm("Initialize project in "+dir+"? (yes/no)", "yes")
			if err != nil {
				return task.ExitFor(err), err
			}
			if !ok {
				return task.ExitAbort, clierr.ErrAborted
			}
		}

		if name == "" {
			// Only the project layer counts; a global project.name is not a
			// name for this directory.
			if current, source, _ := env.Config.GetWithSource(projectNameKey); source == config.SourceProject {
				name = current
			} else {
				name, err = env.Console.Input("Project name", filepath.Base(dir))
				if err != nil {
					return task.ExitFor(err), err
				}
			}
		}

		if err := env.Config.InitProject(); err != nil {
			return task.ExitFor(err), err
		}
		if err := env.Config.Put(projectNameKey, name); err != nil {
			return task.ExitFor(err), err
		}

		env.Console.Info("Project %s initialized.", name)
		return task.ExitSuccess, nil
	})
}

func (a *App) workDir() (string, error) {
	dir := a.opts.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", clierr.System("getwd", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", clierr.System("resolve "+dir, err)
	}
	return abs, nil
}
