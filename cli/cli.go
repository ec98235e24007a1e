// Package cli assembles the cliforge command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/cliforge/config"
	"github.com/randalmurphal/cliforge/console"
	"github.com/randalmurphal/cliforge/task"
)

// HomeEnv overrides installation root discovery.
const HomeEnv = "CLIFORGE_HOME"

// Options configures an App.
type Options struct {
	In  io.Reader
	Out io.Writer

	// WorkDir is the project directory. Defaults to the current directory.
	WorkDir string
}

// App is the cliforge command line.
type App struct {
	opts     Options
	console  *console.Console
	host     *task.Host
	home     string
	logLevel string
}

// New creates an App.
func New(opts Options) *App {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	a := &App{opts: opts, console: console.New(opts.In, opts.Out)}
	a.host = &task.Host{Console: a.console, Load: a.loadEnv}
	return a
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliforge",
		Short: "Project configuration and template scaffolding",
	}
	root.SetOut(a.opts.Out)
	root.SetErr(a.opts.Out)

	a.host.BindFlags(root)
	flags := root.PersistentFlags()
	flags.StringVar(&a.home, "home", "", "Installation root (default: $"+HomeEnv+" or derived from the executable).")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error.")

	root.AddCommand(
		a.configCommand(),
		a.initCommand(),
		a.createCommand(),
	)
	return root
}

// Execute runs the command line and returns the exit code.
func (a *App) Execute(ctx context.Context, args []string) task.ExitCode {
	return a.host.Execute(ctx, a.Command(), args)
}

// Run executes cliforge against the process streams and returns the exit status.
func Run(args []string) int {
	return int(New(Options{}).Execute(context.Background(), args))
}

func (a *App) loadEnv(_ context.Context) (*task.Env, error) {
	logger := a.console.Logger(console.ParseLevel(a.logLevel))

	home := a.home
	if home == "" {
		discovered, err := config.DiscoverHome(HomeEnv)
		if err != nil {
			logger.Debug("no installation home", "error", err)
		} else {
			home = discovered
		}
	}

	store, err := config.Load(config.Options{
		WorkDir: a.opts.WorkDir,
		Home:    home,
		Vars:    map[string]string{HomeEnv: home},
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &task.Env{
		Console: a.console,
		Config:  store,
		Logger:  logger,
		Home:    home,
	}, nil
}
