package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/cliforge/config"
	clierr "github.com/randalmurphal/cliforge/errors"
	"github.com/randalmurphal/cliforge/task"
)

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change project properties",
	}
	cmd.AddCommand(
		a.configGetCommand(),
		a.configSetCommand(),
		a.configUnsetCommand(),
		a.configListCommand(),
	)
	return cmd
}

func (a *App) configGetCommand() *cobra.Command {
	var (
		def        string
		required   bool
		showSource bool
	)
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print a property, project first then global",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&def, "default", "", "Value used when the property is not set.")
	cmd.Flags().BoolVar(&required, "required", false, "Fail when the property is not set.")
	cmd.Flags().BoolVar(&showSource, "source", false, "Print where the value came from.")

	return a.host.Command(cmd, func(_ context.Context, env *task.Env, args []string) (task.ExitCode, error) {
		var defs []string
		if cmd.Flags().Changed("default") {
			defs = append(defs, def)
		}

		key := args[0]
		if required {
			if _, err := env.Config.GetRequired(key, defs...); err != nil {
				return task.ExitFor(err), err
			}
		}
		value, source, ok := env.Config.GetWithSource(key, defs...)
		if !ok {
			return task.ExitSuccess, nil
		}
		if showSource {
			env.Console.Print("%s\t(%s)", value, source)
		} else {
			env.Console.Println(value)
		}
		return task.ExitSuccess, nil
	})
}

func (a *App) configSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a project property",
		Args:  cobra.ExactArgs(2),
	}
	return a.host.Command(cmd, func(_ context.Context, env *task.Env, args []string) (task.ExitCode, error) {
		if err := env.Config.Put(args[0], args[1]); err != nil {
			return task.ExitFor(err), err
		}
		env.Logger.Info("property stored", "key", args[0], "file", env.Config.ProjectFile())
		return task.ExitSuccess, nil
	})
}

func (a *App) configUnsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a project property",
		Args:  cobra.ExactArgs(1),
	}
	return a.host.Command(cmd, func(_ context.Context, env *task.Env, args []string) (task.ExitCode, error) {
		if err := env.Config.Remove(args[0]); err != nil {
			return task.ExitFor(err), err
		}
		return task.ExitSuccess, nil
	})
}

func (a *App) configListCommand() *cobra.Command {
	var (
		global bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties sorted by key",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&global, "global", false, "Include global properties.")
	cmd.Flags().StringVar(&format, "format", "properties", "Output format: properties or yaml.")

	return a.host.Command(cmd, func(_ context.Context, env *task.Env, _ []string) (task.ExitCode, error) {
		entries := env.Config.Properties(global)
		switch format {
		case "properties":
			for _, e := range entries {
				env.Console.Print("%s=%s", e.Key, e.Value)
			}
		case "yaml":
			out, err := marshalEntries(entries)
			if err != nil {
				return task.ExitFor(err), err
			}
			fmt.Fprint(env.Console.Out(), out)
		default:
			return task.ExitContractFail, clierr.Contract("config.list", nil, "Unknown format |%s|.", format)
		}
		return task.ExitSuccess, nil
	})
}

func marshalEntries(entries []config.Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode properties: %w", err)
	}
	return string(data), nil
}
