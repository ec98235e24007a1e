// Package task provides the execution harness for CLI subcommands.
//
// Core types:
//   - Func: the body of a subcommand, returning an exit code and an error
//   - Runner: runs a Func, times it, and maps failures to exit codes
//   - Host: binds Funcs to cobra commands sharing one console and config
//
// Exit codes:
//   - ExitSuccess (0)
//   - ExitAbort (1): the user declined to continue
//   - ExitSystemFail (2): I/O failure
//   - ExitApplicationFail (3): any other failure, including panics
//   - ExitContractFail (4): contract violation or command line misuse
//
// Example usage:
//
//	host := &task.Host{Console: console.Std(), Load: loadEnv}
//	root := &cobra.Command{Use: "app"}
//	host.BindFlags(root)
//	root.AddCommand(host.Command(&cobra.Command{Use: "build"}, build))
//	os.Exit(int(host.Execute(ctx, root, os.Args[1:])))
package task
