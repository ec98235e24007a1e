// Package console provides prompts and leveled messages on standard streams.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	clierr "github.com/randalmurphal/cliforge/errors"
)

// Console writes messages to out and reads answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Std creates a console over os.Stdin and os.Stdout.
func Std() *Console {
	return New(os.Stdin, os.Stdout)
}

// Out returns the output stream.
func (c *Console) Out() io.Writer {
	return c.out
}

// Print writes a formatted line.
func (c *Console) Print(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
	fmt.Fprintln(c.out)
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Info writes an informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, pterm.Info.Sprintf(format, args...))
}

// Warning writes a warning line.
func (c *Console) Warning(format string, args ...any) {
	fmt.Fprintln(c.out, pterm.Warning.Sprintf(format, args...))
}

// Error writes an error line.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.out, pterm.Error.Sprintf(format, args...))
}

// CRLF writes an empty line.
func (c *Console) CRLF() {
	fmt.Fprintln(c.out)
}

// Input prompts for a value. With a default, an empty answer returns the
// default. End of input without an answer and without a default aborts.
func (c *Console) Input(message string, def ...string) (string, error) {
	fmt.Fprintf(c.out, "- %s: ", message)
	if len(def) == 1 {
		fmt.Fprintf(c.out, "[%s]: ", def[0])
	}

	answer, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", clierr.System("read input", err)
	}
	if answer == "" {
		if len(def) == 1 {
			return def[0], nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", clierr.ErrAborted)
		}
	}
	return answer, nil
}

// Confirm prompts for an answer and reports whether it matches positive,
// ignoring case.
func (c *Console) Confirm(message, positive string) (bool, error) {
	fmt.Fprintf(c.out, "%s: ", message)
	answer, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, clierr.System("read input", err)
	}
	return strings.EqualFold(answer, positive), nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// Trace writes err and every error it wraps, one per line, followed by stack
// when it is not empty.
func (c *Console) Trace(err error, stack []byte) {
	if err == nil {
		return
	}
	c.Error("%s", err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(c.out, "  caused by: %T: %v\n", cause, cause)
	}
	if len(stack) > 0 {
		fmt.Fprintln(c.out, strings.TrimRight(string(stack), "\n"))
	}
}

// Logger returns a structured logger that writes to the console output at
// or above level.
func (c *Console) Logger(level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(c.out).WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// ParseLevel converts a level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
