package console

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierr "github.com/randalmurphal/cliforge/errors"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestConsole_Print(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Print("Processing time: %.04f msec.", 1.5)
	c.Println("plain", 42)
	c.CRLF()

	assert.Equal(t, "Processing time: 1.5000 msec.\nplain 42\n\n", out.String())
}

func TestConsole_Leveled(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Info("created %s", "site")
	c.Warning("missing %s", "descriptor")
	c.Error("failed %d", 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "created site")
	assert.Contains(t, lines[1], "missing descriptor")
	assert.Contains(t, lines[2], "failed 3")
}

func TestConsole_Input(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     []string
		want    string
		prompt  string
		aborted bool
	}{
		{name: "answer", input: "fables\n", want: "fables", prompt: "- Project name: "},
		{name: "answer without newline", input: "fables", want: "fables"},
		{name: "crlf stripped", input: "fables\r\n", want: "fables"},
		{name: "empty takes default", input: "\n", def: []string{"site"}, want: "site", prompt: "- Project name: [site]: "},
		{name: "eof takes default", input: "", def: []string{"site"}, want: "site"},
		{name: "answer overrides default", input: "blog\n", def: []string{"site"}, want: "blog"},
		{name: "empty without default", input: "\n", want: ""},
		{name: "eof without default", input: "", aborted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(tt.input), &out)

			got, err := c.Input("Project name", tt.def...)
			if tt.aborted {
				assert.True(t, clierr.IsAborted(err), "expected abort, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.prompt != "" {
				assert.Equal(t, tt.prompt, out.String())
			}
		})
	}
}

func TestConsole_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "yes\n", want: true},
		{input: "YES\n", want: true},
		{input: "y\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(tt.input), &out)

			got, err := c.Confirm("Overwrite", "yes")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Overwrite: ", out.String())
		})
	}
}

func TestConsole_Trace(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	root := errors.New("disk full")
	err := fmt.Errorf("save: %w", root)
	c.Trace(err, []byte("goroutine 1 [running]:\n"))

	text := out.String()
	assert.Contains(t, text, "save: disk full")
	assert.Contains(t, text, "caused by: *errors.errorString: disk full")
	assert.Contains(t, text, "goroutine 1 [running]:")

	out.Reset()
	c.Trace(nil, nil)
	assert.Empty(t, out.String())
}

func TestConsole_Logger(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	logger := c.Logger(slog.LevelWarn)
	logger.Info("hidden message")
	logger.Warn("visible message")

	assert.NotContains(t, out.String(), "hidden message")
	assert.Contains(t, out.String(), "visible message")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
