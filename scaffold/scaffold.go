package scaffold

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	clierr "github.com/randalmurphal/cliforge/errors"
	"github.com/randalmurphal/cliforge/vars"
)

// TemplateSuffix marks archive entries that are rendered rather than copied.
const TemplateSuffix = ".tmpl"

// Printer receives progress messages in verbose mode.
type Printer interface {
	Info(format string, args ...any)
}

// ArchivePath returns the location of a template archive under home.
func ArchivePath(home, kind, name string) string {
	return filepath.Join(home, "template", kind, name+".zip")
}

// Expander unpacks template archives into TargetDir.
type Expander struct {
	// TargetDir receives the expanded files. Defaults to the current directory.
	TargetDir string

	// Verbose prints every created directory and file through Printer.
	Verbose bool
	Printer Printer

	// Render renders entries carrying TemplateSuffix. Defaults to a
	// TextRenderer.
	Render RenderFunc

	// Strict fails on entry names referencing unknown variables instead of
	// keeping the placeholder.
	Strict bool

	Logger *slog.Logger
}

// Exec expands <home>/template/<kind>/<name>.zip.
func (e *Expander) Exec(home, kind, name string, variables map[string]string) error {
	return e.ExpandFile(ArchivePath(home, kind, name), variables)
}

// ExpandFile expands the archive at path.
func (e *Expander) ExpandFile(path string, variables map[string]string) error {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return clierr.System("open template "+path, err)
	}
	defer rc.Close()
	return e.Expand(&rc.Reader, variables)
}

// Expand writes every entry of r below TargetDir.
func (e *Expander) Expand(r *zip.Reader, variables map[string]string) error {
	render := e.Render
	if render == nil {
		render = NewTextRenderer().Render
	}
	lookup := vars.Map(variables)

	for _, f := range r.File {
		name, err := e.entryName(f.Name, lookup)
		if err != nil {
			return err
		}

		if strings.HasSuffix(name, "/") {
			if err := e.mkdirs(name); err != nil {
				return err
			}
			continue
		}

		segments := strings.Split(name, "/")
		last := segments[len(segments)-1]
		if strings.HasSuffix(last, TemplateSuffix) {
			segments[len(segments)-1] = strings.TrimSuffix(last, TemplateSuffix)
			err = e.render(f, strings.Join(segments, "/"), render, variables)
		} else {
			err = e.copy(f, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Expander) entryName(raw string, lookup vars.Lookup) (string, error) {
	if !e.Strict {
		return vars.Expand(raw, lookup), nil
	}
	name, err := vars.ExpandStrict(raw, lookup)
	if err != nil {
		return "", clierr.Contract("scaffold.expand", err, "Template entry %s: %v.", raw, err)
	}
	return name, nil
}

// target resolves an entry name below TargetDir, rejecting names that would
// escape it.
func (e *Expander) target(name string) (string, error) {
	rel := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if !filepath.IsLocal(rel) {
		return "", clierr.Contract("scaffold.expand", nil, "Template entry %q escapes the target directory.", name)
	}
	dir := e.TargetDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, rel), nil
}

func (e *Expander) mkdirs(name string) error {
	dir, err := e.target(name)
	if err != nil {
		return err
	}
	e.progress("Create directory '%s'.", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return clierr.System("create directory "+dir, err)
	}
	return nil
}

func (e *Expander) create(name string, perm os.FileMode) (*os.File, string, error) {
	path, err := e.target(name)
	if err != nil {
		return nil, "", err
	}
	e.progress("Create file '%s'.", path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", clierr.System("create directory "+filepath.Dir(path), err)
	}
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, "", clierr.System("create file "+path, err)
	}
	return out, path, nil
}

func (e *Expander) copy(f *zip.File, name string) error {
	src, err := f.Open()
	if err != nil {
		return clierr.System("read template entry "+f.Name, err)
	}
	defer src.Close()

	out, path, err := e.create(name, f.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return clierr.System("write "+path, err)
	}
	if err := out.Close(); err != nil {
		return clierr.System("write "+path, err)
	}
	return nil
}

func (e *Expander) render(f *zip.File, name string, render RenderFunc, variables map[string]string) error {
	src, err := f.Open()
	if err != nil {
		return clierr.System("read template entry "+f.Name, err)
	}
	defer src.Close()

	out, path, err := e.create(name, f.Mode().Perm())
	if err != nil {
		return err
	}
	if err := render(out, name, src, variables); err != nil {
		out.Close()
		if clierr.IsSystem(err) {
			return clierr.System("render "+path, err)
		}
		return clierr.Application("render "+path, err)
	}
	if err := out.Close(); err != nil {
		return clierr.System("write "+path, err)
	}
	return nil
}

func (e *Expander) progress(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Debug(fmt.Sprintf(format, args...))
	}
	if e.Verbose && e.Printer != nil {
		e.Printer.Info(format, args...)
	}
}
