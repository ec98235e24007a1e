package config

import (
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// projectHeader is the comment written at the top of every project file.
const projectHeader = "project properties"

// saveLayer rewrites path with the contents of l. The layer is written to a
// sibling temp file which then replaces path.
func saveLayer(path string, l *Layer, header string) error {
	id, err := gonanoid.New(8)
	if err != nil {
		return err
	}
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+id+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec
	if err != nil {
		return err
	}
	if err := l.WriteTo(f, header); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
