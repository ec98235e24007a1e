package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// Entry is one member of a test archive. Names ending in "/" are directories.
type Entry struct {
	Name string
	Body string

	// Mode, when set, is stored as the entry's permission bits.
	Mode os.FileMode
}

// WriteArchive writes a deflated zip holding entries, in order, to path.
func WriteArchive(t *testing.T, path string, entries []Entry) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create archive directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive %s: %v", path, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.Name, Method: zip.Deflate}
		if e.Mode != 0 {
			hdr.SetMode(e.Mode)
		}
		fw, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("failed to add %s: %v", e.Name, err)
		}
		if _, err := io.WriteString(fw, e.Body); err != nil {
			t.Fatalf("failed to write %s: %v", e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finish archive %s: %v", path, err)
	}
}

// InstallTemplate writes entries as <home>/template/<kind>/<name>.zip and
// returns the archive path.
func InstallTemplate(t *testing.T, home, kind, name string, entries []Entry) string {
	t.Helper()

	path := filepath.Join(home, "template", kind, name+".zip")
	WriteArchive(t, path, entries)
	return path
}
