package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

func TestWriteFiles(t *testing.T) {
	files := map[string]string{
		"project.xml":      "<project/>",
		"src/lib/util.txt": "util\n",
	}

	dir := Project(t, files)

	for name, want := range files {
		if got := ReadFile(t, filepath.Join(dir, name)); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestHome(t *testing.T) {
	home := Home(t, "user.name=Ada\n")

	if got := ReadFile(t, filepath.Join(home, "bin", GlobalPropertiesFile)); got != "user.name=Ada\n" {
		t.Errorf("global properties = %q", got)
	}

	bare := Home(t, "")
	entries, err := os.ReadDir(filepath.Join(bare, "bin"))
	if err != nil {
		t.Fatalf("bin directory missing: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("bin directory has %d entries, want 0", len(entries))
	}
}

func TestInstallTemplate(t *testing.T) {
	home := Home(t, "")
	path := InstallTemplate(t, home, "project", "blog", []Entry{
		{Name: "blog/"},
		{Name: "blog/run.sh", Body: "#!/bin/sh\n", Mode: 0o755},
	})

	if want := filepath.Join(home, "template", "project", "blog.zip"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()

	if len(r.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(r.File))
	}
	if r.File[0].Name != "blog/" || r.File[1].Name != "blog/run.sh" {
		t.Errorf("entry order = %s, %s", r.File[0].Name, r.File[1].Name)
	}
	if perm := r.File[1].Mode().Perm(); perm != 0o755 {
		t.Errorf("mode = %o, want 755", perm)
	}
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)
	if err := ctx.Err(); err != nil {
		t.Errorf("context already done: %v", err)
	}
}
