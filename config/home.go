package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	clierr "github.com/randalmurphal/cliforge/errors"
)

// executablePattern matches <home>/bin/<binary>.
var executablePattern = regexp.MustCompile(`^(.+)[\\/]bin[\\/][^\\/]+$`)

// HomeFromExecutable derives the installation root from the path of a binary
// installed under <home>/bin.
func HomeFromExecutable(exe string) (string, error) {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", clierr.System("resolve executable", err)
	}
	m := executablePattern.FindStringSubmatch(abs)
	if m == nil {
		return "", clierr.Contract("config.home", clierr.ErrInvalidHome,
			"Executable %s is not installed under a bin directory.", abs)
	}
	return m[1], nil
}

// DiscoverHome returns the installation root. The environment variable envVar
// wins when set; otherwise the root is derived from the running executable.
func DiscoverHome(envVar string) (string, error) {
	if envVar != "" {
		if v := os.Getenv(envVar); v != "" {
			return filepath.Clean(v), nil
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return "", clierr.System("locate executable", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return HomeFromExecutable(exe)
}

// FindGlobalFile returns the first *.properties file under <home>/bin in
// lexical walk order. It returns an empty path when home is empty, the bin
// directory does not exist, or it holds no properties file.
func FindGlobalFile(home string) (string, error) {
	if home == "" {
		return "", nil
	}
	binDir := filepath.Join(home, "bin")
	if info, err := os.Stat(binDir); err != nil || !info.IsDir() {
		return "", nil
	}

	var found string
	err := filepath.WalkDir(binDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".properties") {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", clierr.System("scan "+binDir, err)
	}
	return found, nil
}
