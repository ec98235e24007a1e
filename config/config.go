package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cast"

	clierr "github.com/randalmurphal/cliforge/errors"
	"github.com/randalmurphal/cliforge/vars"
)

// File names looked up in the working directory.
const (
	ProjectPropertiesFile = ".project.properties"
	ProjectDescriptorFile = "project.xml"
)

// Options configures Load.
type Options struct {
	// WorkDir is the project directory. Defaults to the current directory.
	WorkDir string

	// Home is the installation root whose bin directory holds the global
	// properties file. Empty disables global properties.
	Home string

	// Vars are system-level variables consulted before the environment when
	// injecting ${NAME} placeholders.
	Vars map[string]string

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Entry is one key of the merged property view.
type Entry struct {
	Key    string `yaml:"key"`
	Value  string `yaml:"value"`
	Source Source `yaml:"source"`
}

// Store holds the project and global property layers.
type Store struct {
	project     *Layer
	global      *Layer
	projectFile string
	globalFile  string
	lookup      vars.Lookup
	logger      *slog.Logger
}

// NewStore creates a store over the given layers without touching the disk.
// projectFile is where mutations are persisted. This is useful for testing or
// when the layers are assembled by the caller.
func NewStore(project, global *Layer, projectFile string, opts Options) *Store {
	if project == nil {
		project = NewLayer()
	}
	if global == nil {
		global = NewLayer()
	}
	return &Store{
		project:     project,
		global:      global,
		projectFile: projectFile,
		lookup:      vars.Chain(vars.Map(opts.Vars), vars.Env()),
		logger:      opts.logger(),
	}
}

// Load builds a store from the working directory and installation home.
//
// The project file is loaded first, then the project descriptor seeds any
// keys it does not define, then the global file is loaded from <home>/bin.
func Load(opts Options) (*Store, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, clierr.System("get working directory", err)
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, clierr.System("resolve working directory", err)
	}

	s := NewStore(nil, nil, filepath.Join(workDir, ProjectPropertiesFile), opts)

	if fileExists(s.projectFile) {
		layer, err := readLayer(s.projectFile)
		if err != nil {
			return nil, clierr.System("load "+s.projectFile, err)
		}
		s.project = layer
		s.logger.Debug("loaded project properties", "path", s.projectFile, "count", layer.Len())
	}

	descriptor := filepath.Join(workDir, ProjectDescriptorFile)
	if fileExists(descriptor) {
		f, err := os.Open(descriptor)
		if err != nil {
			return nil, clierr.System("open "+descriptor, err)
		}
		n, err := s.ImportDescriptor(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		s.logger.Debug("imported project descriptor", "path", descriptor, "inserted", n)
	}

	globalFile, err := FindGlobalFile(opts.Home)
	if err != nil {
		return nil, err
	}
	if globalFile == "" {
		s.logger.Debug("no global properties file", "home", opts.Home)
		return s, nil
	}
	layer, err := readLayer(globalFile)
	if err != nil {
		return nil, clierr.System("load "+globalFile, err)
	}
	s.global = layer
	s.globalFile = globalFile
	s.logger.Debug("loaded global properties", "path", globalFile, "count", layer.Len())

	return s, nil
}

// ProjectFile returns the path mutations are written to.
func (s *Store) ProjectFile() string {
	return s.projectFile
}

// GlobalFile returns the path the global layer was loaded from, if any.
func (s *Store) GlobalFile() string {
	return s.globalFile
}

// InProject reports whether the project file exists on disk.
func (s *Store) InProject() bool {
	return s.projectFile != "" && fileExists(s.projectFile)
}

// Get returns the value for key from the project layer, then the global
// layer, then the default. At most one default may be given. The value has
// its ${NAME} placeholders injected.
func (s *Store) Get(key string, def ...string) (string, bool) {
	value, _, ok := s.GetWithSource(key, def...)
	return value, ok
}

// GetWithSource is like Get and also reports which layer supplied the value.
func (s *Store) GetWithSource(key string, def ...string) (string, Source, bool) {
	if len(def) > 1 {
		panic(fmt.Sprintf("config: at most one default value for %q, got %d", key, len(def)))
	}

	raw, source := s.raw(key)
	if source == SourceNone {
		if len(def) == 0 {
			return "", SourceNone, false
		}
		raw, source = def[0], SourceDefault
	}
	return vars.Expand(raw, s.lookup), source, true
}

// GetRequired is like Get but absence is a contract error naming the key.
func (s *Store) GetRequired(key string, def ...string) (string, error) {
	value, ok := s.Get(key, def...)
	if !ok {
		return "", clierr.NewPropertyNotFoundError(key)
	}
	return value, nil
}

func (s *Store) raw(key string) (string, Source) {
	if v, ok := s.project.Get(key); ok {
		return v, SourceProject
	}
	if v, ok := s.global.Get(key); ok {
		return v, SourceGlobal
	}
	return "", SourceNone
}

// Has reports whether key is set in either layer.
func (s *Store) Has(key string) bool {
	_, source := s.raw(key)
	return source != SourceNone
}

// Put converts value to a string, stores it in the project layer, and
// rewrites the project file.
func (s *Store) Put(key string, value any) error {
	if !s.InProject() {
		return clierr.NewOutsideProjectError("config.put")
	}
	str, err := cast.ToStringE(value)
	if err != nil {
		return clierr.Application("config.put", fmt.Errorf("convert %s: %w", key, err))
	}
	s.project.Set(key, str)
	return s.save()
}

// Remove deletes key from the project layer and rewrites the project file.
func (s *Store) Remove(key string) error {
	if !s.InProject() {
		return clierr.NewOutsideProjectError("config.remove")
	}
	s.project.Delete(key)
	return s.save()
}

// InitProject creates the project file from the current project layer,
// including any keys seeded by the descriptor.
func (s *Store) InitProject() error {
	if s.projectFile == "" {
		return clierr.Contract("config.init", clierr.ErrOutsideProject, "No project directory configured.")
	}
	if fileExists(s.projectFile) {
		return &clierr.Error{
			Kind:    clierr.KindContract,
			Op:      "config.init",
			Err:     clierr.ErrProjectExists,
			Message: fmt.Sprintf("Project already initialized at %s.", filepath.Dir(s.projectFile)),
		}
	}
	return s.save()
}

func (s *Store) save() error {
	if err := saveLayer(s.projectFile, s.project, projectHeader); err != nil {
		return clierr.System("write "+s.projectFile, err)
	}
	s.logger.Debug("saved project properties", "path", s.projectFile, "count", s.project.Len())
	return nil
}

// MergeGlobal overwrites or adds entries in the in-memory global layer. The
// global file is not written.
func (s *Store) MergeGlobal(updates map[string]string) {
	s.global.Merge(updates)
}

// GlobalProperties returns a copy of the global layer.
func (s *Store) GlobalProperties() map[string]string {
	return s.global.Map()
}

// Properties returns the raw properties sorted by key. With includeGlobal,
// global entries are merged in and project entries shadow them.
func (s *Store) Properties(includeGlobal bool) []Entry {
	merged := make(map[string]Entry)
	if includeGlobal {
		for k, v := range s.global.Map() {
			merged[k] = Entry{Key: k, Value: v, Source: SourceGlobal}
		}
	}
	for k, v := range s.project.Map() {
		merged[k] = Entry{Key: k, Value: v, Source: SourceProject}
	}

	entries := make([]Entry, 0, len(merged))
	for _, e := range merged {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Variables returns the merged properties with placeholders injected, keyed
// by property name. It is the variable set handed to template expansion.
func (s *Store) Variables() map[string]string {
	out := make(map[string]string)
	for _, e := range s.Properties(true) {
		out[e.Key] = vars.Expand(e.Value, s.lookup)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
