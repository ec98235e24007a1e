package config

// Source indicates where a configuration value came from.
type Source string

// Configuration source constants.
const (
	// SourceNone indicates the key was not found.
	SourceNone Source = ""

	// SourceDefault indicates the value is the caller-supplied default.
	SourceDefault Source = "default"

	// SourceGlobal indicates the value came from the global properties file
	// under the installation's bin directory.
	SourceGlobal Source = "global"

	// SourceProject indicates the value came from project properties, either
	// the project file or the project descriptor.
	SourceProject Source = "project"
)
