package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrOutsideProject indicates a project property was mutated while no
	// project properties file exists in the working directory.
	ErrOutsideProject = errors.New("not inside a project")

	// ErrPropertyNotFound indicates a required property has no value in any layer.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrProjectExists indicates the project properties file already exists.
	ErrProjectExists = errors.New("project already initialized")

	// ErrInvalidHome indicates the installation root could not be derived.
	ErrInvalidHome = errors.New("invalid installation home")

	// ErrAborted indicates the user chose not to continue.
	ErrAborted = errors.New("aborted by user")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}
