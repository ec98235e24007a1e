// Package errors provides CLI error kinds with user-friendly messaging.
//
// Every failure a task can produce falls into one of three kinds:
//   - KindContract: the tool was used against its contract (mutating
//     properties outside a project, a required property missing)
//   - KindSystem: an I/O failure (file read/write, archive extraction)
//   - KindApplication: anything else
//
// The task runner maps each kind to its own process exit code.
//
// Core types:
//   - Error: wraps an error with a kind, the failing operation, a message,
//     and an optional suggestion
//
// Sentinel errors for common scenarios:
//   - ErrOutsideProject: properties mutated without a project file
//   - ErrPropertyNotFound: a required property is absent
//   - ErrProjectExists: a project was initialised twice
//   - ErrInvalidHome: the installation root could not be derived
//   - ErrAborted: the user declined to continue
//
// Example usage:
//
//	if !s.InProject() {
//	    return errors.Contract("config.put", errors.ErrOutsideProject,
//	        "Attempt to alter properties outside project.")
//	}
//
//	switch errors.KindOf(err) {
//	case errors.KindSystem:
//	    // I/O failure
//	}
package errors
