package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a failure for exit code selection.
type Kind int

const (
	// KindApplication is any failure that is neither contract nor system.
	KindApplication Kind = iota
	// KindSystem is an I/O failure.
	KindSystem
	// KindContract is a usage or programming contract violation.
	KindContract
)

func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindContract:
		return "contract"
	default:
		return "application"
	}
}

// Error wraps an error with its kind and user-facing context.
type Error struct {
	// Kind selects the exit code.
	Kind Kind

	// Op is the operation that failed, e.g. "config.put".
	Op string

	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string
}

func (e *Error) Error() string {
	var sb strings.Builder
	switch {
	case e.Message != "":
		sb.WriteString(e.Message)
	case e.Err != nil:
		sb.WriteString(e.Err.Error())
	default:
		sb.WriteString(e.Kind.String())
		sb.WriteString(" error")
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Contract creates a contract violation error.
func Contract(op string, err error, format string, args ...any) error {
	return &Error{Kind: KindContract, Op: op, Err: err, Message: fmt.Sprintf(format, args...)}
}

// System wraps an I/O failure. A nil err returns nil.
func System(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindSystem, Op: op, Err: err, Message: fmt.Sprintf("%s: %v", op, err)}
}

// Application wraps a failure that is neither contract nor I/O. A nil err
// returns nil.
func Application(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindApplication, Op: op, Err: err, Message: fmt.Sprintf("%s: %v", op, err)}
}

// WithSuggestion attaches a suggestion to err. Errors that are not *Error are
// wrapped as application errors first.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if As(err, &e) {
		clone := *e
		clone.Suggestion = suggestion
		return &clone
	}
	return &Error{Kind: KindOf(err), Err: err, Message: err.Error(), Suggestion: suggestion}
}

// NewOutsideProjectError creates the error returned when project properties
// are mutated without a project file.
func NewOutsideProjectError(op string) error {
	return &Error{
		Kind:       KindContract,
		Op:         op,
		Err:        ErrOutsideProject,
		Message:    "Attempt to alter properties outside project.",
		Suggestion: "Run 'init' in the project directory first.",
	}
}

// NewPropertyNotFoundError creates the error returned when a required
// property is absent.
func NewPropertyNotFoundError(key string) error {
	return &Error{
		Kind:    KindContract,
		Op:      "config.get",
		Err:     ErrPropertyNotFound,
		Message: fmt.Sprintf("Property not found |%s|.", key),
	}
}
