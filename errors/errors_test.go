package errors

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"

	kzip "github.com/klauspost/compress/zip"
)

func TestError(t *testing.T) {
	err := &Error{
		Kind:       KindContract,
		Err:        ErrOutsideProject,
		Message:    "Test message",
		Suggestion: "Test suggestion",
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Test message") {
		t.Errorf("expected error to contain 'Test message', got %q", errStr)
	}
	if !strings.Contains(errStr, "Test suggestion") {
		t.Errorf("expected error to contain 'Test suggestion', got %q", errStr)
	}

	if !errors.Is(err, ErrOutsideProject) {
		t.Error("expected error to unwrap to ErrOutsideProject")
	}
}

func TestError_MinimalFields(t *testing.T) {
	err := &Error{Kind: KindSystem, Err: io.ErrUnexpectedEOF}
	if got := err.Error(); got != io.ErrUnexpectedEOF.Error() {
		t.Errorf("expected underlying message, got %q", got)
	}

	empty := &Error{Kind: KindContract}
	if got := empty.Error(); got != "contract error" {
		t.Errorf("expected 'contract error', got %q", got)
	}
}

func TestConstructors(t *testing.T) {
	t.Run("System nil", func(t *testing.T) {
		if System("op", nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("Application nil", func(t *testing.T) {
		if Application("op", nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("System", func(t *testing.T) {
		err := System("write file", errors.New("disk full"))
		if KindOf(err) != KindSystem {
			t.Errorf("kind = %v, want system", KindOf(err))
		}
		if !strings.Contains(err.Error(), "write file: disk full") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Contract", func(t *testing.T) {
		err := Contract("config.get", ErrPropertyNotFound, "missing %s", "a.b")
		if !IsContract(err) {
			t.Error("expected contract error")
		}
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Error("expected ErrPropertyNotFound")
		}
		if err.Error() != "missing a.b" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("NewOutsideProjectError", func(t *testing.T) {
		err := NewOutsideProjectError("config.put")
		if !errors.Is(err, ErrOutsideProject) || !IsContract(err) {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("NewPropertyNotFoundError", func(t *testing.T) {
		err := NewPropertyNotFoundError("repository.dir")
		if !strings.Contains(err.Error(), "|repository.dir|") {
			t.Errorf("expected key in message, got %q", err.Error())
		}
	})
}

func TestKindOf(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindApplication},
		{name: "plain", err: errors.New("boom"), want: KindApplication},
		{name: "path error", err: pathErr, want: KindSystem},
		{name: "wrapped path error", err: fmt.Errorf("load: %w", pathErr), want: KindSystem},
		{name: "link error", err: &os.LinkError{Op: "rename", Old: "a", New: "b", Err: fs.ErrPermission}, want: KindSystem},
		{name: "unexpected eof", err: io.ErrUnexpectedEOF, want: KindSystem},
		{name: "zip format", err: kzip.ErrFormat, want: KindSystem},
		{name: "explicit contract", err: NewOutsideProjectError("op"), want: KindContract},
		{name: "explicit application over io", err: Application("parse", pathErr), want: KindApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	if WithSuggestion(nil, "x") != nil {
		t.Error("expected nil")
	}

	base := System("read", errors.New("denied"))
	err := WithSuggestion(base, "check permissions")
	if !strings.Contains(err.Error(), "check permissions") {
		t.Errorf("expected suggestion, got %q", err.Error())
	}
	if KindOf(err) != KindSystem {
		t.Error("kind should be preserved")
	}
	if strings.Contains(base.Error(), "check permissions") {
		t.Error("original error should not be modified")
	}

	plain := WithSuggestion(errors.New("boom"), "retry")
	if KindOf(plain) != KindApplication {
		t.Error("plain errors should become application errors")
	}
}

func TestPredicates(t *testing.T) {
	if IsContract(nil) || IsSystem(nil) || IsAborted(nil) {
		t.Error("nil should match no predicate")
	}
	if !IsAborted(fmt.Errorf("init: %w", ErrAborted)) {
		t.Error("expected aborted")
	}
	if !IsSystem(&fs.PathError{Op: "stat", Path: "p", Err: fs.ErrNotExist}) {
		t.Error("expected system")
	}
}

func TestKind_String(t *testing.T) {
	if KindSystem.String() != "system" || KindContract.String() != "contract" || KindApplication.String() != "application" {
		t.Error("unexpected kind names")
	}
}
