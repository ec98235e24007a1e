package errors

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"

	kzip "github.com/klauspost/compress/zip"
)

// KindOf classifies err. An explicit *Error kind wins; file system and
// stream failures are system errors; everything else is an application error.
func KindOf(err error) Kind {
	if err == nil {
		return KindApplication
	}

	var e *Error
	if As(err, &e) {
		return e.Kind
	}

	if isIOError(err) {
		return KindSystem
	}
	return KindApplication
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	if As(err, &pathErr) {
		return true
	}
	var linkErr *os.LinkError
	if As(err, &linkErr) {
		return true
	}
	var syscallErr *os.SyscallError
	if As(err, &syscallErr) {
		return true
	}
	return Is(err, io.ErrUnexpectedEOF) ||
		Is(err, io.ErrShortWrite) ||
		Is(err, fs.ErrNotExist) ||
		Is(err, fs.ErrPermission) ||
		Is(err, kzip.ErrFormat) ||
		Is(err, zip.ErrFormat) ||
		Is(err, kzip.ErrChecksum)
}

// IsContract checks if an error is a contract violation.
func IsContract(err error) bool {
	return err != nil && KindOf(err) == KindContract
}

// IsSystem checks if an error is an I/O failure.
func IsSystem(err error) bool {
	return err != nil && KindOf(err) == KindSystem
}

// IsAborted checks if the user aborted the operation.
func IsAborted(err error) bool {
	return Is(err, ErrAborted)
}
