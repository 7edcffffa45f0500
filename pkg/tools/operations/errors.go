package operations

import (
	"errors"
	"io/fs"

	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

// Error codes returned by the file operations, on top of the toolkit's own codes.
const (
	CodeFileNotFound      = "file_not_found"
	CodeInvalidLineNumber = "invalid_line_number"
	CodeIOFailure         = "io_failure"
)

func errFileNotFound(filename string) error {
	return toolkit.Errorf(CodeFileNotFound, "File not found: %s", filename)
}

func errInvalidLine(line, count int) error {
	return toolkit.Errorf(CodeInvalidLineNumber, "Invalid line number: %d. File has %d lines.", line, count)
}

// classify maps an OS error for an existing-file operation onto the error codes.
// Missing paths become file_not_found; everything else is an io_failure.
func classify(op, filename string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errFileNotFound(filename)
	}
	return ioFailure(op, filename, err)
}

// ioFailure reports err as an io_failure. The message carries the underlying
// cause without the absolute workspace path.
func ioFailure(op, filename string, err error) error {
	cause := err
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		cause = pathErr.Err
	}
	return toolkit.Errorf(CodeIOFailure, "Failed to %s '%s': %v", op, filename, cause)
}
