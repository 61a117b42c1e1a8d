package filesystem

import (
	"errors"
	"fmt"

	"github.com/desertwitch/longfile/internal/schema"
)

var (
	// ErrInvalidHandle is an error that occurs when a platform reports a
	// failed open without recording an error code, leaving no usable handle.
	ErrInvalidHandle = errors.New("no valid handle was returned")

	// ErrInvalidStreamMode is an error that occurs when a stream is requested
	// with an unknown [schema.StreamMode].
	ErrInvalidStreamMode = errors.New("invalid stream mode")

	// ErrNotDirectory is an error that occurs when a directory operation is
	// given a path that is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrIsDirectory is an error that occurs when a file operation is given
	// a path that is a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrSameFile is an error that occurs when a copy would have its source
	// and destination be the same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// OSError is a failure reported by an extended-length path system call,
// carrying the recorded error code and its platform message.
type OSError struct {
	Op   string
	Path string
	Code schema.Errno
}

func (e *OSError) Error() string {
	return fmt.Sprintf("(fs-%s) %s: %s (code %d)", e.Op, e.Path, e.Code.Error(), uint32(e.Code))
}

func (e *OSError) Unwrap() error {
	return e.Code
}

// raise maps the result of a system call onto the failure contract. An error
// code is raised as [OSError], except for a zero code, which counts as
// success. Failures without an error code are wrapped as they are.
func raise(op string, path string, err error) error {
	if err == nil {
		return nil
	}

	var code schema.Errno
	if errors.As(err, &code) {
		if code == schema.ErrorSuccess {
			return nil
		}

		return &OSError{Op: op, Path: path, Code: code}
	}

	return fmt.Errorf("(fs-%s) %s: %w", op, path, err)
}
