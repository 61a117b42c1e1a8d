package schema

import (
	"errors"
	"io/fs"
)

// Errno is a Windows system error code as recorded by the last failing
// system call. The zero value means that no error code was recorded.
type Errno uint32

const (
	ErrorSuccess            Errno = 0
	ErrorFileNotFound       Errno = 2
	ErrorPathNotFound       Errno = 3
	ErrorAccessDenied       Errno = 5
	ErrorInvalidHandle      Errno = 6
	ErrorSharingViolation   Errno = 32
	ErrorNotSupported       Errno = 50
	ErrorFileExists         Errno = 80
	ErrorInvalidParameter   Errno = 87
	ErrorCallNotImplemented Errno = 120
	ErrorDirNotEmpty        Errno = 145
	ErrorAlreadyExists      Errno = 183
	ErrorFilenameExcedRange Errno = 206
	ErrorDirectory          Errno = 267
)

// Error returns the platform-defined message for the code.
func (e Errno) Error() string {
	return errnoMessage(e)
}

// Is maps the code onto the [fs] sentinel errors the same way the standard
// library does for its own Windows error numbers.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrPermission:
		return e == ErrorAccessDenied
	case fs.ErrExist:
		return e == ErrorAlreadyExists || e == ErrorFileExists || e == ErrorDirNotEmpty
	case fs.ErrNotExist:
		return e == ErrorFileNotFound || e == ErrorPathNotFound
	case errors.ErrUnsupported:
		return e == ErrorNotSupported || e == ErrorCallNotImplemented
	}

	return false
}
