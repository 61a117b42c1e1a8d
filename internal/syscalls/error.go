package syscalls

import "errors"

var (
	// ErrUnsupportedPlatform is an error that occurs when extended-length path
	// system calls are issued on an operating system that has none.
	ErrUnsupportedPlatform = errors.New("extended-length path calls are not supported on this platform")

	// ErrForeignHandle is an error that occurs when a [schema.Handle] is passed
	// to an implementation that did not create it.
	ErrForeignHandle = errors.New("handle was not created by this implementation")
)
