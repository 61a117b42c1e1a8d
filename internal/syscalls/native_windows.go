//go:build windows

package syscalls

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/desertwitch/longfile/internal/schema"
	"golang.org/x/sys/windows"
)

// fullPathBufferSize is the buffer size (in UTF-16 code units) handed to
// GetFullPathNameW, covering the maximum extended-length path.
const fullPathBufferSize = 65535

// The procedures are called through their lazy handles instead of the typed
// wrappers of [windows], as those replace a zero last-error code with EINVAL.
//
//nolint:gochecknoglobals
var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetFileAttributesW = modkernel32.NewProc("GetFileAttributesW")
	procSetFileAttributesW = modkernel32.NewProc("SetFileAttributesW")
	procCreateFileW        = modkernel32.NewProc("CreateFileW")
	procDeleteFileW        = modkernel32.NewProc("DeleteFileW")
	procCopyFileW          = modkernel32.NewProc("CopyFileW")
	procMoveFileW          = modkernel32.NewProc("MoveFileW")
	procGetFileTime        = modkernel32.NewProc("GetFileTime")
	procSetFileTime        = modkernel32.NewProc("SetFileTime")
	procGetFullPathNameW   = modkernel32.NewProc("GetFullPathNameW")
	procCreateDirectoryW   = modkernel32.NewProc("CreateDirectoryW")
	procRemoveDirectoryW   = modkernel32.NewProc("RemoveDirectoryW")
	procGetACP             = modkernel32.NewProc("GetACP")
)

// Native is the operating system implementation of the extended-length path
// system calls, issuing the wide-character kernel32 functions.
type Native struct{}

// GetFileAttributes wraps around GetFileAttributesW.
func (*Native) GetFileAttributes(path string) (schema.Attributes, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return schema.InvalidAttributes, fmt.Errorf("(syscalls-getattributes) %w", err)
	}

	r1, _, e1 := procGetFileAttributesW.Call(uintptr(unsafe.Pointer(p)))

	attrs := schema.Attributes(uint32(r1))
	if attrs == schema.InvalidAttributes {
		return attrs, lastError(e1)
	}

	return attrs, nil
}

// SetFileAttributes wraps around SetFileAttributesW.
func (*Native) SetFileAttributes(path string, attrs schema.Attributes) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("(syscalls-setattributes) %w", err)
	}

	r1, _, e1 := procSetFileAttributesW.Call(uintptr(unsafe.Pointer(p)), uintptr(attrs))
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// CreateFile wraps around CreateFileW. The returned [schema.Handle] is an
// [os.File] owning the operating system handle.
func (*Native) CreateFile(path string, access schema.Access, share schema.ShareMode, disposition schema.Disposition) (schema.Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("(syscalls-createfile) %w", err)
	}

	r1, _, e1 := procCreateFileW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(access),
		uintptr(share),
		0,
		uintptr(disposition),
		0,
		0,
	)

	h := windows.Handle(r1)
	if h == windows.InvalidHandle {
		return nil, lastError(e1)
	}

	return os.NewFile(uintptr(h), path), nil
}

// DeleteFile wraps around DeleteFileW.
func (*Native) DeleteFile(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("(syscalls-deletefile) %w", err)
	}

	r1, _, e1 := procDeleteFileW.Call(uintptr(unsafe.Pointer(p)))
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// CopyFile wraps around CopyFileW.
func (*Native) CopyFile(src string, dst string, failIfExists bool) error {
	s, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return fmt.Errorf("(syscalls-copyfile) %w", err)
	}

	d, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return fmt.Errorf("(syscalls-copyfile) %w", err)
	}

	var fail uintptr
	if failIfExists {
		fail = 1
	}

	r1, _, e1 := procCopyFileW.Call(uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(d)), fail)
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// MoveFile wraps around MoveFileW.
func (*Native) MoveFile(src string, dst string) error {
	s, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return fmt.Errorf("(syscalls-movefile) %w", err)
	}

	d, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return fmt.Errorf("(syscalls-movefile) %w", err)
	}

	r1, _, e1 := procMoveFileW.Call(uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(d)))
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// GetFileTime wraps around GetFileTime.
func (*Native) GetFileTime(h schema.Handle) (schema.FileTimes, error) {
	fh, err := handleOf(h)
	if err != nil {
		return schema.FileTimes{}, err
	}

	var c, a, w windows.Filetime

	r1, _, e1 := procGetFileTime.Call(
		uintptr(fh),
		uintptr(unsafe.Pointer(&c)),
		uintptr(unsafe.Pointer(&a)),
		uintptr(unsafe.Pointer(&w)),
	)
	if r1 == 0 {
		return schema.FileTimes{}, lastError(e1)
	}

	return schema.FileTimes{
		Creation:   fromFiletime(c),
		LastAccess: fromFiletime(a),
		LastWrite:  fromFiletime(w),
	}, nil
}

// SetFileTime wraps around SetFileTime, always passing all three timestamps.
func (*Native) SetFileTime(h schema.Handle, times schema.FileTimes) error {
	fh, err := handleOf(h)
	if err != nil {
		return err
	}

	c := toFiletime(times.Creation)
	a := toFiletime(times.LastAccess)
	w := toFiletime(times.LastWrite)

	r1, _, e1 := procSetFileTime.Call(
		uintptr(fh),
		uintptr(unsafe.Pointer(&c)),
		uintptr(unsafe.Pointer(&a)),
		uintptr(unsafe.Pointer(&w)),
	)
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// GetFullPathName wraps around GetFullPathNameW, resolving against the
// process working directory.
func (*Native) GetFullPathName(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", fmt.Errorf("(syscalls-getfullpathname) %w", err)
	}

	buf := make([]uint16, fullPathBufferSize)

	r1, _, e1 := procGetFullPathNameW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)

	n := int(uint32(r1))
	if n == 0 {
		return "", lastError(e1)
	}
	if n > len(buf) {
		return "", schema.ErrorFilenameExcedRange
	}

	return windows.UTF16ToString(buf[:n]), nil
}

// CreateDirectory wraps around CreateDirectoryW with default security.
func (*Native) CreateDirectory(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("(syscalls-createdirectory) %w", err)
	}

	r1, _, e1 := procCreateDirectoryW.Call(uintptr(unsafe.Pointer(p)), 0)
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// RemoveDirectory wraps around RemoveDirectoryW.
func (*Native) RemoveDirectory(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("(syscalls-removedirectory) %w", err)
	}

	r1, _, e1 := procRemoveDirectoryW.Call(uintptr(unsafe.Pointer(p)))
	if r1 == 0 {
		return lastError(e1)
	}

	return nil
}

// lastError converts the last-error value captured by a procedure call into
// a [schema.Errno], which is zero if the failing call recorded no error.
func lastError(e error) error {
	var errno syscall.Errno
	if errors.As(e, &errno) {
		return schema.Errno(errno)
	}

	return e
}

func handleOf(h schema.Handle) (windows.Handle, error) {
	f, ok := h.(interface{ Fd() uintptr })
	if !ok {
		return windows.InvalidHandle, ErrForeignHandle
	}

	return windows.Handle(f.Fd()), nil
}

func fromFiletime(ft windows.Filetime) int64 {
	return int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
}

func toFiletime(v int64) windows.Filetime {
	return windows.Filetime{
		LowDateTime:  uint32(v),
		HighDateTime: uint32(v >> 32), //nolint:mnd
	}
}
