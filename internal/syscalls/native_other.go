//go:build !windows

package syscalls

import (
	"fmt"

	"github.com/desertwitch/longfile/internal/schema"
)

// Native is the operating system implementation of the extended-length path
// system calls. Outside of Windows every call fails with
// [ErrUnsupportedPlatform].
type Native struct{}

// GetFileAttributes is not supported on this platform.
func (*Native) GetFileAttributes(path string) (schema.Attributes, error) {
	return schema.InvalidAttributes, unsupported("getattributes", path)
}

// SetFileAttributes is not supported on this platform.
func (*Native) SetFileAttributes(path string, _ schema.Attributes) error {
	return unsupported("setattributes", path)
}

// CreateFile is not supported on this platform.
func (*Native) CreateFile(path string, _ schema.Access, _ schema.ShareMode, _ schema.Disposition) (schema.Handle, error) {
	return nil, unsupported("createfile", path)
}

// DeleteFile is not supported on this platform.
func (*Native) DeleteFile(path string) error {
	return unsupported("deletefile", path)
}

// CopyFile is not supported on this platform.
func (*Native) CopyFile(src string, _ string, _ bool) error {
	return unsupported("copyfile", src)
}

// MoveFile is not supported on this platform.
func (*Native) MoveFile(src string, _ string) error {
	return unsupported("movefile", src)
}

// GetFileTime is not supported on this platform.
func (*Native) GetFileTime(h schema.Handle) (schema.FileTimes, error) {
	return schema.FileTimes{}, unsupported("getfiletime", h.Name())
}

// SetFileTime is not supported on this platform.
func (*Native) SetFileTime(h schema.Handle, _ schema.FileTimes) error {
	return unsupported("setfiletime", h.Name())
}

// GetFullPathName is not supported on this platform.
func (*Native) GetFullPathName(path string) (string, error) {
	return "", unsupported("getfullpathname", path)
}

// CreateDirectory is not supported on this platform.
func (*Native) CreateDirectory(path string) error {
	return unsupported("createdirectory", path)
}

// RemoveDirectory is not supported on this platform.
func (*Native) RemoveDirectory(path string) error {
	return unsupported("removedirectory", path)
}

func unsupported(op string, path string) error {
	return fmt.Errorf("(syscalls-%s) %s: %w", op, path, ErrUnsupportedPlatform)
}
