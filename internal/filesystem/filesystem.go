// Package filesystem implements the long-path file operations. Every
// operation takes the native routine of the operating system for paths below
// [MaxPath] and otherwise normalizes the path into its extended-length form
// and issues the extended-length path system calls of a platform layer.
package filesystem

import (
	"fmt"
	"os"
	"unicode/utf16"

	"github.com/desertwitch/longfile/internal/pathing"
	"github.com/desertwitch/longfile/internal/schema"
	"github.com/desertwitch/longfile/internal/syscalls"
	"golang.org/x/text/encoding"
)

// MaxPath is the legacy path length limit (in UTF-16 code units). Paths of
// this length or longer take the extended-length path system calls.
const MaxPath = 260

type osProvider interface {
	Getwd() (dir string, err error)
	Mkdir(name string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Stat(name string) (os.FileInfo, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type sysProvider interface {
	GetFileAttributes(path string) (schema.Attributes, error)
	SetFileAttributes(path string, attrs schema.Attributes) error
	CreateFile(path string, access schema.Access, share schema.ShareMode, disposition schema.Disposition) (schema.Handle, error)
	DeleteFile(path string) error
	CopyFile(src string, dst string, failIfExists bool) error
	MoveFile(src string, dst string) error
	GetFileTime(h schema.Handle) (schema.FileTimes, error)
	SetFileTime(h schema.Handle, times schema.FileTimes) error
	GetFullPathName(path string) (string, error)
	CreateDirectory(path string) error
	RemoveDirectory(path string) error
}

type pathProvider interface {
	Normalize(path string) (string, error)
}

// Handler is the principal implementation of the long-path file operations.
// It holds no mutable state and is safe for concurrent use.
type Handler struct {
	osHandler       osProvider
	sysHandler      sysProvider
	pathHandler     pathProvider
	defaultEncoding encoding.Encoding
}

// NewHandler returns a pointer to a new [Handler]. The defaultEncoding is
// used by text operations given a nil encoding; if it is nil itself, the ANSI
// code page of the system is used.
func NewHandler(osHandler osProvider, sysHandler sysProvider, defaultEncoding encoding.Encoding) *Handler {
	if defaultEncoding == nil {
		defaultEncoding = syscalls.ANSIEncoding()
	}

	return &Handler{
		osHandler:       osHandler,
		sysHandler:      sysHandler,
		pathHandler:     pathing.NewNormalizer(osHandler),
		defaultEncoding: defaultEncoding,
	}
}

// IsLongPath reports whether a path reaches [MaxPath] and is therefore
// handled by the extended-length path system calls.
func IsLongPath(path string) bool {
	n := 0
	for _, r := range path {
		n += utf16.RuneLen(r)
		if n >= MaxPath {
			return true
		}
	}

	return false
}

// extended returns the canonical extended-length form of a path.
func (f *Handler) extended(op string, path string) (string, error) {
	p, err := f.pathHandler.Normalize(path)
	if err != nil {
		return "", fmt.Errorf("(fs-%s) %w", op, err)
	}

	return p, nil
}

// target returns the path to hand to a system call that also serves short
// paths: the path itself below [MaxPath], its extended-length form otherwise.
func (f *Handler) target(op string, path string) (string, error) {
	if !IsLongPath(path) {
		return path, nil
	}

	return f.extended(op, path)
}
