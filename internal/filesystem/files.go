package filesystem

import (
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/longfile/internal/schema"
)

// Exists reports whether a path is an existing file. It never fails; any
// error is reported as not existing.
//
// For long paths the file counts as existing only if its attributes can be
// queried and carry [schema.AttributeArchive]. Directories and files without
// the archive bit are reported as not existing.
func (f *Handler) Exists(path string) bool {
	if !IsLongPath(path) {
		info, err := f.osHandler.Stat(path)

		return err == nil && !info.IsDir()
	}

	p, err := f.extended("exists", path)
	if err != nil {
		return false
	}

	attrs, err := f.sysHandler.GetFileAttributes(p)
	if err != nil || attrs == schema.InvalidAttributes {
		return false
	}

	return attrs.Has(schema.AttributeArchive)
}

// Delete removes a file. Directories are refused for any path length.
func (f *Handler) Delete(path string) error {
	if !IsLongPath(path) {
		info, err := f.osHandler.Stat(path)
		if err != nil {
			return fmt.Errorf("(fs-delete) %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("(fs-delete) %s: %w", path, ErrIsDirectory)
		}

		if err := f.osHandler.Remove(path); err != nil {
			return fmt.Errorf("(fs-delete) %w", err)
		}

		return nil
	}

	p, err := f.extended("delete", path)
	if err != nil {
		return err
	}

	return raise("delete", p, f.sysHandler.DeleteFile(p))
}

// Copy copies a file. An existing destination is only replaced if overwrite
// is set. The extended-length path call is used if either path is long.
func (f *Handler) Copy(src string, dst string, overwrite bool) error {
	if !IsLongPath(src) && !IsLongPath(dst) {
		return f.copyNative(src, dst, overwrite)
	}

	s, err := f.extended("copy", src)
	if err != nil {
		return err
	}

	d, err := f.extended("copy", dst)
	if err != nil {
		return err
	}

	return raise("copy", s, f.sysHandler.CopyFile(s, d, !overwrite))
}

func (f *Handler) copyNative(src string, dst string, overwrite bool) error {
	srcFile, err := f.osHandler.Open(src)
	if err != nil {
		return fmt.Errorf("(fs-copy) failed to open source file: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("(fs-copy) failed to stat source file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("(fs-copy) %s: %w", src, ErrIsDirectory)
	}

	if dstInfo, err := f.osHandler.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("(fs-copy) %s -> %s: %w", src, dst, ErrSameFile)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flag |= os.O_EXCL
	}

	dstFile, err := f.osHandler.OpenFile(dst, flag, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("(fs-copy) failed to open destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("(fs-copy) failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("(fs-copy) failed to sync destination fs: %w", err)
	}

	return nil
}

// Move renames a file. Both paths are always resolved to their full form
// and moved through the extended-length path call, regardless of length.
func (f *Handler) Move(src string, dst string) error {
	s, err := f.extended("move", f.GetFullPathName(src))
	if err != nil {
		return err
	}

	d, err := f.extended("move", f.GetFullPathName(dst))
	if err != nil {
		return err
	}

	return raise("move", s, f.sysHandler.MoveFile(s, d))
}

// GetFullPathName resolves a path against the working directory through the
// platform, regardless of length. It never fails; on error the result is
// empty.
func (f *Handler) GetFullPathName(path string) string {
	full, err := f.sysHandler.GetFullPathName(path)
	if err != nil {
		return ""
	}

	return full
}
