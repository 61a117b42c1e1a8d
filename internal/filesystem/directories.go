package filesystem

import (
	"fmt"
)

// CreateDirectory creates a single directory. Its parent must exist.
func (f *Handler) CreateDirectory(path string) error {
	if !IsLongPath(path) {
		if err := f.osHandler.Mkdir(path, 0o777); err != nil { //nolint:mnd
			return fmt.Errorf("(fs-mkdir) %w", err)
		}

		return nil
	}

	p, err := f.extended("mkdir", path)
	if err != nil {
		return err
	}

	return raise("mkdir", p, f.sysHandler.CreateDirectory(p))
}

// RemoveDirectory removes an empty directory.
func (f *Handler) RemoveDirectory(path string) error {
	if !IsLongPath(path) {
		info, err := f.osHandler.Stat(path)
		if err != nil {
			return fmt.Errorf("(fs-rmdir) %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("(fs-rmdir) %s: %w", path, ErrNotDirectory)
		}

		if err := f.osHandler.Remove(path); err != nil {
			return fmt.Errorf("(fs-rmdir) %w", err)
		}

		return nil
	}

	p, err := f.extended("rmdir", path)
	if err != nil {
		return err
	}

	return raise("rmdir", p, f.sysHandler.RemoveDirectory(p))
}
