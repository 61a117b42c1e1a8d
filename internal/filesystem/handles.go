package filesystem

import (
	"fmt"
	"os"

	"github.com/desertwitch/longfile/internal/schema"
)

// OpenStream opens an existing file as stream for the caller, who owns the
// returned [schema.Handle] and must close it. [schema.StreamRead] shares the
// file for reading, [schema.StreamWrite] opens it exclusively for reading,
// writing and attribute changes.
func (f *Handler) OpenStream(path string, mode schema.StreamMode) (schema.Handle, error) {
	if mode != schema.StreamRead && mode != schema.StreamWrite {
		return nil, fmt.Errorf("(fs-openstream) %w: %d", ErrInvalidStreamMode, mode)
	}

	if !IsLongPath(path) {
		var file *os.File
		var err error

		if mode == schema.StreamWrite {
			file, err = f.osHandler.OpenFile(path, os.O_RDWR, 0)
		} else {
			file, err = f.osHandler.Open(path)
		}
		if err != nil {
			return nil, fmt.Errorf("(fs-openstream) %w", err)
		}

		return file, nil
	}

	p, err := f.extended("openstream", path)
	if err != nil {
		return nil, err
	}

	if mode == schema.StreamWrite {
		return f.openWithWrite("openstream", p)
	}

	return f.openRead("openstream", p)
}

// openRead opens an existing file for reading, shared with other readers.
func (f *Handler) openRead(op string, path string) (schema.Handle, error) {
	return f.createFile(op, path, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
}

// openWrite truncates or creates a file for exclusive writing.
func (f *Handler) openWrite(op string, path string) (schema.Handle, error) {
	return f.createFile(op, path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateAlways)
}

// openAppend creates a new file for exclusive writing and falls back to
// opening the existing one.
func (f *Handler) openAppend(op string, path string) (schema.Handle, error) {
	h, err := f.createFile(op, path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateNew)
	if err == nil {
		return h, nil
	}

	return f.createFile(op, path, schema.AccessGenericWrite, schema.ShareNone, schema.OpenExisting)
}

// openWithWrite opens an existing file exclusively for reading, writing and
// changing its attributes and timestamps.
func (f *Handler) openWithWrite(op string, path string) (schema.Handle, error) {
	return f.createFile(op, path,
		schema.AccessGenericRead|schema.AccessGenericWrite|schema.AccessWriteAttributes,
		schema.ShareNone,
		schema.OpenExisting,
	)
}

func (f *Handler) createFile(op string, path string, access schema.Access, share schema.ShareMode, disposition schema.Disposition) (schema.Handle, error) {
	h, err := f.sysHandler.CreateFile(path, access, share, disposition)
	if err := raise(op, path, err); err != nil {
		return nil, err
	}

	if h == nil {
		return nil, fmt.Errorf("(fs-%s) %s: %w", op, path, ErrInvalidHandle)
	}

	return h, nil
}
