package filesystem

import (
	"github.com/desertwitch/longfile/internal/schema"
)

// SetAttributes replaces the attributes of a file, using the numeric encoding
// of the Windows API.
func (f *Handler) SetAttributes(path string, attrs schema.Attributes) error {
	p, err := f.target("setattributes", path)
	if err != nil {
		return err
	}

	return raise("setattributes", p, f.sysHandler.SetFileAttributes(p, attrs))
}

// GetAttributes returns the attributes of a file or directory.
func (f *Handler) GetAttributes(path string) (schema.Attributes, error) {
	p, err := f.target("getattributes", path)
	if err != nil {
		return schema.InvalidAttributes, err
	}

	attrs, err := f.sysHandler.GetFileAttributes(p)
	if err := raise("getattributes", p, err); err != nil {
		return schema.InvalidAttributes, err
	}

	return attrs, nil
}
