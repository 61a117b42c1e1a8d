package schema

import (
	"os"
)

// OS is an implementation wrapping the operating system's native (short-path)
// file routines.
type OS struct{}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile wraps around [os.WriteFile].
func (*OS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Mkdir wraps around [os.Mkdir].
func (*OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// Getwd wraps around [os.Getwd].
func (*OS) Getwd() (string, error) {
	return os.Getwd()
}
