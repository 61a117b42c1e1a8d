// Package pathing converts arbitrary Windows path strings into the canonical
// extended-length form (`\\?\...`) that bypasses the legacy path length limit
// and path parsing of the Windows API.
package pathing

import (
	"fmt"
	"strings"
)

const (
	// Prefix marks a path as canonical extended-length path.
	Prefix = `\\?\`

	// UNCPrefix is the canonical extended-length form of a network share path.
	UNCPrefix = `\\?\UNC\`

	separator = `\`
)

type wdProvider interface {
	Getwd() (dir string, err error)
}

// Normalizer converts paths to canonical extended-length paths, resolving
// relative paths against the working directory of its [wdProvider].
type Normalizer struct {
	wdHandler wdProvider
}

// NewNormalizer returns a pointer to a new [Normalizer].
func NewNormalizer(wdHandler wdProvider) *Normalizer {
	return &Normalizer{
		wdHandler: wdHandler,
	}
}

// Normalize returns the canonical extended-length form of path. The working
// directory is only queried for relative paths.
func (n *Normalizer) Normalize(path string) (string, error) {
	if !IsRelative(path) {
		return Normalize(path, ""), nil
	}

	cwd, err := n.wdHandler.Getwd()
	if err != nil {
		return "", fmt.Errorf("(pathing-normalize) %w: %w", ErrNoWorkingDir, err)
	}

	return Normalize(path, cwd), nil
}

// IsExtended reports whether path already carries the extended-length prefix.
func IsExtended(path string) bool {
	return strings.HasPrefix(path, Prefix)
}

// IsRelative reports whether [Normalize] would resolve path against a working
// directory.
func IsRelative(path string) bool {
	return !IsExtended(path) &&
		!strings.HasPrefix(path, separator) &&
		!strings.Contains(path, ":")
}

// Normalize maps path to the canonical extended-length form, using cwd to
// resolve a relative path. No I/O is performed.
//
// A path that already begins with [Prefix] is returned unchanged, without any
// validation of what follows the prefix. A path beginning with a separator is
// taken as network share (`\\server\share`) and rewritten onto [UNCPrefix]. A
// path containing a volume designator (`:`) is taken as absolute. Anything
// else is joined onto cwd. Trailing dots are stripped from the result.
func Normalize(path string, cwd string) string {
	if IsExtended(path) {
		return path
	}

	switch {
	case strings.HasPrefix(path, separator):
		path = UNCPrefix + path[min(2, len(path)):] //nolint:mnd

	case strings.Contains(path, ":"):
		path = Prefix + path

	default:
		path = combine(cwd, path)
		for strings.Contains(path, `\.\`) {
			path = strings.ReplaceAll(path, `\.\`, separator)
		}
		path = Prefix + path
	}

	return strings.TrimRight(path, ".")
}

// combine joins a relative path onto dir with exactly one separator at the
// join point.
func combine(dir string, rel string) string {
	return strings.TrimRight(dir, separator) + separator +
		strings.TrimRight(strings.TrimLeft(rel, separator), ".")
}
