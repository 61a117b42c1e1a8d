package filesystem

import (
	"time"

	"github.com/desertwitch/longfile/internal/schema"
)

// GetCreationTime returns the creation time of a file in UTC.
func (f *Handler) GetCreationTime(path string) (time.Time, error) {
	times, err := f.readFileTimes("getcreationtime", path)
	if err != nil {
		return time.Time{}, err
	}

	return schema.FiletimeToTime(times.Creation), nil
}

// GetLastAccessTime returns the last access time of a file in UTC.
func (f *Handler) GetLastAccessTime(path string) (time.Time, error) {
	times, err := f.readFileTimes("getlastaccesstime", path)
	if err != nil {
		return time.Time{}, err
	}

	return schema.FiletimeToTime(times.LastAccess), nil
}

// GetLastWriteTime returns the last write time of a file in UTC.
func (f *Handler) GetLastWriteTime(path string) (time.Time, error) {
	times, err := f.readFileTimes("getlastwritetime", path)
	if err != nil {
		return time.Time{}, err
	}

	return schema.FiletimeToTime(times.LastWrite), nil
}

// SetCreationTime replaces the creation time of a file, keeping its other
// timestamps.
func (f *Handler) SetCreationTime(path string, t time.Time) error {
	return f.updateFileTimes("setcreationtime", path, func(times *schema.FileTimes) {
		times.Creation = schema.TimeToFiletime(t)
	})
}

// SetLastAccessTime replaces the last access time of a file, keeping its
// other timestamps.
func (f *Handler) SetLastAccessTime(path string, t time.Time) error {
	return f.updateFileTimes("setlastaccesstime", path, func(times *schema.FileTimes) {
		times.LastAccess = schema.TimeToFiletime(t)
	})
}

// SetLastWriteTime replaces the last write time of a file, keeping its other
// timestamps.
func (f *Handler) SetLastWriteTime(path string, t time.Time) error {
	return f.updateFileTimes("setlastwritetime", path, func(times *schema.FileTimes) {
		times.LastWrite = schema.TimeToFiletime(t)
	})
}

func (f *Handler) readFileTimes(op string, path string) (schema.FileTimes, error) {
	p, err := f.target(op, path)
	if err != nil {
		return schema.FileTimes{}, err
	}

	h, err := f.openWithWrite(op, p)
	if err != nil {
		return schema.FileTimes{}, err
	}
	defer h.Close()

	times, err := f.sysHandler.GetFileTime(h)
	if err := raise(op, p, err); err != nil {
		return schema.FileTimes{}, err
	}

	return times, nil
}

// updateFileTimes reads the timestamp triple through one handle, lets update
// change a single field and writes the triple back through the same handle.
func (f *Handler) updateFileTimes(op string, path string, update func(*schema.FileTimes)) error {
	p, err := f.target(op, path)
	if err != nil {
		return err
	}

	h, err := f.openWithWrite(op, p)
	if err != nil {
		return err
	}
	defer h.Close()

	times, err := f.sysHandler.GetFileTime(h)
	if err := raise(op, p, err); err != nil {
		return err
	}

	update(&times)

	return raise(op, p, f.sysHandler.SetFileTime(h, times))
}
