package schema

import "io"

// Handle is an open file as returned by a platform's CreateFile call. The
// operation that opened a [Handle] owns it and must close it before returning,
// unless the [Handle] is explicitly handed to the caller.
type Handle interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	Name() string
}

// StreamMode selects how a stream is opened for a caller.
type StreamMode int

const (
	// StreamRead opens an existing file for shared reading.
	StreamRead StreamMode = iota

	// StreamWrite opens an existing file for exclusive reading and writing,
	// including its attributes.
	StreamWrite
)

func (m StreamMode) String() string {
	switch m {
	case StreamRead:
		return "read"
	case StreamWrite:
		return "write"
	default:
		return "unknown"
	}
}
