package syscalls

import (
	"io"
	"slices"

	"github.com/desertwitch/longfile/internal/schema"
)

// memHandle is an open file of a [Memory].
type memHandle struct {
	mem    *Memory
	node   *memNode
	name   string
	access schema.Access
	share  schema.ShareMode
	pos    int64
	closed bool
}

func (h *memHandle) Name() string {
	return h.name
}

func (h *memHandle) Read(p []byte) (int, error) {
	h.mem.mu.Lock()
	defer h.mem.mu.Unlock()

	if h.closed {
		return 0, schema.ErrorInvalidHandle
	}
	if !h.access.CanRead() {
		return 0, schema.ErrorAccessDenied
	}

	if h.pos >= int64(len(h.node.data)) {
		return 0, io.EOF
	}

	n := copy(p, h.node.data[h.pos:])
	h.pos += int64(n)

	return n, nil
}

func (h *memHandle) Write(p []byte) (int, error) {
	h.mem.mu.Lock()
	defer h.mem.mu.Unlock()

	if h.closed {
		return 0, schema.ErrorInvalidHandle
	}
	if !h.access.CanWrite() {
		return 0, schema.ErrorAccessDenied
	}

	end := h.pos + int64(len(p))
	if end > int64(len(h.node.data)) {
		h.node.data = append(h.node.data, make([]byte, end-int64(len(h.node.data)))...)
	}

	n := copy(h.node.data[h.pos:], p)
	h.pos += int64(n)

	h.node.attrs |= schema.AttributeArchive
	h.node.times.LastWrite = h.mem.now()

	return n, nil
}

func (h *memHandle) Seek(offset int64, whence int) (int64, error) {
	h.mem.mu.Lock()
	defer h.mem.mu.Unlock()

	if h.closed {
		return 0, schema.ErrorInvalidHandle
	}

	var base int64

	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = h.pos
	case io.SeekEnd:
		base = int64(len(h.node.data))
	default:
		return 0, schema.ErrorInvalidParameter
	}

	if base+offset < 0 {
		return 0, schema.ErrorInvalidParameter
	}
	h.pos = base + offset

	return h.pos, nil
}

func (h *memHandle) Close() error {
	h.mem.mu.Lock()
	defer h.mem.mu.Unlock()

	if h.closed {
		return schema.ErrorInvalidHandle
	}
	h.closed = true

	h.node.opens = slices.DeleteFunc(h.node.opens, func(o *memHandle) bool {
		return o == h
	})

	return nil
}
