package syscalls

import (
	"strings"
	"sync"
	"time"

	"github.com/desertwitch/longfile/internal/pathing"
	"github.com/desertwitch/longfile/internal/schema"
)

type memNode struct {
	dir   bool
	data  []byte
	attrs schema.Attributes
	times schema.FileTimes
	opens []*memHandle
}

// Memory is an in-memory implementation of the extended-length path system
// calls following the Windows semantics for dispositions, sharing modes,
// attributes and error codes. Paths are case-insensitive. Volume roots
// (`C:`, `\\server\share`) always exist.
type Memory struct {
	mu    sync.Mutex
	cwd   string
	clock func() time.Time
	nodes map[string]*memNode
}

// NewMemory returns a pointer to a new, empty [Memory] that resolves relative
// paths against cwd (`C:\` if empty).
func NewMemory(cwd string) *Memory {
	if cwd == "" {
		cwd = `C:\`
	}

	return &Memory{
		cwd:   cwd,
		clock: time.Now,
		nodes: make(map[string]*memNode),
	}
}

// SetClock replaces the time source used for new timestamps.
func (m *Memory) SetClock(clock func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clock = clock
}

// Getwd returns the working directory used for relative paths.
func (m *Memory) Getwd() (string, error) {
	return m.cwd, nil
}

// GetFileAttributes returns the attributes of a file or directory.
func (m *Memory) GetFileAttributes(path string) (schema.Attributes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return schema.InvalidAttributes, err
	}

	if isVolumeRoot(key) {
		return schema.AttributeDirectory, nil
	}

	node, err := m.lookup(key)
	if err != nil {
		return schema.InvalidAttributes, err
	}

	attrs := node.attrs
	if node.dir {
		attrs |= schema.AttributeDirectory
	}
	if attrs == 0 {
		attrs = schema.AttributeNormal
	}

	return attrs, nil
}

// SetFileAttributes replaces the attributes of a file or directory. The
// directory bit cannot be changed and [schema.AttributeNormal] clears all.
func (m *Memory) SetFileAttributes(path string, attrs schema.Attributes) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return err
	}

	node, err := m.lookup(key)
	if err != nil {
		return err
	}

	node.attrs = attrs &^ (schema.AttributeDirectory | schema.AttributeNormal)

	return nil
}

// CreateFile opens or creates a file.
func (m *Memory) CreateFile(path string, access schema.Access, share schema.ShareMode, disposition schema.Disposition) (schema.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return nil, err
	}

	node, exists := m.nodes[key]
	if exists && node.dir {
		return nil, schema.ErrorAccessDenied
	}

	switch disposition {
	case schema.CreateNew:
		if exists {
			return nil, schema.ErrorFileExists
		}
	case schema.OpenExisting, schema.TruncateExisting:
		if !exists {
			if err := m.checkParent(key); err != nil {
				return nil, err
			}

			return nil, schema.ErrorFileNotFound
		}
	case schema.CreateAlways, schema.OpenAlways:
	default:
		return nil, schema.ErrorInvalidParameter
	}

	now := m.now()

	if exists {
		if shareConflict(node.opens, access, share) {
			return nil, schema.ErrorSharingViolation
		}
		if access.CanWrite() && node.attrs.Has(schema.AttributeReadOnly) {
			return nil, schema.ErrorAccessDenied
		}
		if disposition == schema.CreateAlways || disposition == schema.TruncateExisting {
			node.data = nil
			node.attrs |= schema.AttributeArchive
			node.times.LastWrite = now
		}
	} else {
		if err := m.checkParent(key); err != nil {
			return nil, err
		}
		node = &memNode{
			attrs: schema.AttributeArchive,
			times: schema.FileTimes{Creation: now, LastAccess: now, LastWrite: now},
		}
		m.nodes[key] = node
	}

	h := &memHandle{
		mem:    m,
		node:   node,
		name:   path,
		access: access,
		share:  share,
	}
	node.opens = append(node.opens, h)

	return h, nil
}

// DeleteFile removes a file.
func (m *Memory) DeleteFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return err
	}

	node, err := m.lookup(key)
	if err != nil {
		return err
	}

	if node.dir || node.attrs.Has(schema.AttributeReadOnly) {
		return schema.ErrorAccessDenied
	}

	for _, h := range node.opens {
		if h.share&schema.ShareDelete == 0 {
			return schema.ErrorSharingViolation
		}
	}

	delete(m.nodes, key)

	return nil
}

// CopyFile copies the content, attributes and last write time of a file.
func (m *Memory) CopyFile(src string, dst string, failIfExists bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	skey, err := m.key(src)
	if err != nil {
		return err
	}

	dkey, err := m.key(dst)
	if err != nil {
		return err
	}

	snode, err := m.lookup(skey)
	if err != nil {
		return err
	}
	if snode.dir {
		return schema.ErrorAccessDenied
	}
	if skey == dkey || shareConflict(snode.opens, schema.AccessGenericRead, schema.ShareRead) {
		return schema.ErrorSharingViolation
	}

	now := m.now()
	created := now

	if dnode, exists := m.nodes[dkey]; exists {
		if failIfExists {
			return schema.ErrorFileExists
		}
		if dnode.dir || dnode.attrs.Has(schema.AttributeReadOnly) {
			return schema.ErrorAccessDenied
		}
		if len(dnode.opens) > 0 {
			return schema.ErrorSharingViolation
		}
		created = dnode.times.Creation
	} else if err := m.checkParent(dkey); err != nil {
		return err
	}

	m.nodes[dkey] = &memNode{
		data:  append([]byte(nil), snode.data...),
		attrs: snode.attrs | schema.AttributeArchive,
		times: schema.FileTimes{Creation: created, LastAccess: now, LastWrite: snode.times.LastWrite},
	}

	return nil
}

// MoveFile renames a file or directory. An existing destination is never
// replaced.
func (m *Memory) MoveFile(src string, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	skey, err := m.key(src)
	if err != nil {
		return err
	}

	dkey, err := m.key(dst)
	if err != nil {
		return err
	}

	snode, err := m.lookup(skey)
	if err != nil {
		return err
	}

	if skey == dkey {
		return nil
	}
	if _, exists := m.nodes[dkey]; exists {
		return schema.ErrorAlreadyExists
	}
	if err := m.checkParent(dkey); err != nil {
		return err
	}

	for _, h := range snode.opens {
		if h.share&schema.ShareDelete == 0 {
			return schema.ErrorSharingViolation
		}
	}

	if snode.dir {
		if strings.HasPrefix(dkey, skey+`\`) {
			return schema.ErrorAccessDenied
		}
		for k, n := range m.nodes {
			if strings.HasPrefix(k, skey+`\`) {
				delete(m.nodes, k)
				m.nodes[dkey+k[len(skey):]] = n
			}
		}
	}

	delete(m.nodes, skey)
	m.nodes[dkey] = snode

	return nil
}

// GetFileTime returns the timestamps of a file opened by this [Memory].
func (m *Memory) GetFileTime(h schema.Handle) (schema.FileTimes, error) {
	mh, err := m.handleOf(h)
	if err != nil {
		return schema.FileTimes{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if mh.closed {
		return schema.FileTimes{}, schema.ErrorInvalidHandle
	}
	if mh.access&schema.AccessReadAttributes == 0 {
		return schema.FileTimes{}, schema.ErrorAccessDenied
	}

	return mh.node.times, nil
}

// SetFileTime replaces the timestamps of a file opened by this [Memory].
func (m *Memory) SetFileTime(h schema.Handle, times schema.FileTimes) error {
	mh, err := m.handleOf(h)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if mh.closed {
		return schema.ErrorInvalidHandle
	}
	if mh.access&schema.AccessWriteAttributes == 0 {
		return schema.ErrorAccessDenied
	}

	mh.node.times = times

	return nil
}

// GetFullPathName resolves a path against the working directory the way
// GetFullPathNameW does. Extended-length paths are returned unchanged.
func (m *Memory) GetFullPathName(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fullPath(path)
}

// CreateDirectory creates a single directory.
func (m *Memory) CreateDirectory(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return err
	}

	if _, exists := m.nodes[key]; exists || isVolumeRoot(key) {
		return schema.ErrorAlreadyExists
	}
	if err := m.checkParent(key); err != nil {
		return err
	}

	now := m.now()
	m.nodes[key] = &memNode{
		dir:   true,
		times: schema.FileTimes{Creation: now, LastAccess: now, LastWrite: now},
	}

	return nil
}

// RemoveDirectory removes an empty directory.
func (m *Memory) RemoveDirectory(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.key(path)
	if err != nil {
		return err
	}

	node, err := m.lookup(key)
	if err != nil {
		return err
	}
	if !node.dir {
		return schema.ErrorDirectory
	}

	for k := range m.nodes {
		if strings.HasPrefix(k, key+`\`) {
			return schema.ErrorDirNotEmpty
		}
	}

	delete(m.nodes, key)

	return nil
}

func (m *Memory) now() int64 {
	return schema.TimeToFiletime(m.clock())
}

func (m *Memory) handleOf(h schema.Handle) (*memHandle, error) {
	mh, ok := h.(*memHandle)
	if !ok || mh.mem != m {
		return nil, ErrForeignHandle
	}

	return mh, nil
}

// key maps a path onto the case-folded node key. Extended-length paths are
// taken literally, anything else is resolved first.
func (m *Memory) key(path string) (string, error) {
	switch {
	case strings.HasPrefix(path, pathing.UNCPrefix):
		path = `\\` + path[len(pathing.UNCPrefix):]

	case pathing.IsExtended(path):
		path = path[len(pathing.Prefix):]

	default:
		full, err := m.fullPath(path)
		if err != nil {
			return "", err
		}
		path = full
	}

	path = strings.TrimRight(path, `\`)
	if path == "" {
		return "", schema.ErrorInvalidParameter
	}

	return strings.ToLower(path), nil
}

func (m *Memory) lookup(key string) (*memNode, error) {
	node, exists := m.nodes[key]
	if !exists {
		if err := m.checkParent(key); err != nil {
			return nil, err
		}

		return nil, schema.ErrorFileNotFound
	}

	return node, nil
}

func (m *Memory) checkParent(key string) error {
	idx := strings.LastIndex(key, `\`)
	if idx <= 1 {
		return schema.ErrorPathNotFound
	}

	parent := key[:idx]
	if isVolumeRoot(parent) {
		return nil
	}

	if node, exists := m.nodes[parent]; !exists || !node.dir {
		return schema.ErrorPathNotFound
	}

	return nil
}

// fullPath resolves dot segments, drive-relative and rooted paths against the
// working directory.
func (m *Memory) fullPath(path string) (string, error) {
	if path == "" {
		return "", schema.ErrorInvalidParameter
	}
	if pathing.IsExtended(path) {
		return path, nil
	}

	path = strings.ReplaceAll(path, "/", `\`)

	var root, rest string

	switch {
	case strings.HasPrefix(path, `\\`):
		parts := strings.SplitN(path[2:], `\`, 3) //nolint:mnd
		if len(parts) < 2 {                       //nolint:mnd
			return path, nil
		}
		root = `\\` + parts[0] + `\` + parts[1]
		if len(parts) == 3 { //nolint:mnd
			rest = parts[2]
		}

	case len(path) >= 2 && path[1] == ':':
		root, rest = path[:2], path[2:]
		if !strings.HasPrefix(rest, `\`) {
			if strings.EqualFold(volumeOf(m.cwd), root) {
				rest = m.cwd[len(root):] + `\` + rest
			}
		}

	case strings.HasPrefix(path, `\`):
		root, rest = volumeOf(m.cwd), path

	default:
		return m.fullPath(strings.TrimRight(m.cwd, `\`) + `\` + path)
	}

	var segs []string
	for _, seg := range strings.Split(rest, `\`) {
		switch seg {
		case "", ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}

	if n := len(segs); n > 0 {
		segs[n-1] = strings.TrimRight(segs[n-1], ". ")
	}

	full := root + `\` + strings.Join(segs, `\`)
	if len(segs) > 0 && strings.HasSuffix(path, `\`) {
		full += `\`
	}

	return full, nil
}

func volumeOf(path string) string {
	if len(path) >= 2 && path[1] == ':' {
		return path[:2]
	}

	if strings.HasPrefix(path, `\\`) {
		parts := strings.SplitN(path[2:], `\`, 3) //nolint:mnd
		if len(parts) >= 2 {                      //nolint:mnd
			return `\\` + parts[0] + `\` + parts[1]
		}
	}

	return path
}

func isVolumeRoot(key string) bool {
	if len(key) == 2 && key[1] == ':' {
		return true
	}

	if strings.HasPrefix(key, `\\`) {
		return len(strings.Split(key[2:], `\`)) <= 2 //nolint:mnd
	}

	return false
}

// shareConflict reports whether a new open with access and share collides
// with the already open handles.
func shareConflict(opens []*memHandle, access schema.Access, share schema.ShareMode) bool {
	for _, o := range opens {
		if access.CanRead() && o.share&schema.ShareRead == 0 {
			return true
		}
		if access.CanWrite() && o.share&schema.ShareWrite == 0 {
			return true
		}
		if o.access.CanRead() && share&schema.ShareRead == 0 {
			return true
		}
		if o.access.CanWrite() && share&schema.ShareWrite == 0 {
			return true
		}
	}

	return false
}
