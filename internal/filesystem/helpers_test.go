package filesystem

import (
	"io"
	"strings"
	"testing"

	"github.com/desertwitch/longfile/internal/schema"
	"github.com/desertwitch/longfile/internal/syscalls"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const memWorkDir = `C:\work`

// workdirOS is the native [schema.OS] with a fixed working directory, so
// that relative paths resolve the same as in the [syscalls.Memory].
type workdirOS struct {
	schema.OS
	wd string
}

func (o *workdirOS) Getwd() (string, error) {
	return o.wd, nil
}

func newMemoryHandler(t *testing.T) (*Handler, *syscalls.Memory) {
	t.Helper()

	mem := syscalls.NewMemory(memWorkDir)
	require.NoError(t, mem.CreateDirectory(memWorkDir))

	return NewHandler(&workdirOS{wd: memWorkDir}, mem, charmap.Windows1252), mem
}

func newMockHandler(sys *mockSysProvider) *Handler {
	return NewHandler(&workdirOS{wd: memWorkDir}, sys, charmap.Windows1252)
}

// longDir creates nested directories below base until the directory path has
// at least minLen characters and returns it.
func longDir(t *testing.T, mem *syscalls.Memory, base string, minLen int) string {
	t.Helper()

	dir := base
	for i := 0; len(dir) < minLen; i++ {
		dir += `\` + strings.Repeat(string(rune('a'+i%26)), 50)
		require.NoError(t, mem.CreateDirectory(dir))
	}

	return dir
}

func memWrite(t *testing.T, mem *syscalls.Memory, path string, data []byte) {
	t.Helper()

	h, err := mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateAlways)
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Write(data)
	require.NoError(t, err)
}

func memRead(t *testing.T, mem *syscalls.Memory, path string) []byte {
	t.Helper()

	h, err := mem.CreateFile(path, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.NoError(t, err)
	defer h.Close()

	data, err := io.ReadAll(h)
	require.NoError(t, err)

	return data
}
