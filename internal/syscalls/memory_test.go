package syscalls_test

import (
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/desertwitch/longfile/internal/schema"
	"github.com/desertwitch/longfile/internal/syscalls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemory(t *testing.T) *syscalls.Memory {
	t.Helper()

	mem := syscalls.NewMemory(`C:\work`)
	require.NoError(t, mem.CreateDirectory(`C:\work`))

	return mem
}

func writeFile(t *testing.T, mem *syscalls.Memory, path string, data string) {
	t.Helper()

	h, err := mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateAlways)
	require.NoError(t, err)

	_, err = h.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, h.Close())
}

func readFile(t *testing.T, mem *syscalls.Memory, path string) string {
	t.Helper()

	h, err := mem.CreateFile(path, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.NoError(t, err)
	defer h.Close()

	data, err := io.ReadAll(h)
	require.NoError(t, err)

	return string(data)
}

func TestMemory_CreateFile_Dispositions(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	path := `C:\work\file.txt`

	_, err := mem.CreateFile(path, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.ErrorIs(t, err, schema.ErrorFileNotFound)

	h, err := mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateNew)
	require.NoError(t, err)
	_, err = h.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, h.Close())

	_, err = mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateNew)
	require.ErrorIs(t, err, schema.ErrorFileExists)

	h, err = mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.OpenAlways)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	assert.Equal(t, "abc", readFile(t, mem, path))

	h, err = mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.TruncateExisting)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	assert.Empty(t, readFile(t, mem, path))

	_, err = mem.CreateFile(path, schema.AccessGenericRead, schema.ShareRead, schema.Disposition(42))
	require.ErrorIs(t, err, schema.ErrorInvalidParameter)

	_, err = mem.CreateFile(`C:\missing\file.txt`, schema.AccessGenericWrite, schema.ShareNone, schema.CreateAlways)
	require.ErrorIs(t, err, schema.ErrorPathNotFound)

	_, err = mem.CreateFile(`C:\work`, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.ErrorIs(t, err, schema.ErrorAccessDenied)
}

func TestMemory_CaseInsensitiveAndPrefixed(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	writeFile(t, mem, `C:\Work\Mixed.TXT`, "x")

	assert.Equal(t, "x", readFile(t, mem, `c:\work\mixed.txt`))
	assert.Equal(t, "x", readFile(t, mem, `\\?\C:\WORK\mixed.txt`))
	assert.Equal(t, "x", readFile(t, mem, `mixed.txt`))
}

func TestMemory_UNC(t *testing.T) {
	t.Parallel()

	mem := syscalls.NewMemory("")

	require.NoError(t, mem.CreateDirectory(`\\server\share\dir`))
	writeFile(t, mem, `\\?\UNC\server\share\dir\file.txt`, "unc")

	assert.Equal(t, "unc", readFile(t, mem, `\\server\share\dir\file.txt`))

	attrs, err := mem.GetFileAttributes(`\\server\share`)
	require.NoError(t, err)
	assert.True(t, attrs.Has(schema.AttributeDirectory))
}

func TestMemory_SharingViolation(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	path := `C:\work\shared.txt`
	writeFile(t, mem, path, "x")

	r, err := mem.CreateFile(path, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.NoError(t, err)

	_, err = mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateAlways)
	require.ErrorIs(t, err, schema.ErrorSharingViolation)

	require.ErrorIs(t, mem.DeleteFile(path), schema.ErrorSharingViolation)

	require.NoError(t, r.Close())
	require.ErrorIs(t, r.Close(), schema.ErrorInvalidHandle)

	require.NoError(t, mem.DeleteFile(path))
}

func TestMemory_Attributes(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	path := `C:\work\attrs.txt`
	writeFile(t, mem, path, "x")

	attrs, err := mem.GetFileAttributes(path)
	require.NoError(t, err)
	assert.Equal(t, schema.AttributeArchive, attrs)

	require.NoError(t, mem.SetFileAttributes(path, schema.AttributeNormal))

	attrs, err = mem.GetFileAttributes(path)
	require.NoError(t, err)
	assert.Equal(t, schema.AttributeNormal, attrs)

	require.NoError(t, mem.SetFileAttributes(path, schema.AttributeReadOnly))

	_, err = mem.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.OpenExisting)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.ErrorIs(t, mem.DeleteFile(path), fs.ErrPermission)

	attrs, err = mem.GetFileAttributes(`C:\work\missing.txt`)
	require.ErrorIs(t, err, schema.ErrorFileNotFound)
	assert.Equal(t, schema.InvalidAttributes, attrs)

	_, err = mem.GetFileAttributes(`C:\nowhere\missing.txt`)
	require.ErrorIs(t, err, schema.ErrorPathNotFound)
}

func TestMemory_CopyFile(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	writeFile(t, mem, `C:\work\src.txt`, "new")
	writeFile(t, mem, `C:\work\dst.txt`, "old")

	require.ErrorIs(t, mem.CopyFile(`C:\work\src.txt`, `C:\work\dst.txt`, true), schema.ErrorFileExists)
	assert.Equal(t, "old", readFile(t, mem, `C:\work\dst.txt`))

	require.NoError(t, mem.CopyFile(`C:\work\src.txt`, `C:\work\dst.txt`, false))
	assert.Equal(t, "new", readFile(t, mem, `C:\work\dst.txt`))

	require.ErrorIs(t, mem.CopyFile(`C:\work\missing.txt`, `C:\work\x.txt`, false), schema.ErrorFileNotFound)
	require.ErrorIs(t, mem.CopyFile(`C:\work\src.txt`, `C:\none\x.txt`, false), schema.ErrorPathNotFound)
}

func TestMemory_MoveFile(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	require.NoError(t, mem.CreateDirectory(`C:\work\dir`))
	writeFile(t, mem, `C:\work\dir\file.txt`, "x")
	writeFile(t, mem, `C:\work\taken.txt`, "y")

	require.ErrorIs(t, mem.MoveFile(`C:\work\dir\file.txt`, `C:\work\taken.txt`), schema.ErrorAlreadyExists)

	require.NoError(t, mem.MoveFile(`C:\work\dir`, `C:\work\renamed`))
	assert.Equal(t, "x", readFile(t, mem, `C:\work\renamed\file.txt`))

	_, err := mem.GetFileAttributes(`C:\work\dir\file.txt`)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.ErrorIs(t, mem.MoveFile(`C:\work\renamed`, `C:\work\renamed\inner`), schema.ErrorAccessDenied)
}

func TestMemory_FileTime(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)

	stamp := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	mem.SetClock(func() time.Time { return stamp })

	writeFile(t, mem, `C:\work\times.txt`, "x")

	h, err := mem.CreateFile(`C:\work\times.txt`, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.NoError(t, err)

	times, err := mem.GetFileTime(h)
	require.NoError(t, err)
	assert.Equal(t, schema.TimeToFiletime(stamp), times.Creation)
	assert.Equal(t, schema.TimeToFiletime(stamp), times.LastWrite)

	require.ErrorIs(t, mem.SetFileTime(h, schema.FileTimes{}), schema.ErrorAccessDenied)
	require.NoError(t, h.Close())

	_, err = mem.GetFileTime(h)
	require.ErrorIs(t, err, schema.ErrorInvalidHandle)

	other := syscalls.NewMemory("")
	_, err = other.GetFileTime(h)
	require.ErrorIs(t, err, syscalls.ErrForeignHandle)
}

func TestMemory_GetFullPathName(t *testing.T) {
	t.Parallel()

	mem := syscalls.NewMemory(`C:\work\sub`)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"Success_Relative", `file.txt`, `C:\work\sub\file.txt`},
		{"Success_DotSegments", `..\.\other\file.txt`, `C:\work\other\file.txt`},
		{"Success_Rooted", `\root.txt`, `C:\root.txt`},
		{"Success_DriveRelative", `C:file.txt`, `C:\work\sub\file.txt`},
		{"Success_OtherDrive", `D:\x\y.txt`, `D:\x\y.txt`},
		{"Success_TrailingDotsStripped", `C:\x\name...`, `C:\x\name`},
		{"Success_ForwardSlashes", `C:/x/y.txt`, `C:\x\y.txt`},
		{"Success_UNC", `\\server\share\a\..\b`, `\\server\share\b`},
		{"Success_Extended", `\\?\C:\keep\..\as\is`, `\\?\C:\keep\..\as\is`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := mem.GetFullPathName(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := mem.GetFullPathName("")
	require.ErrorIs(t, err, schema.ErrorInvalidParameter)
}

func TestMemory_Directories(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)

	require.ErrorIs(t, mem.CreateDirectory(`C:\work`), schema.ErrorAlreadyExists)
	require.ErrorIs(t, mem.CreateDirectory(`C:\a\b`), schema.ErrorPathNotFound)

	require.NoError(t, mem.CreateDirectory(`C:\work\d`))
	writeFile(t, mem, `C:\work\d\f.txt`, "x")

	require.ErrorIs(t, mem.RemoveDirectory(`C:\work\d`), schema.ErrorDirNotEmpty)
	require.ErrorIs(t, mem.RemoveDirectory(`C:\work\d\f.txt`), schema.ErrorDirectory)

	require.NoError(t, mem.DeleteFile(`C:\work\d\f.txt`))
	require.NoError(t, mem.RemoveDirectory(`C:\work\d`))
	require.ErrorIs(t, mem.DeleteFile(`C:\work`), schema.ErrorAccessDenied)
}

func TestMemoryHandle_Seek(t *testing.T) {
	t.Parallel()

	mem := newMemory(t)
	writeFile(t, mem, `C:\work\seek.txt`, "abcdef")

	h, err := mem.CreateFile(`C:\work\seek.txt`, schema.AccessGenericRead|schema.AccessGenericWrite, schema.ShareNone, schema.OpenExisting)
	require.NoError(t, err)
	defer h.Close()

	pos, err := h.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)

	_, err = h.Write([]byte("gh"))
	require.NoError(t, err)

	_, err = h.Seek(-4, io.SeekCurrent)
	require.NoError(t, err)

	buf := make([]byte, 4)
	n, err := h.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "efgh", string(buf[:n]))

	_, err = h.Seek(-1, io.SeekStart)
	require.ErrorIs(t, err, schema.ErrorInvalidParameter)

	assert.Equal(t, `C:\work\seek.txt`, h.Name())
}
