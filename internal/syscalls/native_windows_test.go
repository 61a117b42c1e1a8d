//go:build windows

package syscalls_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/desertwitch/longfile/internal/schema"
	"github.com/desertwitch/longfile/internal/syscalls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nativeLongDir(t *testing.T, native *syscalls.Native) string {
	t.Helper()

	dir := `\\?\` + t.TempDir()
	for len(dir) < 300 {
		dir += `\` + strings.Repeat("w", 60)
		require.NoError(t, native.CreateDirectory(dir))
	}

	return dir
}

func TestNative_LongPathLifecycle(t *testing.T) {
	t.Parallel()

	native := &syscalls.Native{}
	dir := nativeLongDir(t, native)
	path := dir + `\file.txt`

	h, err := native.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateNew)
	require.NoError(t, err)
	_, err = h.Write([]byte("native"))
	require.NoError(t, err)
	require.NoError(t, h.Close())

	attrs, err := native.GetFileAttributes(path)
	require.NoError(t, err)
	assert.True(t, attrs.Has(schema.AttributeArchive))

	_, err = native.CreateFile(path, schema.AccessGenericWrite, schema.ShareNone, schema.CreateNew)
	require.ErrorIs(t, err, schema.ErrorFileExists)

	require.NoError(t, native.CopyFile(path, dir+`\copy.txt`, true))
	require.NoError(t, native.MoveFile(dir+`\copy.txt`, dir+`\moved.txt`))

	h, err = native.CreateFile(dir+`\moved.txt`, schema.AccessGenericRead, schema.ShareRead, schema.OpenExisting)
	require.NoError(t, err)
	data, err := io.ReadAll(h)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	assert.Equal(t, "native", string(data))

	require.NoError(t, native.DeleteFile(dir+`\moved.txt`))
	require.NoError(t, native.DeleteFile(path))

	_, err = native.GetFileAttributes(path)
	require.ErrorIs(t, err, schema.ErrorFileNotFound)
}

func TestNative_FileTime(t *testing.T) {
	t.Parallel()

	native := &syscalls.Native{}
	path := nativeLongDir(t, native) + `\times.txt`

	h, err := native.CreateFile(path,
		schema.AccessGenericRead|schema.AccessGenericWrite|schema.AccessWriteAttributes,
		schema.ShareNone, schema.CreateNew)
	require.NoError(t, err)
	defer h.Close()

	stamp := schema.TimeToFiletime(time.Date(2005, 1, 2, 3, 4, 5, 0, time.UTC))

	times, err := native.GetFileTime(h)
	require.NoError(t, err)

	times.Creation = stamp
	require.NoError(t, native.SetFileTime(h, times))

	got, err := native.GetFileTime(h)
	require.NoError(t, err)
	assert.Equal(t, stamp, got.Creation)
	assert.Equal(t, times.LastWrite, got.LastWrite)
}

func TestNative_GetFullPathName(t *testing.T) {
	t.Parallel()

	native := &syscalls.Native{}

	got, err := native.GetFullPathName(`C:\a\b\..\c.txt`)
	require.NoError(t, err)
	assert.Equal(t, `C:\a\c.txt`, got)
}
