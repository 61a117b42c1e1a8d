package filesystem

import (
	"github.com/desertwitch/longfile/internal/schema"
	"github.com/stretchr/testify/mock"
)

type mockSysProvider struct {
	mock.Mock
}

func (m *mockSysProvider) GetFileAttributes(path string) (schema.Attributes, error) {
	args := m.Called(path)

	return args.Get(0).(schema.Attributes), args.Error(1) //nolint:forcetypeassert
}

func (m *mockSysProvider) SetFileAttributes(path string, attrs schema.Attributes) error {
	return m.Called(path, attrs).Error(0)
}

func (m *mockSysProvider) CreateFile(path string, access schema.Access, share schema.ShareMode, disposition schema.Disposition) (schema.Handle, error) {
	args := m.Called(path, access, share, disposition)

	h, _ := args.Get(0).(schema.Handle)

	return h, args.Error(1)
}

func (m *mockSysProvider) DeleteFile(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockSysProvider) CopyFile(src string, dst string, failIfExists bool) error {
	return m.Called(src, dst, failIfExists).Error(0)
}

func (m *mockSysProvider) MoveFile(src string, dst string) error {
	return m.Called(src, dst).Error(0)
}

func (m *mockSysProvider) GetFileTime(h schema.Handle) (schema.FileTimes, error) {
	args := m.Called(h)

	return args.Get(0).(schema.FileTimes), args.Error(1) //nolint:forcetypeassert
}

func (m *mockSysProvider) SetFileTime(h schema.Handle, times schema.FileTimes) error {
	return m.Called(h, times).Error(0)
}

func (m *mockSysProvider) GetFullPathName(path string) (string, error) {
	args := m.Called(path)

	return args.String(0), args.Error(1)
}

func (m *mockSysProvider) CreateDirectory(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockSysProvider) RemoveDirectory(path string) error {
	return m.Called(path).Error(0)
}

type mockHandle struct {
	mock.Mock
}

func (m *mockHandle) Read(p []byte) (int, error) {
	args := m.Called(p)

	return args.Int(0), args.Error(1)
}

func (m *mockHandle) Write(p []byte) (int, error) {
	args := m.Called(p)

	return args.Int(0), args.Error(1)
}

func (m *mockHandle) Seek(offset int64, whence int) (int64, error) {
	args := m.Called(offset, whence)

	return args.Get(0).(int64), args.Error(1) //nolint:forcetypeassert
}

func (m *mockHandle) Close() error {
	return m.Called().Error(0)
}

func (m *mockHandle) Name() string {
	return m.Called().String(0)
}
