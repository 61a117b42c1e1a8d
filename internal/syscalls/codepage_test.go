package syscalls_test

import (
	"testing"

	"github.com/desertwitch/longfile/internal/syscalls"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestCodePageEncoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, charmap.Windows1252, syscalls.CodePageEncoding(1252))
	assert.Equal(t, charmap.Windows1251, syscalls.CodePageEncoding(1251))
	assert.Equal(t, japanese.ShiftJIS, syscalls.CodePageEncoding(932))
	assert.Equal(t, unicode.UTF8, syscalls.CodePageEncoding(65001))
	assert.Equal(t, charmap.Windows1252, syscalls.CodePageEncoding(12345))
}

func TestANSIEncoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, syscalls.CodePageEncoding(syscalls.ANSICodePage()), syscalls.ANSIEncoding())
}
