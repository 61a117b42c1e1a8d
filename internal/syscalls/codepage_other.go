//go:build !windows

package syscalls

// defaultCodePage is the ANSI code page of a western-european Windows
// installation, assumed where no Windows code page can be queried.
const defaultCodePage = 1252

// ANSICodePage returns the assumed ANSI code page on this platform.
func ANSICodePage() uint32 {
	return defaultCodePage
}
