//go:build windows

package syscalls

// ANSICodePage returns the active ANSI code page of the system.
func ANSICodePage() uint32 {
	r1, _, _ := procGetACP.Call()

	return uint32(r1)
}
