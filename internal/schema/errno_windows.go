//go:build windows

package schema

import "syscall"

func errnoMessage(e Errno) string {
	return syscall.Errno(e).Error()
}
