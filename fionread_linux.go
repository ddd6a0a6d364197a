package fionread

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// TIOCINQ is FIONREAD under its per-arch Linux name.
func fionread(fd uintptr) (int, error) {
	value, err := unix.IoctlGetInt(int(fd), unix.TIOCINQ)
	if err != nil {
		return 0, os.NewSyscallError("ioctl", err)
	}
	// The kernel fills a C int at the start of the output word.
	return int(*(*int32)(unsafe.Pointer(&value))), nil
}
