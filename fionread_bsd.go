//go:build aix || darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package fionread

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// _IOR('f', 127, int) from sys/filio.h.
const fionreadRequest = 0x4004667f

func fionread(fd uintptr) (int, error) {
	value, err := unix.IoctlGetInt(int(fd), fionreadRequest)
	if err != nil {
		return 0, os.NewSyscallError("ioctl", err)
	}
	return int(*(*int32)(unsafe.Pointer(&value))), nil
}
