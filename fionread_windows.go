package fionread

import (
	"os"

	"golang.org/x/sys/windows"
)

// _IOR('f', 127, u_long) from winsock2.h.
const fionreadRequest = 0x4004667f

func fionread(fd uintptr) (int, error) {
	var value uint32
	err := ioctlsocket(windows.Handle(fd), fionreadRequest, &value)
	if err != nil {
		return 0, os.NewSyscallError("ioctlsocket", err)
	}
	return int(value), nil
}
