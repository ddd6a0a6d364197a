package fionread

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

const socket_error = uintptr(^uint32(0))

//sys	ioctlsocket(s windows.Handle, cmd uint32, argp *uint32) (err error) [failretval==socket_error] = ws2_32.ioctlsocket
