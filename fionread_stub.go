//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package fionread

import "syscall"

func available(syscall.Conn) (int, error) {
	return 0, ErrNotImplemented
}
