//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

package fionread

import (
	"syscall"

	"github.com/sagernet/fionread/common/control"
)

func available(conn syscall.Conn) (int, error) {
	var n int
	err := control.Conn(conn, func(fd uintptr) error {
		var err error
		n, err = fionread(fd)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
