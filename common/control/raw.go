package control

import (
	"syscall"

	E "github.com/sagernet/fionread/common/exceptions"
)

// Conn runs block against the descriptor of conn. The descriptor is borrowed
// and only valid until block returns.
func Conn(conn syscall.Conn, block func(fd uintptr) error) error {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	return Raw(rawConn, block)
}

func Raw(rawConn syscall.RawConn, block func(fd uintptr) error) error {
	var innerErr error
	err := rawConn.Control(func(fd uintptr) {
		innerErr = block(fd)
	})
	return E.Errors(innerErr, err)
}
