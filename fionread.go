// Package fionread reports how many bytes can be read from a socket or file
// without blocking.
//
// It calls the FIONREAD ioctl on Unix and ioctlsocket(FIONREAD) on Windows.
// On every other platform the query fails with ErrNotImplemented.
package fionread

import (
	"errors"
	"fmt"
	"net"
	"os"
	"reflect"
	"runtime"
	"syscall"

	E "github.com/sagernet/fionread/common/exceptions"
)

var (
	ErrNotImplemented    = E.Extend(errors.ErrUnsupported, "fionread not implemented on ", runtime.GOOS)
	ErrUnsupportedHandle = E.New("fionread: unsupported handle type")
)

// Handle is the closed set of standard library types that own a kernel
// handle. It can only be used as a type constraint, so callers cannot
// satisfy it with their own types.
type Handle interface {
	*net.TCPConn | *net.UDPConn | *net.UnixConn | *net.IPConn | *os.File
	SyscallConn() (syscall.RawConn, error)
}

// Available returns the number of bytes that the next read on handle can
// return without blocking. The handle is borrowed for the duration of the
// call and is never closed.
//
// Zero is a valid result. A nil handle fails with os.ErrInvalid, a closed
// connection with net.ErrClosed, and a failing system call is reported as an
// *os.SyscallError wrapping the platform errno.
func Available[T Handle](handle T) (int, error) {
	var zero T
	if handle == zero {
		return 0, os.ErrInvalid
	}
	return available(handle)
}

// Readable reports whether at least one byte can be read from handle
// without blocking.
func Readable[T Handle](handle T) (bool, error) {
	n, err := Available(handle)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type withUpstream interface {
	Upstream() any
}

type withNetConn interface {
	NetConn() net.Conn
}

const maxUnwrapDepth = 32

// AvailableConn is Available for callers holding an interface value such as
// net.Conn. Wrappers exposing NetConn() (like *tls.Conn) or Upstream() are
// unwrapped until one of the Handle types is reached; anything else results
// in ErrUnsupportedHandle.
//
// Bytes buffered in user space by a wrapper are not counted.
func AvailableConn(conn any) (int, error) {
	for i := 0; i < maxUnwrapDepth; i++ {
		switch handle := conn.(type) {
		case *net.TCPConn:
			return Available(handle)
		case *net.UDPConn:
			return Available(handle)
		case *net.UnixConn:
			return Available(handle)
		case *net.IPConn:
			return Available(handle)
		case *os.File:
			return Available(handle)
		case withNetConn:
			if isNilPointer(handle) {
				return 0, os.ErrInvalid
			}
			conn = handle.NetConn()
		case withUpstream:
			if isNilPointer(handle) {
				return 0, os.ErrInvalid
			}
			conn = handle.Upstream()
		default:
			return 0, E.Extend(ErrUnsupportedHandle, fmt.Sprintf("%T", conn))
		}
	}
	return 0, E.Extend(ErrUnsupportedHandle, "too many wrappers")
}

func isNilPointer(value any) bool {
	reflectValue := reflect.ValueOf(value)
	return reflectValue.Kind() == reflect.Pointer && reflectValue.IsNil()
}
