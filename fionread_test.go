//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

package fionread

import (
	"crypto/tls"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func tcpPipe(t *testing.T) (*net.TCPConn, *net.TCPConn) {
	listener, err := net.ListenTCP("tcp", &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer listener.Close()
	type acceptResult struct {
		conn *net.TCPConn
		err  error
	}
	accepted := make(chan acceptResult, 1)
	go func() {
		conn, acceptErr := listener.AcceptTCP()
		accepted <- acceptResult{conn, acceptErr}
	}()
	clientConn, err := net.DialTCP("tcp", nil, listener.Addr().(*net.TCPAddr))
	require.NoError(t, err)
	result := <-accepted
	require.NoError(t, result.err)
	t.Cleanup(func() {
		clientConn.Close()
		result.conn.Close()
	})
	return result.conn, clientConn
}

func waitAvailable[T Handle](t *testing.T, handle T, expected int) {
	t.Helper()
	require.Eventually(t, func() bool {
		n, err := Available(handle)
		return err == nil && n == expected
	}, 5*time.Second, 5*time.Millisecond)
}

func TestAvailableTCP(t *testing.T) {
	t.Parallel()
	serverConn, clientConn := tcpPipe(t)

	n, err := Available(clientConn)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = serverConn.Write([]byte("hello"))
	require.NoError(t, err)
	waitAvailable(t, clientConn, 5)

	n, err = Available(clientConn)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	n, err = Available(clientConn)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestAvailableAfterRead(t *testing.T) {
	t.Parallel()
	serverConn, clientConn := tcpPipe(t)
	_, err := serverConn.Write([]byte("hello world"))
	require.NoError(t, err)
	waitAvailable(t, clientConn, 11)

	buffer := make([]byte, 6)
	_, err = clientConn.Read(buffer)
	require.NoError(t, err)
	require.Equal(t, "hello ", string(buffer))

	n, err := Available(clientConn)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestAvailableClosed(t *testing.T) {
	t.Parallel()
	_, clientConn := tcpPipe(t)
	require.NoError(t, clientConn.Close())

	n, err := Available(clientConn)
	require.ErrorIs(t, err, net.ErrClosed)
	require.Zero(t, n)

	readable, err := Readable(clientConn)
	require.Error(t, err)
	require.False(t, readable)
}

func TestAvailableConcurrent(t *testing.T) {
	t.Parallel()
	serverConn, clientConn := tcpPipe(t)
	_, err := serverConn.Write([]byte("hello"))
	require.NoError(t, err)
	waitAvailable(t, clientConn, 5)

	var (
		wg      sync.WaitGroup
		results = make(chan int, 8*64)
		errs    = make(chan error, 8*64)
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				n, queryErr := Available(clientConn)
				if queryErr != nil {
					errs <- queryErr
					continue
				}
				results <- n
			}
		}()
	}
	wg.Wait()
	close(results)
	close(errs)
	for queryErr := range errs {
		require.NoError(t, queryErr)
	}
	for n := range results {
		require.Equal(t, 5, n)
	}
}

func TestReadable(t *testing.T) {
	t.Parallel()
	serverConn, clientConn := tcpPipe(t)

	readable, err := Readable(clientConn)
	require.NoError(t, err)
	require.False(t, readable)

	_, err = serverConn.Write([]byte{0})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		readable, err = Readable(clientConn)
		return err == nil && readable
	}, 5*time.Second, 5*time.Millisecond)
}

type upstreamConn struct {
	net.Conn
}

func (c *upstreamConn) Upstream() any {
	return c.Conn
}

type loopConn struct {
	net.Conn
}

func (c *loopConn) Upstream() any {
	return c
}

func TestAvailableConn(t *testing.T) {
	t.Parallel()
	serverConn, clientConn := tcpPipe(t)
	_, err := serverConn.Write([]byte("hello"))
	require.NoError(t, err)
	waitAvailable(t, clientConn, 5)

	var conn net.Conn = clientConn
	n, err := AvailableConn(conn)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = AvailableConn(&upstreamConn{tls.Client(conn, &tls.Config{})})
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = AvailableConn(&upstreamConn{})
	require.ErrorIs(t, err, ErrUnsupportedHandle)

	pipeConn, _ := net.Pipe()
	defer pipeConn.Close()
	_, err = AvailableConn(pipeConn)
	require.ErrorIs(t, err, ErrUnsupportedHandle)

	_, err = AvailableConn(&loopConn{})
	require.ErrorIs(t, err, ErrUnsupportedHandle)

	_, err = AvailableConn(nil)
	require.ErrorIs(t, err, ErrUnsupportedHandle)
}

func TestAvailableNilHandle(t *testing.T) {
	t.Parallel()
	n, err := Available((*net.TCPConn)(nil))
	require.ErrorIs(t, err, os.ErrInvalid)
	require.Zero(t, n)

	n, err = Available((*net.UDPConn)(nil))
	require.ErrorIs(t, err, os.ErrInvalid)
	require.Zero(t, n)

	n, err = Available((*os.File)(nil))
	require.ErrorIs(t, err, os.ErrInvalid)
	require.Zero(t, n)

	readable, err := Readable((*net.UnixConn)(nil))
	require.ErrorIs(t, err, os.ErrInvalid)
	require.False(t, readable)

	for _, conn := range []any{
		(*net.TCPConn)(nil),
		(*net.IPConn)(nil),
		(*tls.Conn)(nil),
		(*upstreamConn)(nil),
		&upstreamConn{(*net.TCPConn)(nil)},
	} {
		n, err = AvailableConn(conn)
		require.ErrorIs(t, err, os.ErrInvalid, "%T", conn)
		require.Zero(t, n)
	}
}
