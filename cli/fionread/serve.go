package main

import (
	"errors"
	"io"
	"net"
	"os"
	"time"

	"github.com/sagernet/fionread"
	"github.com/sagernet/fionread/common/control"
	E "github.com/sagernet/fionread/common/exceptions"
	"github.com/sagernet/fionread/common/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve address",
		Short: "Accept connections and drain them by pending byte count",
		Args:  cobra.ExactArgs(1),
		Run:   runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) {
	logger := log.NewLogger("serve")
	listenConfig := net.ListenConfig{
		Control: control.ReuseAddr(),
	}
	listener, err := listenConfig.Listen(cmd.Context(), networkName, args[0])
	if err != nil {
		logger.Fatal(E.Cause(err, "listen ", args[0]))
	}
	defer listener.Close()
	logger.Info("listening on ", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Fatal(E.Cause(err, "accept"))
		}
		go func() {
			connLogger := logger.WithField("remote", conn.RemoteAddr().String())
			err := drain(conn, connLogger, queryInterval)
			if err != nil {
				connLogger.Error(err)
			} else {
				connLogger.Info("connection closed")
			}
		}()
	}
}

// drain reads exactly what the kernel reports as pending. When nothing is
// pending it waits up to interval for the next byte so EOF is noticed.
func drain(conn net.Conn, logger logrus.FieldLogger, interval time.Duration) error {
	defer conn.Close()
	var first []byte
	for {
		pending, err := fionread.AvailableConn(conn)
		if err != nil {
			return E.Cause(err, "query pending bytes")
		}
		if pending > 0 {
			data := make([]byte, pending)
			_, err = io.ReadFull(conn, data)
			if err != nil {
				return E.Cause(err, "read pending bytes")
			}
			data = append(first, data...)
			first = nil
			logger.WithField("pending", len(data)).Infof("received %q", data)
			continue
		}
		if first != nil {
			logger.WithField("pending", len(first)).Infof("received %q", first)
			first = nil
		}
		err = conn.SetReadDeadline(time.Now().Add(interval))
		if err != nil {
			return err
		}
		var buffer [1]byte
		n, err := conn.Read(buffer[:])
		if n > 0 {
			first = buffer[:n]
		}
		switch {
		case errors.Is(err, io.EOF):
			if first != nil {
				logger.WithField("pending", len(first)).Infof("received %q", first)
			}
			return nil
		case errors.Is(err, os.ErrDeadlineExceeded):
		case err != nil:
			return E.Cause(err, "wait for data")
		}
		err = conn.SetReadDeadline(time.Time{})
		if err != nil {
			return err
		}
	}
}
