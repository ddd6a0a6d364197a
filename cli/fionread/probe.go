package main

import (
	"net"
	"time"

	"github.com/sagernet/fionread"
	E "github.com/sagernet/fionread/common/exceptions"
	"github.com/sagernet/fionread/common/log"

	"github.com/spf13/cobra"
)

var (
	probePayload string
	probeWait    time.Duration
	probeCount   int
)

func newProbeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "probe address",
		Short: "Dial address and report pending bytes without reading them",
		Args:  cobra.ExactArgs(1),
		Run:   runProbe,
	}
	command.Flags().StringVarP(&probePayload, "send", "s", "", "payload to write after connecting")
	command.Flags().DurationVarP(&probeWait, "wait", "w", 100*time.Millisecond, "delay before the first query")
	command.Flags().IntVarP(&probeCount, "count", "c", 1, "number of queries")
	return command
}

func runProbe(cmd *cobra.Command, args []string) {
	logger := log.NewLogger("probe")
	dialer := net.Dialer{Timeout: 5 * time.Second}
	conn, err := dialer.DialContext(cmd.Context(), networkName, args[0])
	if err != nil {
		logger.Fatal(E.Cause(err, "dial ", args[0]))
	}
	defer conn.Close()
	logger.Debug("connected to ", conn.RemoteAddr())
	if probePayload != "" {
		_, err = conn.Write([]byte(probePayload))
		if err != nil {
			logger.Fatal(E.Cause(err, "write payload"))
		}
	}
	time.Sleep(probeWait)
	for i := 0; i < probeCount; i++ {
		if i > 0 {
			time.Sleep(queryInterval)
		}
		pending, err := fionread.AvailableConn(conn)
		if err != nil {
			logger.Fatal(E.Cause(err, "query pending bytes"))
		}
		logger.WithField("pending", pending).Info("available")
	}
}
