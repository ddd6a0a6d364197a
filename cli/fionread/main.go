package main

import (
	"context"
	"time"

	"github.com/sagernet/fionread/common/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel      string
	networkName   string
	queryInterval time.Duration
)

func main() {
	command := &cobra.Command{
		Use:   "fionread",
		Short: "Report bytes pending in the kernel receive buffer of a connection",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.SetLevel(logLevel)
		},
	}
	command.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level")
	command.PersistentFlags().StringVarP(&networkName, "network", "n", "tcp", "network: tcp, tcp4, tcp6 or unix")
	command.PersistentFlags().DurationVarP(&queryInterval, "interval", "i", time.Second, "interval between queries")
	command.AddCommand(newProbeCommand(), newServeCommand())
	if err := command.ExecuteContext(context.Background()); err != nil {
		logrus.Fatal(err)
	}
}
