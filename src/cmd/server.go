package cmd

import (
	"github.com/warp-contracts/txinfo/src/gateway"
	monitor_gateway "github.com/warp-contracts/txinfo/src/utils/monitoring/gateway"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(serverCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "REST API proxying the Arweave transaction endpoints",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		client, err := newClient()
		if err != nil {
			return
		}

		monitor := monitor_gateway.NewMonitor(conf)
		server := gateway.NewServer(conf, client, monitor)

		err = server.Start()
		if err != nil {
			return
		}

		select {
		case <-server.CtxRunning.Done():
		case <-ctx.Done():
		}

		server.StopWait()

		return
	},
}
