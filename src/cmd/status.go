package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Fetches confirmation status of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		client, err := newClient()
		if err != nil {
			return
		}

		status, err := client.GetStatus(ctx, args[0])
		if err != nil {
			return
		}

		return printJSON(status)
	},
}
