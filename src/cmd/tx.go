package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(txCmd)
}

var txCmd = &cobra.Command{
	Use:   "tx <id>",
	Short: "Fetches transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		client, err := newClient()
		if err != nil {
			return
		}

		tx, err := client.GetTransaction(ctx, args[0])
		if err != nil {
			return
		}

		return printJSON(tx)
	},
}
