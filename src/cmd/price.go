package cmd

import (
	"github.com/warp-contracts/txinfo/src/gateway/response"
	"github.com/warp-contracts/txinfo/src/utils/arweave"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(priceCmd)
}

var priceCmd = &cobra.Command{
	Use:   "price <byte-size>",
	Short: "Fee for storing the given number of bytes, in winston and AR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		client, err := newClient()
		if err != nil {
			return
		}

		winston, err := client.GetPrice(ctx, args[0])
		if err != nil {
			return
		}

		ar, err := arweave.WinstonToAR(winston)
		if err != nil {
			return
		}

		return printJSON(&response.Price{
			Winston: winston,
			AR:      ar.String(),
		})
	},
}
