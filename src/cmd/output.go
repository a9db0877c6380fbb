package cmd

import (
	"encoding/json"
	"os"

	"github.com/warp-contracts/txinfo/src/utils/arweave"
)

func newClient() (*arweave.Client, error) {
	return arweave.NewClient(&conf.Arweave, nil)
}

// Results go to stdout, logs stay separate
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
