package arweave

// Tag attached to a transaction. Names and values stay in the gateway's encoding.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (self *Tag) UnmarshalJSON(data []byte) error {
	type tag Tag
	return unmarshalRequired(data, (*tag)(self), "name", "value")
}

// https://docs.arweave.org/developers/arweave-node-server/http-api#get-transaction-by-id
type TransactionData struct {
	Format    int          `json:"format"`
	ID        string       `json:"id"`
	LastTx    string       `json:"last_tx"`
	Owner     string       `json:"owner"`
	Tags      []Tag        `json:"tags"`
	Target    string       `json:"target"`
	Quantity  string       `json:"quantity"`
	Data      Base64String `json:"data"`
	Reward    string       `json:"reward"`
	Signature string       `json:"signature"`
	DataSize  string       `json:"data_size"`
	DataRoot  string       `json:"data_root"`
}

func (self *TransactionData) requiredFields() []string {
	return []string{
		"format", "id", "last_tx", "owner", "tags", "target",
		"quantity", "data", "reward", "signature", "data_size", "data_root",
	}
}

// https://docs.arweave.org/developers/arweave-node-server/http-api#get-transaction-status
type TransactionStatusResponse struct {
	Status    int                       `json:"status"`
	Confirmed *TransactionConfirmedData `json:"confirmed"`
}

func (self *TransactionStatusResponse) requiredFields() []string {
	return []string{"status"}
}

// Present only after the transaction got mined
type TransactionConfirmedData struct {
	BlockIndepHash        string `json:"block_indep_hash"`
	BlockHeight           int64  `json:"block_height"`
	NumberOfConfirmations int64  `json:"number_of_confirmations"`
}

// Null "confirmed" never reaches here, it leaves the pointer nil
func (self *TransactionConfirmedData) UnmarshalJSON(data []byte) error {
	type confirmed TransactionConfirmedData
	return unmarshalRequired(data, (*confirmed)(self), "block_indep_hash", "block_height", "number_of_confirmations")
}

func (self *TransactionStatusResponse) IsConfirmed() bool {
	return self.Confirmed != nil
}
