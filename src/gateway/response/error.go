package response

type Error struct {
	Error string `json:"error"`

	// Status reported by the Arweave gateway, if any
	Status int `json:"status,omitempty"`
}
