package response

type Price struct {
	// Fee in winston, arbitrary precision
	Winston string `json:"winston"`

	// Same fee in AR
	AR string `json:"ar"`
}
