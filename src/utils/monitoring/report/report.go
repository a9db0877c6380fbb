package report

type Report struct {
	Run     *RunReport     `json:"run,omitempty"`
	Gateway *GatewayReport `json:"gateway,omitempty"`
}
