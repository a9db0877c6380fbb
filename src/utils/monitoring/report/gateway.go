package report

import (
	"go.uber.org/atomic"
)

type GatewayErrors struct {
	Transport   atomic.Uint64 `json:"transport"`
	Protocol    atomic.Uint64 `json:"protocol"`
	Malformed   atomic.Uint64 `json:"malformed"`
	RateLimited atomic.Uint64 `json:"rate_limited"`
	BadRequest  atomic.Uint64 `json:"bad_request"`
}

type GatewayState struct {
	PriceRequests       atomic.Uint64 `json:"price_requests"`
	TransactionRequests atomic.Uint64 `json:"transaction_requests"`
	StatusRequests      atomic.Uint64 `json:"status_requests"`
	Successes           atomic.Uint64 `json:"successes"`

	AverageRequestsPerMinute atomic.Float64 `json:"average_requests_per_minute"`
}

type GatewayReport struct {
	State  GatewayState  `json:"state"`
	Errors GatewayErrors `json:"errors"`
}

func (self *GatewayReport) Requests() uint64 {
	return self.State.PriceRequests.Load() +
		self.State.TransactionRequests.Load() +
		self.State.StatusRequests.Load()
}
