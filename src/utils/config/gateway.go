package config

import (
	"time"

	"github.com/spf13/viper"
)

type Gateway struct {
	// REST API address
	RESTListenAddress string

	// Max time a single REST request may take, upstream call included
	ServerRequestTimeout time.Duration

	// Time in which max num of requests is enforced
	LimiterInterval time.Duration

	// Max num requests forwarded to the Arweave gateway per interval
	LimiterBurstSize int

	// Number of minutes kept for computing average request rates
	MonitorHistorySize int
}

func setGatewayDefaults() {
	viper.SetDefault("Gateway.RESTListenAddress", "0.0.0.0:4000")
	viper.SetDefault("Gateway.ServerRequestTimeout", "30s")
	viper.SetDefault("Gateway.LimiterInterval", "100ms")
	viper.SetDefault("Gateway.LimiterBurstSize", "10")
	viper.SetDefault("Gateway.MonitorHistorySize", "10")
}
