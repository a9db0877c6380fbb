package config

import (
	"time"

	"github.com/spf13/viper"
)

type Arweave struct {
	// Gateway every request is sent to
	NodeUrl string

	// Value of the User-Agent header, version gets appended
	UserAgent string

	// Time limit for requests. The timeout includes connection time, any
	// redirects, and reading the response body
	RequestTimeout time.Duration

	// Maximum amount of time a dial will wait for a connect to complete.
	DialerTimeout time.Duration

	// Interval between keep-alive probes for an active network connection.
	DialerKeepAlive time.Duration

	// Maximum amount of time an idle (keep-alive) connection will remain idle before closing itself.
	IdleConnTimeout time.Duration

	// Maximum amount of time waiting to wait for a TLS handshake
	TLSHandshakeTimeout time.Duration
}

func setArweaveDefaults() {
	viper.SetDefault("Arweave.NodeUrl", "https://arweave.net")
	viper.SetDefault("Arweave.UserAgent", "warp.cc/txinfo")
	viper.SetDefault("Arweave.RequestTimeout", "30s")
	viper.SetDefault("Arweave.DialerTimeout", "30s")
	viper.SetDefault("Arweave.DialerKeepAlive", "15s")
	viper.SetDefault("Arweave.IdleConnTimeout", "31s")
	viper.SetDefault("Arweave.TLSHandshakeTimeout", "10s")
}
