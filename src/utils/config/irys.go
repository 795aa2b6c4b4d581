package config

import (
	"time"

	"github.com/spf13/viper"
)

type Irys struct {
	// Bundling node used for devnet uploads
	DevnetURL string

	// Bundling node used for mainnet uploads
	MainnetURL string

	// Gateway serving uploaded content
	GatewayURL string

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

	// Time in which max num of requests is enforced
	LimiterInterval time.Duration

	// Max num requests per interval
	LimiterBurstSize int
}

func setIrysDefaults() {
	viper.SetDefault("Irys.DevnetURL", "https://devnet.irys.xyz")
	viper.SetDefault("Irys.MainnetURL", "https://node1.irys.xyz")
	viper.SetDefault("Irys.GatewayURL", "https://gateway.irys.xyz")
	viper.SetDefault("Irys.RequestTimeout", "30s")
	viper.SetDefault("Irys.DialerTimeout", "30s")
	viper.SetDefault("Irys.DialerKeepAlive", "15s")
	viper.SetDefault("Irys.IdleConnTimeout", "31s")
	viper.SetDefault("Irys.TLSHandshakeTimeout", "10s")
	viper.SetDefault("Irys.LimiterInterval", "500ms")
	viper.SetDefault("Irys.LimiterBurstSize", "7")
}
