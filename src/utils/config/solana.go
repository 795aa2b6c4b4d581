package config

import (
	"time"

	"github.com/spf13/viper"
)

type Solana struct {
	// RPC endpoint for the test network
	DevnetRPCURL string

	// RPC endpoint for the production network
	MainnetRPCURL string

	// Fee payer secret key, JSON array of 64 bytes.
	// Loaded once at startup, never logged.
	WalletPrivateKey string

	// Time limit for a single RPC call
	RequestTimeout time.Duration
}

func setSolanaDefaults() {
	viper.SetDefault("Solana.DevnetRPCURL", "https://api.devnet.solana.com")
	viper.SetDefault("Solana.MainnetRPCURL", "https://api.mainnet-beta.solana.com")
	viper.SetDefault("Solana.RequestTimeout", "30s")
}
