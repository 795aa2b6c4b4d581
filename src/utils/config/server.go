package config

import (
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	// Maximum time for handling a single request
	RequestTimeout time.Duration

	// Maximum accepted image upload size in bytes
	MaxImageSize int64

	// Accepted image MIME types
	ImageMimeTypes []string
}

func setServerDefaults() {
	viper.SetDefault("Server.RequestTimeout", "60s")
	viper.SetDefault("Server.MaxImageSize", "31457280") // 30MiB
	viper.SetDefault("Server.ImageMimeTypes", []string{"image/png"})
}
