// Package config resolves the client's settings: the backend address and
// where the session token lives.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/retailops/storectl/pkg/session"
)

// DefaultServerURL is used when neither flag nor environment names one.
const DefaultServerURL = "http://localhost:8080"

// Config is the resolved client configuration.
type Config struct {
	ServerURL string
	TokenPath string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present. Recognized variables:
//
//	STORECTL_SERVER  backend base URL
//	STORECTL_TOKEN_FILE  session token path
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("storectl")
	v.AutomaticEnv()
	v.SetDefault("server", DefaultServerURL)

	tokenPath := v.GetString("token_file")
	if tokenPath == "" {
		p, err := session.DefaultTokenPath()
		if err != nil {
			return nil, fmt.Errorf("resolve token path: %w", err)
		}
		tokenPath = p
	}

	return &Config{
		ServerURL: v.GetString("server"),
		TokenPath: tokenPath,
	}, nil
}
