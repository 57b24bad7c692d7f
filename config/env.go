package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables holding the exchange credentials.
const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
)

// Credentials exchange API keys.
type Credentials struct {
	APIKey    string
	APISecret string
}

// LoadCredentials reads the API keys from the environment after loading the
// given .env files. Missing files are skipped, variables already set win.
func LoadCredentials(envFiles ...string) (Credentials, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return Credentials{}, errors.Wrapf(err, "failed to load %s", path)
		}
	}

	c := Credentials{
		APIKey:    os.Getenv(EnvAPIKey),
		APISecret: os.Getenv(EnvAPISecret),
	}
	if c.APIKey == "" || c.APISecret == "" {
		return Credentials{}, errors.Errorf("%s and %s environment variables must be set", EnvAPIKey, EnvAPISecret)
	}

	return c, nil
}
