// Package config builds a client configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rdpitts/minfraud/types"
)

// Environment variables read by Load.
const (
	EnvLicenseKey     = "MINFRAUD_LICENSE_KEY"
	EnvRequestedType  = "MINFRAUD_REQUESTED_TYPE"
	EnvRegion         = "MINFRAUD_REGION"
	EnvTimeoutSeconds = "MINFRAUD_TIMEOUT_SECONDS"
	EnvLogLevel       = "MINFRAUD_LOG_LEVEL"
	EnvEnableMetrics  = "MINFRAUD_ENABLE_METRICS"
)

// Load reads configuration from environment variables.
// It loads .env file if present (for local development)
func Load() (*types.Config, error) {
	_ = godotenv.Load()
	return build(os.Getenv)
}

// LoadFile reads configuration from a dotenv file only.
func LoadFile(path string) (*types.Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, types.NewConfigurationError("cannot read " + path + ": " + err.Error())
	}
	return build(func(key string) string { return env[key] })
}

func build(getenv func(string) string) (*types.Config, error) {
	cfg := &types.Config{
		LicenseKey:    getenv(EnvLicenseKey),
		RequestedType: types.ServiceTier(getenv(EnvRequestedType)),
		Region:        getenv(EnvRegion),
		LogLevel:      getenv(EnvLogLevel),
	}

	if v := getenv(EnvTimeoutSeconds); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs < 0 {
			return nil, types.NewConfigurationError(EnvTimeoutSeconds + " must be a non-negative number of seconds")
		}
		cfg.DefaultTimeout = time.Duration(secs * float64(time.Second))
	}

	if v := getenv(EnvEnableMetrics); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, types.NewConfigurationError(EnvEnableMetrics + " must be a boolean")
		}
		cfg.EnableMetrics = on
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
