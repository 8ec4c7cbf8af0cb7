// Package config loads the application settings from the environment.
//
// Every variable is prefixed with TXINSIGHT_, e.g. TXINSIGHT_SIMULATION_API_KEY.
// Variables may also be provided through .env files, which never override
// values already present in the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/txinsight/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "TXINSIGHT"

// Config is the complete application configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"txinsight" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Server     Server     `envconfig:"SERVER"`
	Snap       Snap       `envconfig:"SNAP"`
	Simulation Simulation `envconfig:"SIMULATION"`
	Redis      Redis      `envconfig:"REDIS"`
	Wallet     Wallet     `envconfig:"WALLET"`
}

// Server configures the snap JSON-RPC endpoint.
type Server struct {
	Address         string        `envconfig:"ADDRESS" default:"localhost:8080" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
}

// Snap identifies the snap the site installs and talks to.
type Snap struct {
	ID              string        `envconfig:"ID" default:"local:http://localhost:8080" validate:"required"`
	Version         string        `envconfig:"VERSION"`
	HostURL         string        `envconfig:"HOST_URL" default:"http://localhost:8545" validate:"required,url"`
	ErrorClearDelay time.Duration `envconfig:"ERROR_CLEAR_DELAY" default:"10s" validate:"gt=0"`
}

// Simulation configures the asset-change simulation API.
type Simulation struct {
	APIKey  string        `envconfig:"API_KEY" default:"alch-demo" validate:"required"`
	Chains  []string      `envconfig:"CHAINS" validate:"dive,hexqty"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	Retries int           `envconfig:"RETRIES" default:"0" validate:"gte=0"`
}

// Redis configures the optional simulation cache. The cache is disabled
// when Addr is empty.
type Redis struct {
	Addr     string        `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string        `envconfig:"USERNAME"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0" validate:"gte=0"`
	TTL      time.Duration `envconfig:"TTL" default:"30s" validate:"gt=0"`
}

// Wallet configures the wallet provider used by the site commands.
type Wallet struct {
	RPCURL        string        `envconfig:"RPC_URL" default:"http://localhost:8545" validate:"required,url"`
	EventsURL     string        `envconfig:"EVENTS_URL" validate:"omitempty,url"`
	PollInterval  time.Duration `envconfig:"POLL_INTERVAL" default:"2s" validate:"gt=0"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	ProbeAttempts uint          `envconfig:"PROBE_ATTEMPTS" default:"3" validate:"gte=1"`
}

// CacheEnabled reports whether a simulation cache is configured.
func (r Redis) CacheEnabled() bool {
	return r.Addr != ""
}

// Load reads the optional .env files, then the environment, and validates
// the result. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
