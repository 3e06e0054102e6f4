package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

var ErrParameterNotSet = errors.New("config parameter is not set")

// Config holds the walletd runtime settings. Flags provide the defaults
// and the matching environment variables override them.
type Config struct {
	LogLevel              string
	RunAddress            string
	DatabaseURI           string
	ProcessorAddress      string
	ProcessorPollInterval time.Duration
	JWTSecret             string
	JWTTTL                time.Duration
}

// envOverride returns the environment value for key when it is set,
// otherwise the flag value.
func envOverride(key, flagValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return flagValue
}

func NewConfig() (*Config, error) {
	logLevel := flag.String("log-level", "info", "log level")
	runAddress := flag.String("a", ":8080", "listen address")
	databaseURI := flag.String("d", "", "database connection string")
	processorAddress := flag.String("p", "", "payment processor address")
	pollInterval := flag.String(
		"poll-interval",
		"5s",
		"payment processor poll interval",
	)
	jwtSecret := flag.String("jwt-secret", "", "jwt token signing secret")
	jwtTTL := flag.String("jwt-ttl", "24h", "jwt token ttl")

	flag.Parse()

	cfg := &Config{
		LogLevel:         envOverride("LOG_LEVEL", *logLevel),
		RunAddress:       envOverride("RUN_ADDRESS", *runAddress),
		DatabaseURI:      envOverride("DATABASE_URI", *databaseURI),
		ProcessorAddress: envOverride("PROCESSOR_ADDRESS", *processorAddress),
		JWTSecret:        envOverride("JWT_SECRET", *jwtSecret),
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI: %w", ErrParameterNotSet)
	}
	if cfg.ProcessorAddress == "" {
		return nil, fmt.Errorf("processor address: %w", ErrParameterNotSet)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret: %w", ErrParameterNotSet)
	}

	var err error

	cfg.ProcessorPollInterval, err = time.ParseDuration(
		envOverride("PROCESSOR_POLL_INTERVAL", *pollInterval),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	cfg.JWTTTL, err = time.ParseDuration(envOverride("JWT_TTL", *jwtTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	return cfg, nil
}

// String renders the effective config for the startup debug log. The JWT
// secret is redacted.
func (c *Config) String() string {
	redacted := *c
	if redacted.JWTSecret != "" {
		redacted.JWTSecret = "[redacted]"
	}

	b, err := json.MarshalIndent(&redacted, "", "  ")
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(b)
}
