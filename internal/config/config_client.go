package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings of the remote API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// RateLimit is the maximum number of requests per second.
	RateLimit float64
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the dashboard configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the remote API address, timeout and rate limit.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}

// ServerConfig is the development backend configuration.
type ServerConfig struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// RequestTimeout bounds request processing.
	RequestTimeout time.Duration
	// TokenSignKey signs issued access tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
	// Version is reported in logs on startup.
	Version string
}

// GetServerConfig builds and validates the development backend config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
