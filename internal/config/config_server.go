// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultTokenIssuer   = "mock-backend"
	defaultTokenDuration = time.Hour
)

// ServerConfig is the configuration of the mock backend assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Server contains listener, token and collection settings.
	Server Server
	// Log contains logger settings.
	Log Log
}

// GetServerConfig builds and validates the mock backend config view from the
// merged structured configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Server: cfg.Server,
		Log:    cfg.Log,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if serverCfg.Server.TokenIssuer == "" {
		serverCfg.Server.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.Server.TokenDuration == 0 {
		serverCfg.Server.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Log.Level == "" {
		serverCfg.Log.Level = defaultLogLevel
	}

	return serverCfg
}
