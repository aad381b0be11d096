// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRequestTimeout    = 15 * time.Second
	defaultTokenPropertyName = "accessToken"
	defaultTokenBackend      = "file"
	fallbackTokenBackend     = "memory"
	defaultLogLevel          = "info"

	tokenDirName  = "go-rest-resource"
	tokenFileName = "tokens.json"
)

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// defaultTokenFilePath returns the per-user token file, or "" when the user
// configuration directory is unknown.
func defaultTokenFilePath() string {
	dir, err := userConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, tokenDirName, tokenFileName)
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL relative templates are resolved against.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientResource holds the defaults of a resource client.
type ClientResource struct {
	// URL is the default URL template.
	URL string
	// Auth enables the x-access-token header.
	Auth bool
	// TokenPropertyName is the token store key holding the access token.
	TokenPropertyName string
	// Headers are merged into the default JSON headers.
	Headers map[string]string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Token selects the token store.
	Token TokenStorage
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Resource contains resource client defaults.
	Resource ClientResource
	// Storage contains client storage settings.
	Storage ClientStorage
	// Log contains logger settings.
	Log Log
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the result.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Resource: ClientResource{
			URL:               cfg.Resource.URL,
			Auth:              cfg.Resource.Auth,
			TokenPropertyName: cfg.Resource.TokenPropertyName,
			Headers:           cfg.Resource.Headers,
		},
		Storage: ClientStorage{Token: cfg.Storage.Token},
		Log:     cfg.Log,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Resource.TokenPropertyName == "" {
		clientCfg.Resource.TokenPropertyName = defaultTokenPropertyName
	}
	// tokens outlive the process unless no per-user location exists
	token := &clientCfg.Storage.Token
	if token.Backend == "" || token.Backend == defaultTokenBackend {
		if token.FilePath == "" {
			token.FilePath = defaultTokenFilePath()
		}
		if token.Backend == "" {
			token.Backend = defaultTokenBackend
			if token.FilePath == "" {
				token.Backend = fallbackTokenBackend
			}
		}
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = defaultLogLevel
	}

	return clientCfg
}
