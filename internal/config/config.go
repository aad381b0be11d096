// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from an optional
// JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the outbound HTTP transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Resource holds the resource client defaults.
	Resource Resource `envPrefix:"RESOURCE_"`

	// Storage holds the token store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the mock backend settings.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings shared by all binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL relative templates are resolved against
	// (e.g. "http://localhost:8080" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single round trip (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Resource holds the resource configuration defaults.
type Resource struct {
	// URL is the default URL template, e.g. "v3/posts/:id".
	// Env: RESOURCE_URL
	URL string `env:"URL"`

	// Auth enables the x-access-token header when a token is stored.
	// Env: RESOURCE_AUTH
	Auth bool `env:"AUTH"`

	// TokenPropertyName is the token store key holding the access token.
	// Env: RESOURCE_TOKEN_PROPERTY_NAME
	TokenPropertyName string `env:"TOKEN_PROPERTY_NAME"`

	// Headers are extra default headers ("k1:v1,k2:v2").
	// Env: RESOURCE_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Storage groups storage backend settings.
type Storage struct {
	Token TokenStorage `envPrefix:"TOKEN_"`
}

// TokenStorage selects and configures the token store backend.
type TokenStorage struct {
	// Backend is one of memory, file, sqlite, postgres, keyring or redis.
	// Env: STORAGE_TOKEN_BACKEND
	Backend string `env:"BACKEND" validate:"oneof=memory file sqlite postgres keyring redis"`

	// DSN is the database connection string for sqlite and postgres.
	// Env: STORAGE_TOKEN_DSN
	DSN string `env:"DSN" validate:"required_if=Backend sqlite,required_if=Backend postgres"`

	// FilePath is the JSON file used by the file backend.
	// Env: STORAGE_TOKEN_FILE_PATH
	FilePath string `env:"FILE_PATH" validate:"required_if=Backend file"`

	// RedisAddress is the host:port of the redis server.
	// Env: STORAGE_TOKEN_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS" validate:"required_if=Backend redis"`

	// RedisPassword authenticates against redis.
	// Env: STORAGE_TOKEN_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the redis logical database.
	// Env: STORAGE_TOKEN_REDIS_DB
	RedisDB int `env:"REDIS_DB" validate:"gte=0"`

	// KeyPrefix namespaces keys in shared stores (redis).
	// Env: STORAGE_TOKEN_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`

	// TTL expires stored tokens in backends that support it; zero keeps them.
	// Env: STORAGE_TOKEN_TTL
	TTL time.Duration `env:"TTL" validate:"gte=0"`

	// KeyringService is the service name items are stored under.
	// Env: STORAGE_TOKEN_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`

	// KeyringBackend is auto, file or system.
	// Env: STORAGE_TOKEN_KEYRING_BACKEND
	KeyringBackend string `env:"KEYRING_BACKEND" validate:"omitempty,oneof=auto file system"`

	// KeyringDir is the directory of the encrypted file keyring.
	// Env: STORAGE_TOKEN_KEYRING_DIR
	KeyringDir string `env:"KEYRING_DIR"`

	// KeyringPassword unlocks the encrypted file keyring.
	// Env: STORAGE_TOKEN_KEYRING_PASSWORD
	KeyringPassword string `env:"KEYRING_PASSWORD"`
}

// Server holds mock backend settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// TokenSignKey signs and verifies issued access tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" validate:"required"`

	// TokenDuration is the lifetime of issued tokens (e.g. "1h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gt=0"`

	// Users maps logins to passwords accepted by POST /auth/login
	// ("alice:secret,bob:hunter2").
	// Env: SERVER_USERS
	Users map[string]string `env:"USERS"`

	// ProtectedCollections require a valid x-access-token header.
	// Env: SERVER_PROTECTED_COLLECTIONS
	ProtectedCollections []string `env:"PROTECTED_COLLECTIONS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// File is the log file of the CLI; empty means a "logs" file next to
	// the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Later sources override non-zero fields of earlier ones:
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags (flags may be nil)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
