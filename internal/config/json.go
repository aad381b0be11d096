// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Resource struct {
		URL               string            `json:"url"`
		Auth              bool              `json:"auth"`
		TokenPropertyName string            `json:"token_property_name"`
		Headers           map[string]string `json:"headers,omitempty"`
	} `json:"resource,omitempty"`

	Storage struct {
		Token struct {
			Backend         string   `json:"backend"`
			DSN             string   `json:"dsn"`
			FilePath        string   `json:"file_path"`
			RedisAddress    string   `json:"redis_address"`
			RedisPassword   string   `json:"redis_password"`
			RedisDB         int      `json:"redis_db"`
			KeyPrefix       string   `json:"key_prefix"`
			TTL             Duration `json:"ttl"`
			KeyringService  string   `json:"keyring_service"`
			KeyringBackend  string   `json:"keyring_backend"`
			KeyringDir      string   `json:"keyring_dir"`
			KeyringPassword string   `json:"keyring_password"`
		} `json:"token,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress          string            `json:"http_address"`
		RequestTimeout       Duration          `json:"request_timeout"`
		TokenSignKey         string            `json:"token_sign_key"`
		TokenIssuer          string            `json:"token_issuer"`
		TokenDuration        Duration          `json:"token_duration"`
		Users                map[string]string `json:"users,omitempty"`
		ProtectedCollections []string          `json:"protected_collections,omitempty"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	token := jsonCfg.Storage.Token
	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Resource: Resource{
			URL:               jsonCfg.Resource.URL,
			Auth:              jsonCfg.Resource.Auth,
			TokenPropertyName: jsonCfg.Resource.TokenPropertyName,
			Headers:           jsonCfg.Resource.Headers,
		},
		Storage: Storage{
			Token: TokenStorage{
				Backend:         token.Backend,
				DSN:             token.DSN,
				FilePath:        token.FilePath,
				RedisAddress:    token.RedisAddress,
				RedisPassword:   token.RedisPassword,
				RedisDB:         token.RedisDB,
				KeyPrefix:       token.KeyPrefix,
				TTL:             time.Duration(token.TTL),
				KeyringService:  token.KeyringService,
				KeyringBackend:  token.KeyringBackend,
				KeyringDir:      token.KeyringDir,
				KeyringPassword: token.KeyringPassword,
			},
		},
		Server: Server{
			HTTPAddress:          jsonCfg.Server.HTTPAddress,
			RequestTimeout:       time.Duration(jsonCfg.Server.RequestTimeout),
			TokenSignKey:         jsonCfg.Server.TokenSignKey,
			TokenIssuer:          jsonCfg.Server.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.Server.TokenDuration),
			Users:                jsonCfg.Server.Users,
			ProtectedCollections: jsonCfg.Server.ProtectedCollections,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
