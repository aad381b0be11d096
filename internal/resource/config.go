// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"github.com/MKhiriev/go-rest-resource/models"
)

const (
	// DefaultTokenPropertyName is the token store key read by Authenticate
	// when the configuration does not name one.
	DefaultTokenPropertyName = "accessToken"

	// AccessTokenHeader carries the stored token on authenticated requests.
	AccessTokenHeader = "x-access-token"
)

// Config is the resource configuration shared by all calls of one [Client].
type Config struct {
	// RequestOptions holds the default headers sent with every call.
	RequestOptions models.RequestOptions

	// Auth enables attaching the stored token in [Client.Authenticate].
	Auth bool

	// TokenPropertyName is the token store key the token is read from.
	TokenPropertyName string
}

// DefaultConfig returns a fresh configuration with JSON content negotiation
// headers, authentication disabled and the default token key.
func DefaultConfig() Config {
	return Config{
		RequestOptions: models.NewRequestOptions(map[string]string{
			"content-type": "application/json",
			"accept":       "application/json",
		}),
		Auth:              false,
		TokenPropertyName: DefaultTokenPropertyName,
	}
}

// Clone returns a copy whose header bag can be mutated independently.
func (c Config) Clone() Config {
	c.RequestOptions = c.RequestOptions.Clone()
	return c
}
