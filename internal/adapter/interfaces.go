// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport used by resource clients.
//
// The primary abstraction is [Transport], which decouples request dispatch
// from the underlying HTTP library. The package ships a resty-based
// implementation ([NewHTTPTransport]).
//
// Non-2xx responses are mapped to the sentinel errors defined in errors.go by
// mapHTTPError so that callers can use [errors.Is] for status handling
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rest-resource/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs single HTTP round trips. URLs are either absolute or
// relative to the transport's base URL.
type Transport interface {
	// Get sends a GET request.
	Get(ctx context.Context, url string, opts models.RequestOptions) (*models.Response, error)

	// Post sends a POST request with body encoded as JSON.
	Post(ctx context.Context, url string, body any, opts models.RequestOptions) (*models.Response, error)

	// Put sends a PUT request with body encoded as JSON.
	Put(ctx context.Context, url string, body any, opts models.RequestOptions) (*models.Response, error)

	// Delete sends a DELETE request.
	Delete(ctx context.Context, url string, opts models.RequestOptions) (*models.Response, error)
}
