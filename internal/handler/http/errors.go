// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAccessToken is returned by the auth middleware when a request to
	// a protected collection carries no x-access-token header.
	ErrEmptyAccessToken = errors.New("empty `x-access-token` header")

	// ErrInvalidJSON is returned when the request body is not valid JSON of
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQueryParam is returned when a paging parameter is not an
	// integer.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
