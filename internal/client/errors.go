// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrMissingURL       = errors.New("no URL template configured, use --url or RESOURCE_URL")
	ErrInvalidPair      = errors.New("expected name=value")
	ErrMissingData      = errors.New("no request body given, use --data")
	ErrInvalidData      = errors.New("request body is not valid JSON")
	ErrInvalidFilter    = errors.New("invalid jq expression")
	ErrEmptyCredentials = errors.New("login and password are required")
	ErrNotInitialized   = errors.New("application is not initialized")
)
