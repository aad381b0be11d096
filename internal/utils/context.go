// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, HTTP response writing,
// HTTP client initialization, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// LoginCtxKey is the key under which the authenticated login is stored in a
// request context by the token middleware.
var LoginCtxKey = contextKey("login")

// GetLoginFromContext retrieves the authenticated login from the context.
// ok is false when no login is stored or it has an unexpected type.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok
}
