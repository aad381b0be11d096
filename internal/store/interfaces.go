// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists access tokens for the resource client.
//
// Tokens are plain strings stored under a key (by default "accessToken").
// Backends: in-process memory, a JSON file, SQLite, PostgreSQL, the OS
// keyring and Redis. [NewTokenStore] selects one from configuration.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenReader looks up stored tokens. It returns [ErrTokenNotFound] when key
// holds no token.
type TokenReader interface {
	Token(ctx context.Context, key string) (string, error)
}

// TokenStore is a [TokenReader] that can also write tokens.
type TokenStore interface {
	TokenReader
	SetToken(ctx context.Context, key, token string) error
	DeleteToken(ctx context.Context, key string) error
	Close() error
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
