// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by token stores. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrTokenNotFound is returned when no token is stored under a key, or
	// the stored token has expired.
	ErrTokenNotFound = errors.New("token not found")

	// ErrEmptyKey is returned when a token key is empty.
	ErrEmptyKey = errors.New("token key is empty")

	// ErrUnknownBackend is returned by [NewTokenStore] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown token store backend")

	// ErrStoreUnavailable wraps database errors classified as transient
	// (lost connection, deadlock, server starting up).
	ErrStoreUnavailable = errors.New("token store temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a token row fails.
	ErrScanningRow = errors.New("failed to scan token row")
)
