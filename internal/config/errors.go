// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. The validator details are wrapped after the sentinel.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidResourceConfigs indicates invalid resource defaults
	// (for example, an empty header name).
	ErrInvalidResourceConfigs = errors.New("invalid resource configuration")
	// ErrInvalidStorageConfigs indicates invalid token store settings
	// (for example, sqlite backend without a DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid mock backend settings
	// (for example, a missing token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
