// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the resource client and the mock backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] for the resource CLI and
// [GetServerConfig] for the mock backend. Both fill defaults and validate
// their view with go-playground/validator.
package config
