// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the mock backend's HTTP server.
//
// It owns the listener lifecycle: serving until the context is cancelled, then
// shutting down gracefully within the configured request timeout.
package server
