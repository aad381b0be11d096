// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the mock backend.
//
// It exposes a login endpoint issuing access tokens and a generic set of
// collection routes (list, count, search, get, create, update, delete). Request
// tracing, access logging and token checks for protected collections are
// handled here before requests reach the service layer.
package http
