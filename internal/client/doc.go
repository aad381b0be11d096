// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the resource command-line application.
//
// Each subcommand maps to one resource operation (query, get, save, update,
// delete, search, count). The URL template, base address, headers and token
// store come from the shared configuration; ids, query parameters, suffix and
// body come from per-command flags. Results are printed as JSON, optionally
// filtered with a jq expression.
package client
