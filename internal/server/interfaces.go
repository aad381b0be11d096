// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the mock backend.
type Server interface {
	// Run serves requests until ctx is cancelled or serving fails, then shuts
	// down gracefully.
	Run(ctx context.Context) error
}
