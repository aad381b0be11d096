// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"sync"
)

// Call is a deferred request. It is inert until [Call.Await] runs it; the
// round trip happens at most once and every Await returns the same outcome.
type Call[T any] struct {
	once sync.Once
	run  func(ctx context.Context) (T, error)

	result T
	err    error
}

func newCall[T any](run func(ctx context.Context) (T, error)) *Call[T] {
	return &Call[T]{run: run}
}

// Await performs the request on first use and returns its decoded payload.
// The context of the first Await governs the round trip; a context that is
// already done prevents the request from being sent.
func (c *Call[T]) Await(ctx context.Context) (T, error) {
	c.once.Do(func() {
		c.result, c.err = c.run(ctx)
		c.run = nil
	})
	return c.result, c.err
}
