// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"
)

type storedToken struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (t storedToken) expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

func newStoredToken(token string, ttl time.Duration, now time.Time) storedToken {
	st := storedToken{Token: token}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		st.ExpiresAt = &expiresAt
	}
	return st
}

type memoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]storedToken
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryTokenStore returns a process-local store. A positive ttl expires
// tokens after they are set.
func NewMemoryTokenStore(ttl time.Duration) TokenStore {
	return &memoryTokenStore{
		tokens: make(map[string]storedToken),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *memoryTokenStore) Token(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.tokens[key]
	if !ok || st.expired(s.now()) {
		return "", ErrTokenNotFound
	}

	return st.Token, nil
}

func (s *memoryTokenStore) SetToken(ctx context.Context, key, token string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = newStoredToken(token, s.ttl, s.now())

	return nil
}

func (s *memoryTokenStore) DeleteToken(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, key)

	return nil
}

func (s *memoryTokenStore) Close() error {
	return nil
}
