// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fileTokenStore struct {
	path string
	ttl  time.Duration
	now  func() time.Time

	mu     sync.RWMutex
	tokens map[string]storedToken
}

type filePersistedState struct {
	Tokens map[string]storedToken `json:"tokens"`
}

// NewFileTokenStore returns a store persisted as JSON at path. The file and
// its directory are created on the first write.
func NewFileTokenStore(path string, ttl time.Duration) (TokenStore, error) {
	s := &fileTokenStore{
		path:   path,
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]storedToken),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileTokenStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode token file: %w", err)
	}

	if st.Tokens != nil {
		s.tokens = st.Tokens
	}

	return nil
}

func (s *fileTokenStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Tokens: s.tokens}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}

func (s *fileTokenStore) Token(ctx context.Context, key string) (string, error) {
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

func (s *fileTokenStore) SetToken(ctx context.Context, key, token string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = newStoredToken(token, s.ttl, s.now())
	return s.persist()
}

func (s *fileTokenStore) DeleteToken(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[key]; !ok {
		return nil
	}
	delete(s.tokens, key)
	return s.persist()
}

func (s *fileTokenStore) Close() error {
	return nil
}
