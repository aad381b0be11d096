// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-rest-resource/internal/config"
)

const defaultKeyringService = "go-rest-resource"

// openKeyring opens the keyring described by cfg.
// It can be replaced in tests to use an in-memory keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

type keyringTokenStore struct {
	ring keyring.Keyring
}

// NewKeyringTokenStore stores tokens in the OS credential store, or in an
// encrypted file keyring when the backend is "file".
func NewKeyringTokenStore(cfg config.TokenStorage) (TokenStore, error) {
	ring, err := openKeyring(keyringConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return &keyringTokenStore{ring: ring}, nil
}

func keyringConfig(cfg config.TokenStorage) keyring.Config {
	service := cfg.KeyringService
	if service == "" {
		service = defaultKeyringService
	}

	kc := keyring.Config{ServiceName: service}
	if cfg.KeyringBackend == "system" {
		return kc
	}

	dir := cfg.KeyringDir
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, service, "keyring")
		} else {
			dir = filepath.Join(os.TempDir(), service, "keyring")
		}
	}
	kc.FileDir = dir
	if cfg.KeyringPassword != "" {
		kc.FilePasswordFunc = keyring.FixedStringPrompt(cfg.KeyringPassword)
	} else {
		kc.FilePasswordFunc = keyring.TerminalPrompt
	}

	if cfg.KeyringBackend == "file" {
		kc.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return kc
}

func (s *keyringTokenStore) Token(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	item, err := s.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read keyring item %q: %w", key, err)
	}

	return string(item.Data), nil
}

func (s *keyringTokenStore) SetToken(ctx context.Context, key, token string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := s.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(token),
		Label: defaultKeyringService + " " + key,
	})
	if err != nil {
		return fmt.Errorf("write keyring item %q: %w", key, err)
	}

	return nil
}

func (s *keyringTokenStore) DeleteToken(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := s.ring.Remove(key)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("remove keyring item %q: %w", key, err)
	}

	return nil
}

func (s *keyringTokenStore) Close() error {
	return nil
}
