// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
)

func TestNewTokenStore_Backends(t *testing.T) {
	useArrayKeyring(t)
	mini := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.TokenStorage
	}{
		{name: "default", cfg: config.TokenStorage{}},
		{name: "memory", cfg: config.TokenStorage{Backend: "memory"}},
		{name: "file", cfg: config.TokenStorage{Backend: "file", FilePath: filepath.Join(dir, "tokens.json")}},
		{name: "sqlite", cfg: config.TokenStorage{Backend: "sqlite", DSN: filepath.Join(dir, "tokens.db")}},
		{name: "keyring", cfg: config.TokenStorage{Backend: "keyring"}},
		{name: "redis", cfg: config.TokenStorage{Backend: "redis", RedisAddress: mini.Addr()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewTokenStore(context.Background(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.SetToken(context.Background(), "accessToken", tt.name))
			token, err := s.Token(context.Background(), "accessToken")
			require.NoError(t, err)
			assert.Equal(t, tt.name, token)
		})
	}
}

func TestNewTokenStore_UnknownBackend(t *testing.T) {
	_, err := NewTokenStore(context.Background(), config.TokenStorage{Backend: "floppy"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
