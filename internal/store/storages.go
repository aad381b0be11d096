// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
)

// NewTokenStore builds the token store selected by cfg.Backend. SQL backends
// are connected and migrated before they are returned.
func NewTokenStore(ctx context.Context, cfg config.TokenStorage, log *logger.Logger) (TokenStore, error) {
	log.Debug().Str("backend", cfg.Backend).Msg("creating token store...")

	switch cfg.Backend {
	case "", "memory":
		return NewMemoryTokenStore(cfg.TTL), nil
	case "file":
		return NewFileTokenStore(cfg.FilePath, cfg.TTL)
	case "sqlite":
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migratedSQLStore(db, cfg)
	case "postgres":
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migratedSQLStore(db, cfg)
	case "keyring":
		return NewKeyringTokenStore(cfg)
	case "redis":
		return NewRedisTokenStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func migratedSQLStore(db *DB, cfg config.TokenStorage) (TokenStore, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return NewSQLTokenStore(db, cfg.TTL), nil
}
