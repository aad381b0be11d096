// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqlTokenStore struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLTokenStore returns a store backed by the access_tokens table of db.
// The schema must already be migrated.
func NewSQLTokenStore(db *DB, ttl time.Duration) TokenStore {
	return &sqlTokenStore{db: db, ttl: ttl, now: time.Now}
}

func (s *sqlTokenStore) Token(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := buildSelectTokenQuery(s.db.builder, key, s.now().UTC())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlTokenStore.Token").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, s.db.classify(err))
	}

	return token, nil
}

func (s *sqlTokenStore) SetToken(ctx context.Context, key, token string) error {
	if key == "" {
		return ErrEmptyKey
	}

	now := s.now().UTC()
	st := newStoredToken(token, s.ttl, now)

	query, args, err := buildUpsertTokenQuery(s.db.builder, key, token, st.ExpiresAt, now)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqlTokenStore.SetToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	return nil
}

func (s *sqlTokenStore) DeleteToken(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteTokenQuery(s.db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqlTokenStore.DeleteToken").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	return nil
}

func (s *sqlTokenStore) Close() error {
	return s.db.Close()
}
