// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const tokensTable = "access_tokens"

func buildSelectTokenQuery(b sq.StatementBuilderType, key string, now time.Time) (string, []any, error) {
	return b.Select("token").
		From(tokensTable).
		Where(sq.Eq{"name": key}).
		Where(sq.Or{
			sq.Eq{"expires_at": nil},
			sq.Gt{"expires_at": now},
		}).
		ToSql()
}

// buildUpsertTokenQuery replaces any token already stored under key. Both
// SQLite and PostgreSQL accept ON CONFLICT ... DO UPDATE.
func buildUpsertTokenQuery(b sq.StatementBuilderType, key, token string, expiresAt *time.Time, now time.Time) (string, []any, error) {
	return b.Insert(tokensTable).
		Columns("name", "token", "expires_at", "updated_at").
		Values(key, token, expiresAt, now).
		Suffix("ON CONFLICT (name) DO UPDATE SET token = excluded.token, expires_at = excluded.expires_at, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteTokenQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(tokensTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}
