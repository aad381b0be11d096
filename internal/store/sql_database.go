// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/migrations"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB is an open database connection with the query builder and error
// classification matching its dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify wraps transient errors with [ErrStoreUnavailable].
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return err
}
