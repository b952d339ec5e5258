// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/migrations"
)

// DB is an open SQL connection pool together with the dialect specific
// pieces the repositories need.
type DB struct {
	*sql.DB
	dialect         migrations.Dialect
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect reports the backend of this connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// builder returns a squirrel builder with the dialect's placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func statementBuilder(dialect migrations.Dialect) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
