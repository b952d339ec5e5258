// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/migrations"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens a go-sqlite3 database. cfg.DSN is either
// "sqlite://<path>" or a native "file:" URI.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := sqliteDriverDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBDirIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite has a single writer; one connection also keeps ":memory:" alive
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:              conn,
		dialect:         migrations.DialectSQLite,
		logger:          log,
		errorClassifier: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

// sqliteDriverDSN converts a "sqlite://" DSN into what go-sqlite3 expects.
func sqliteDriverDSN(dsn string) string {
	path, ok := strings.CutPrefix(dsn, sqliteScheme)
	if !ok {
		return dsn
	}
	if path == ":memory:" {
		return "file::memory:?cache=shared"
	}
	return path
}

func createLocalDBDirIfNotExists(dsn string) error {
	if strings.HasPrefix(dsn, "file:") {
		return nil
	}

	dir := filepath.Dir(dsn)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	return nil
}
