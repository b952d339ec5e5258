// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = "memory"

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages picks the backend from cfg.DB.DSN, connects and migrates it:
//   - "memory"                       → in-memory repository;
//   - "postgres://", "postgresql://" → PostgreSQL via pgx;
//   - "sqlite://<path>", "file:..."  → SQLite via go-sqlite3.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == MemoryDSN:
		log.Info().Str("func", "NewStorages").Msg("using in-memory account storage")
		return &Storages{AccountRepository: NewMemoryAccountRepository()}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	return newSQLStorages(db, log)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the SQL pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
