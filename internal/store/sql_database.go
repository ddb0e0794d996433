// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps the sqlite connection shared by all local repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the local schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}
