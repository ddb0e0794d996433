// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db, logger.Nop())
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, nil)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_key_pairs.sql", "00002_create_sessions.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

// в памяти sqlite: миграции применяются и повторный запуск ничего не ломает
func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, logger.Nop()))
	require.NoError(t, Migrate(db, logger.Nop()))

	for _, table := range []string{"key_pairs", "sessions"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

// вывод goose уходит в zerolog, а не в stderr терминала
func TestMigrate_ReportsThroughLogger(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_log_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	var buf bytes.Buffer
	log := logger.New("client", &buf)
	log.Logger = log.Level(zerolog.DebugLevel)

	require.NoError(t, Migrate(db, log))

	var (
		messages []string
		version  float64
	)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, "migrations", entry["component"])
		messages = append(messages, entry["message"].(string))
		if v, ok := entry["version"].(float64); ok {
			version = v
		}
	}

	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, "00001_create_key_pairs.sql")
	assert.Contains(t, joined, "00002_create_sessions.sql")
	assert.Equal(t, "local schema is up to date", messages[len(messages)-1])
	assert.EqualValues(t, 2, version)
}
