// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSessionRepository(&DB{DB: db, logger: l}, l), mock
}

var sessionColumns = []string{"login", "token", "expires_at", "encryption_salt", "auth_salt"}

func TestSaveSession_WithExpiry(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("alice", "tok", exp, "esalt", "asalt").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.LocalSession{
		Login: "alice", Token: "tok", ExpiresAt: exp, EncryptionSalt: "esalt", AuthSalt: "asalt",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_NoExpiryIsNull(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("alice", "tok", nil, "esalt", "asalt").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.LocalSession{
		Login: "alice", Token: "tok", EncryptionSalt: "esalt", AuthSalt: "asalt",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("database is locked"))

	err := repo.SaveSession(context.Background(), models.LocalSession{Login: "alice"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetSession(t *testing.T) {
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.LocalSession
		wantErr error
	}{
		{
			name: "with expiry",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sessions").
					WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow("alice", "tok", exp, "e", "a"))
			},
			want: models.LocalSession{Login: "alice", Token: "tok", ExpiresAt: exp, EncryptionSalt: "e", AuthSalt: "a"},
		},
		{
			name: "null expiry",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sessions").
					WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow("alice", "tok", nil, "e", "a"))
			},
			want: models.LocalSession{Login: "alice", Token: "tok", EncryptionSalt: "e", AuthSalt: "a"},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrLocalSessionNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSessionRepo(t)
			tt.setup(mock)

			got, err := repo.GetSession(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteSession(context.Background()))

	mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.DeleteSession(context.Background()), ErrExecutingStatement)
}
