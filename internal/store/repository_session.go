// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession replaces the local session. A zero ExpiresAt is stored as NULL.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	expiresAt := sql.NullTime{Time: session.ExpiresAt, Valid: !session.ExpiresAt.IsZero()}

	_, err := r.db.ExecContext(ctx, saveSession,
		session.Login,
		session.Token,
		expiresAt,
		session.EncryptionSalt,
		session.AuthSalt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.SaveSession").
			Str("login", session.Login).
			Msg("failed to save local session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the local session or [ErrLocalSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	var (
		session   models.LocalSession
		expiresAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, getSession).Scan(
		&session.Login,
		&session.Token,
		&expiresAt,
		&session.EncryptionSalt,
		&session.AuthSalt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to scan session row")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

// DeleteSession removes the local session. Deleting a missing session is
// not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to delete local session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingStatement, err)
	}
	return nil
}
