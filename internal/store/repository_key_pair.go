// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// keyPairRepository is the sqlite-backed implementation of
// [KeyPairRepository]. One row per login in the "key_pairs" table.
type keyPairRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyPairRepository constructs a [KeyPairRepository] backed by db.
func NewKeyPairRepository(db *DB, logger *logger.Logger) KeyPairRepository {
	logger.Debug().Msg("creating key pair repository")
	return &keyPairRepository{
		db:     db,
		logger: logger,
	}
}

// SaveKeyPair inserts or replaces the key pair of pair.Login. A zero
// CreatedAt is stamped with the current time.
func (r *keyPairRepository) SaveKeyPair(ctx context.Context, pair models.KeyPair) error {
	log := logger.FromContext(ctx)

	if pair.CreatedAt.IsZero() {
		pair.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, saveKeyPair,
		pair.Login,
		pair.PublicKeyPEM,
		pair.EncryptedPrivateKey.Ciphertext,
		pair.EncryptedPrivateKey.IV,
		pair.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*keyPairRepository.SaveKeyPair").
			Str("login", pair.Login).
			Msg("failed to save key pair")
		return fmt.Errorf("%w: save key pair: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetKeyPair returns the stored key pair of login or [ErrKeyPairNotFound].
func (r *keyPairRepository) GetKeyPair(ctx context.Context, login string) (models.KeyPair, error) {
	log := logger.FromContext(ctx)

	var pair models.KeyPair
	err := r.db.QueryRowContext(ctx, getKeyPair, login).Scan(
		&pair.Login,
		&pair.PublicKeyPEM,
		&pair.EncryptedPrivateKey.Ciphertext,
		&pair.EncryptedPrivateKey.IV,
		&pair.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyPair{}, ErrKeyPairNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*keyPairRepository.GetKeyPair").
			Str("login", login).
			Msg("failed to scan key pair row")
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pair, nil
}
