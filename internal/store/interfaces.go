// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyPairRepository persists the user's RSA key pair on this device. The
// private key is stored only in its encrypted form.
type KeyPairRepository interface {
	SaveKeyPair(ctx context.Context, pair models.KeyPair) error
	GetKeyPair(ctx context.Context, login string) (models.KeyPair, error)
}

// SessionRepository persists the single local session used to unlock the
// vault offline while the server token is still valid.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}
