// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/session"
)

// mapAdapterError translates adapter errors of authenticated calls into
// service errors. A 401 means the server no longer accepts the token, so it
// is reported as a lost session.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", session.ErrNoActiveSession, err)
	}

	return err
}

// mapAuthError translates adapter errors of the unauthenticated auth calls.
func mapAuthError(err error, fallback error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrLoginAlreadyExists, err)
	case errors.Is(err, adapter.ErrNetwork):
		return err
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// endSessionIfLost clears store when err says the session is gone, so the
// application routes back to the login screen.
func endSessionIfLost(store *session.Store, err error) {
	if errors.Is(err, session.ErrNoActiveSession) {
		store.Clear()
	}
}
