// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/session"
)

var (
	ErrWrongPassword      = errors.New("wrong login or master password")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrRegisterOnServer   = errors.New("registration failed on server")
	ErrLoginOnServer      = errors.New("login failed on server")
	ErrInvalidAuthParams  = errors.New("invalid auth params")

	ErrNoLocalSession  = errors.New("no saved session to unlock")
	ErrSessionExpired  = errors.New("saved session has expired")
	ErrKeyPairMismatch = errors.New("stored key pair belongs to another user")
	// ErrKeyPairUnavailable means the account's sharing key pair exists but
	// cannot be opened with the derived key. It is never replaced silently.
	ErrKeyPairUnavailable = errors.New("sharing key pair cannot be opened")

	ErrMutationNotFound    = errors.New("no failed mutation with this handle")
	ErrUnsupportedMutation = errors.New("unsupported mutation payload")
)

// Errors of lower layers that callers of this package match on. They are
// the same values, so errors.Is works against either name.
var (
	ErrDecryption        = crypto.ErrDecryption
	ErrEncoding          = crypto.ErrEncoding
	ErrNoActiveSession   = session.ErrNoActiveSession
	ErrRecipientNotFound = adapter.ErrRecipientNotFound
	ErrNetwork           = adapter.ErrNetwork
	ErrServerRejected    = adapter.ErrServerRejected
)
