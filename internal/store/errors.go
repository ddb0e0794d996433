// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyPairNotFound is returned when no RSA key pair is stored locally
	// for the requested login. A device seeing this generates a fresh pair.
	ErrKeyPairNotFound = errors.New("key pair not found")

	// ErrLocalSessionNotFound is returned when there is no persisted session
	// to resume.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors.
var (
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
)
