// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNoActiveSession is returned by every accessor when no session is
	// open or the open one has expired. Callers route the user to login.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidCredentials is returned by Open for incomplete credentials.
	ErrInvalidCredentials = errors.New("invalid session credentials")

	// ErrMalformedToken is returned when a token's claims cannot be read.
	ErrMalformedToken = errors.New("malformed token")
)
