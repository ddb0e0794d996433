// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the key material of the logged-in user for the
// lifetime of one authenticated session.
//
// A [Store] is created once by the application and injected into every
// service that needs a key or the bearer token. Only the auth service opens
// and clears it; the expiry watcher clears it when the session runs out.
// Every accessor fails with [ErrNoActiveSession] once the session is closed
// or past its expiry.
package session

import (
	"crypto/rsa"
	"fmt"
	"sync"
	"time"
)

// Credentials is everything a successful authentication yields.
type Credentials struct {
	// Login is the user's email.
	Login string

	// Token is the bearer token for the backend.
	Token string

	// ExpiresAt is the expiry reported by the server. When zero, the exp
	// claim of Token is used. When both are absent the session lasts until
	// Clear.
	ExpiresAt time.Time

	// SymmetricKey is the 32-byte key that opens the user's secrets.
	SymmetricKey []byte

	// PrivateKey opens sharing grants addressed to the user.
	PrivateKey *rsa.PrivateKey
}

// Option configures a [Store].
type Option func(*Store)

// WithClock replaces time.Now. Tests use it to move past expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the session key store.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	open      bool
	login     string
	token     string
	expiresAt time.Time
	key       []byte
	private   *rsa.PrivateKey

	onClear []func()
}

// NewStore returns a closed store.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a session, replacing any previous one.
func (s *Store) Open(c Credentials) error {
	if c.Login == "" || c.Token == "" {
		return fmt.Errorf("%w: login and token are required", ErrInvalidCredentials)
	}
	if len(c.SymmetricKey) != 32 {
		return fmt.Errorf("%w: symmetric key must be 32 bytes", ErrInvalidCredentials)
	}
	if c.PrivateKey == nil {
		return fmt.Errorf("%w: private key is required", ErrInvalidCredentials)
	}

	expiresAt := c.ExpiresAt
	if expiresAt.IsZero() {
		exp, err := TokenExpiry(c.Token)
		if err == nil {
			expiresAt = exp
		}
	}
	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		return fmt.Errorf("%w: session already expired", ErrInvalidCredentials)
	}

	key := make([]byte, len(c.SymmetricKey))
	copy(key, c.SymmetricKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	s.open = true
	s.login = c.Login
	s.token = c.Token
	s.expiresAt = expiresAt
	s.key = key
	s.private = c.PrivateKey

	return nil
}

// Clear closes the session and zeroes the symmetric key. Clearing a closed
// store is a no-op. Hooks registered with OnClear run after the lock is
// released.
func (s *Store) Clear() {
	s.mu.Lock()
	wasOpen := s.open
	s.clearLocked()
	hooks := append([]func(){}, s.onClear...)
	s.mu.Unlock()

	if wasOpen {
		for _, hook := range hooks {
			hook()
		}
	}
}

// OnClear registers fn to run every time an open session is closed.
func (s *Store) OnClear(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = append(s.onClear, fn)
}

// SymmetricKey returns a copy of the session key.
func (s *Store) SymmetricKey() ([]byte, error) {
	var key []byte
	err := s.read(func() {
		key = make([]byte, len(s.key))
		copy(key, s.key)
	})
	return key, err
}

// PrivateKey returns the user's RSA private key.
func (s *Store) PrivateKey() (*rsa.PrivateKey, error) {
	var priv *rsa.PrivateKey
	err := s.read(func() { priv = s.private })
	return priv, err
}

// Token returns the bearer token.
func (s *Store) Token() (string, error) {
	var token string
	err := s.read(func() { token = s.token })
	return token, err
}

// Login returns the email of the logged-in user.
func (s *Store) Login() (string, error) {
	var login string
	err := s.read(func() { login = s.login })
	return login, err
}

// ExpiresAt returns the expiry of the open session, zero when unknown.
func (s *Store) ExpiresAt() (time.Time, error) {
	var exp time.Time
	err := s.read(func() { exp = s.expiresAt })
	return exp, err
}

// Active reports whether a session is open and not expired.
func (s *Store) Active() bool {
	return s.read(func() {}) == nil
}

// ExpireIfDue closes the session when the clock is past its expiry and
// reports whether it did.
func (s *Store) ExpireIfDue() bool {
	s.mu.RLock()
	due := s.open && s.expiredLocked()
	s.mu.RUnlock()

	if !due {
		return false
	}
	s.Clear()
	return true
}

// read runs fn under the read lock if the session is usable. An expired
// session is cleared on the way out.
func (s *Store) read(fn func()) error {
	s.mu.RLock()
	if !s.open {
		s.mu.RUnlock()
		return ErrNoActiveSession
	}
	if s.expiredLocked() {
		s.mu.RUnlock()
		s.Clear()
		return ErrNoActiveSession
	}
	fn()
	s.mu.RUnlock()
	return nil
}

func (s *Store) expiredLocked() bool {
	return !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt)
}

func (s *Store) clearLocked() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.open = false
	s.login = ""
	s.token = ""
	s.expiresAt = time.Time{}
	s.key = nil
	s.private = nil
}
