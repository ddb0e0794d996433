// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyOnce sync.Once
	rsaKey  *rsa.PrivateKey
)

func privateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	keyOnce.Do(func() {
		var err error
		rsaKey, err = rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
	})
	return rsaKey
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "1"}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

func credentials(t *testing.T, expiresAt time.Time) Credentials {
	return Credentials{
		Login:        "alice@example.com",
		Token:        "opaque-token",
		ExpiresAt:    expiresAt,
		SymmetricKey: bytes.Repeat([]byte{0x01}, 32),
		PrivateKey:   privateKey(t),
	}
}

func TestStore_ClosedByDefault(t *testing.T) {
	s := NewStore()

	_, err := s.SymmetricKey()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	_, err = s.PrivateKey()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	_, err = s.Token()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.False(t, s.Active())
}

func TestStore_OpenAndRead(t *testing.T) {
	clock := newClock()
	s := NewStore(WithClock(clock.Now))

	require.NoError(t, s.Open(credentials(t, clock.Now().Add(time.Hour))))

	key, err := s.SymmetricKey()
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), key)

	priv, err := s.PrivateKey()
	require.NoError(t, err)
	assert.Same(t, privateKey(t), priv)

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	login, err := s.Login()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", login)
}

func TestStore_ExpiredSessionFailsClosed(t *testing.T) {
	clock := newClock()
	s := NewStore(WithClock(clock.Now))
	require.NoError(t, s.Open(credentials(t, clock.Now().Add(time.Minute))))

	clock.Advance(time.Minute)

	_, err := s.SymmetricKey()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	_, err = s.PrivateKey()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.False(t, s.Active())

	// истёкшая сессия очищается, а не просто скрывается
	clock.now = clock.now.Add(-time.Hour)
	_, err = s.Token()
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStore_ExpiryFromTokenClaim(t *testing.T) {
	clock := newClock()
	s := NewStore(WithClock(clock.Now))

	creds := credentials(t, time.Time{})
	creds.Token = signedToken(t, clock.Now().Add(30*time.Minute))
	require.NoError(t, s.Open(creds))

	exp, err := s.ExpiresAt()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(30*time.Minute).Unix(), exp.Unix())

	clock.Advance(31 * time.Minute)
	assert.True(t, s.ExpireIfDue())
	assert.False(t, s.ExpireIfDue())
}

func TestStore_OpenRejects(t *testing.T) {
	clock := newClock()
	s := NewStore(WithClock(clock.Now))

	tests := []struct {
		name   string
		mutate func(*Credentials)
	}{
		{name: "missing token", mutate: func(c *Credentials) { c.Token = "" }},
		{name: "missing login", mutate: func(c *Credentials) { c.Login = "" }},
		{name: "short key", mutate: func(c *Credentials) { c.SymmetricKey = []byte("short") }},
		{name: "missing private key", mutate: func(c *Credentials) { c.PrivateKey = nil }},
		{name: "already expired", mutate: func(c *Credentials) { c.ExpiresAt = clock.Now().Add(-time.Second) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := credentials(t, clock.Now().Add(time.Hour))
			tt.mutate(&creds)
			assert.ErrorIs(t, s.Open(creds), ErrInvalidCredentials)
			assert.False(t, s.Active())
		})
	}
}

func TestStore_ClearZeroesKeyAndRunsHooks(t *testing.T) {
	s := NewStore()
	var cleared atomic.Int32
	s.OnClear(func() { cleared.Add(1) })

	creds := credentials(t, time.Time{})
	require.NoError(t, s.Open(creds))

	internal := s.key
	s.Clear()

	assert.Equal(t, make([]byte, 32), internal)
	assert.Equal(t, int32(1), cleared.Load())

	s.Clear()
	assert.Equal(t, int32(1), cleared.Load(), "clearing a closed store must not fire hooks")

	// ключ вызывающего не трогаем
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), creds.SymmetricKey)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Open(credentials(t, time.Time{})))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = s.SymmetricKey()
				_, _ = s.Token()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Clear()
	}()
	wg.Wait()

	assert.False(t, s.Active())
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	got, err := TokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	got, err = TokenExpiry(signedToken(t, time.Time{}))
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = TokenExpiry("not-a-jwt")
	assert.ErrorIs(t, err, ErrMalformedToken)
}
