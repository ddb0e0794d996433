// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testLogin = "alice@example.com"

var (
	rsaKeysMu sync.Mutex
	rsaKeys   = map[string]*rsa.PrivateKey{}
)

// testRSAKey возвращает RSA-2048 ключ, сгенерированный один раз на имя.
func testRSAKey(t *testing.T, name string) *rsa.PrivateKey {
	t.Helper()
	rsaKeysMu.Lock()
	defer rsaKeysMu.Unlock()

	if k, ok := rsaKeys[name]; ok {
		return k
	}
	k, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	rsaKeys[name] = k
	return k
}

type testEnv struct {
	core    *core
	adapter *mock.MockServerAdapter
	session *session.Store
	key     []byte
}

// newTestEnv собирает core с мок-адаптером и реальными кодеками; сессия
// уже открыта.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	store := session.NewStore()
	log := logger.Nop()
	symmetric := crypto.NewSymmetricCodec()

	c := &core{
		adapter:   mockAdapter,
		session:   store,
		cache:     NewQueryCache(DefaultObserveWindow, log),
		tracker:   mutation.NewTracker(),
		validator: validators.NewRequestValidator(),
		symmetric: symmetric,
		logger:    log,
	}
	c.sharing = newSharingProtocol(mockAdapter, symmetric, crypto.NewAsymmetricCodec(), store, log)
	store.OnClear(func() {
		c.cache.Clear()
		c.tracker.Reset()
	})

	key := bytes.Repeat([]byte{0x42}, 32)
	require.NoError(t, store.Open(session.Credentials{
		Login:        testLogin,
		Token:        "opaque-token",
		SymmetricKey: key,
		PrivateKey:   testRSAKey(t, "alice"),
	}))

	return &testEnv{core: c, adapter: mockAdapter, session: store, key: key}
}

func (e *testEnv) seal(t *testing.T, plaintext string) models.Secret {
	t.Helper()
	secret, err := crypto.NewSymmetricCodec().Encrypt([]byte(plaintext), e.key)
	require.NoError(t, err)
	return secret
}

func rowIDs[T models.Identified](rows []models.DisplayRow[T]) []int64 {
	var ids []int64
	for _, r := range rows {
		if r.ID != nil {
			ids = append(ids, *r.ID)
		}
	}
	return ids
}

func adapterUnauthorized() error {
	return fmt.Errorf("%w: 401", adapter.ErrUnauthorized)
}

func sessionCredentials(t *testing.T, key []byte) session.Credentials {
	t.Helper()
	return session.Credentials{
		Login:        testLogin,
		Token:        "opaque-token",
		SymmetricKey: key,
		PrivateKey:   testRSAKey(t, "alice"),
	}
}
