// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testAppConfig keeps Argon2 cheap; the RSA size is the smallest the
// client accepts.
var testAppConfig = config.ClientApp{KDFTime: 1, KDFMemory: 1024, KDFThreads: 1, RSABits: 2048}

// device is one client installation: its own local database and session.
type device struct {
	services *service.ClientServices
	session  *session.Store
}

func newDevice(t *testing.T, srv *httptest.Server) *device {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "vault.db") + "?_foreign_keys=on"
	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	sessionStore := session.NewStore()
	serverAdapter, err := adapter.NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 10 * time.Second},
		sessionStore,
		logger.Nop(),
	)
	require.NoError(t, err)

	return &device{
		services: service.NewClientServices(testAppConfig, serverAdapter, storages, sessionStore, logger.Nop()),
		session:  sessionStore,
	}
}

func newBackendServer(t *testing.T, opts ...Option) (*Backend, *httptest.Server) {
	t.Helper()
	b := New(opts...)
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return b, srv
}

func (d *device) register(t *testing.T, login, password string) {
	t.Helper()
	err := d.services.Auth.Register(context.Background(), models.User{Login: login, MasterPassword: password})
	require.NoError(t, err)
}

func (d *device) createLogin(t *testing.T, form models.LoginForm) {
	t.Helper()
	_, err := d.services.Logins.Create(context.Background(), models.CreateLoginRequest{LoginForm: form})
	require.NoError(t, err)
}

// loginID returns the id of the settled login row named name.
func (d *device) loginID(t *testing.T, name string) int64 {
	t.Helper()
	rows, err := d.services.Logins.List(context.Background(), models.LoginQuery{})
	require.NoError(t, err)
	for _, r := range rows {
		if r.Entity.Name == name {
			require.NotNil(t, r.ID)
			return *r.ID
		}
	}
	t.Fatalf("login %q not listed", name)
	return 0
}
