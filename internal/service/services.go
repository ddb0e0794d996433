// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault client's operations on top of the
// server adapter, the crypto codecs, the session store and local storage.
//
// Reads go through a [QueryCache] and come back as reconciled display rows:
// the authoritative collection with the pending mutations of the
// [mutation.Tracker] laid over it. Writes are validated, encrypted, tracked
// and then sent to the server on a context that cannot be cancelled.
package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// ClientServices groups the services of the vault client.
type ClientServices struct {
	Auth      AuthService
	Logins    LoginService
	Notes     NoteService
	SSHKeys   SSHKeyService
	Sharing   SharingService
	Trash     TrashService
	Folders   FolderService
	Mutations MutationService

	Cache   *QueryCache
	Tracker *mutation.Tracker
}

// core is the state shared by all services.
type core struct {
	adapter   adapter.ServerAdapter
	session   *session.Store
	cache     *QueryCache
	tracker   *mutation.Tracker
	validator validators.Validator
	symmetric crypto.SymmetricCodec
	sharing   *sharingProtocol
	logger    *logger.Logger
}

// NewClientServices wires the services. Ending the session drops the cache
// and the tracked mutations.
func NewClientServices(
	appCfg config.ClientApp,
	serverAdapter adapter.ServerAdapter,
	storages *store.ClientStorages,
	sessionStore *session.Store,
	log *logger.Logger,
) *ClientServices {
	symmetric := crypto.NewSymmetricCodec()
	asymmetric := crypto.NewAsymmetricCodec()
	kdf := crypto.NewKeyDerivation(crypto.Argon2Params{
		Time:    appCfg.KDFTime,
		Memory:  appCfg.KDFMemory,
		Threads: appCfg.KDFThreads,
	})

	c := &core{
		adapter:   serverAdapter,
		session:   sessionStore,
		cache:     NewQueryCache(DefaultObserveWindow, log),
		tracker:   mutation.NewTracker(),
		validator: validators.NewRequestValidator(),
		symmetric: symmetric,
		logger:    log.WithComponent("service"),
	}
	c.sharing = newSharingProtocol(serverAdapter, symmetric, asymmetric, sessionStore, c.logger)

	sessionStore.OnClear(func() {
		c.cache.Clear()
		c.tracker.Reset()
	})

	return &ClientServices{
		Auth:      newAuthService(c, kdf, asymmetric, storages, appCfg.RSABits),
		Logins:    &loginService{core: c},
		Notes:     &noteService{core: c},
		SSHKeys:   &sshKeyService{core: c, keygen: crypto.NewSSHKeyGenerator()},
		Sharing:   &sharingService{core: c},
		Trash:     &trashService{core: c},
		Folders:   &folderService{core: c},
		Mutations: &mutationService{core: c},
		Cache:     c.cache,
		Tracker:   c.tracker,
	}
}

// fetchError maps a read failure and ends the session on a 401.
func (c *core) fetchError(err error) error {
	err = mapAdapterError(err)
	endSessionIfLost(c.session, err)
	return err
}
