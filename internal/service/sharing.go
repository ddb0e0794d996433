// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/reconcile"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sharingProtocol re-encrypts a login's password for another user.
//
// The password is opened with the sender's symmetric key and sealed with the
// recipient's RSA public key on this device, so the server only ever sees
// ciphertext. The plaintext lives in one byte slice that is zeroed before
// run returns. Steps run strictly in order; any failure stops the run
// before the grant is submitted.
type sharingProtocol struct {
	adapter    adapter.ServerAdapter
	symmetric  crypto.SymmetricCodec
	asymmetric crypto.AsymmetricCodec
	session    *session.Store
	logger     *logger.Logger

	mu        sync.RWMutex
	observers []func(models.ShareTransition)
}

func newSharingProtocol(
	serverAdapter adapter.ServerAdapter,
	symmetric crypto.SymmetricCodec,
	asymmetric crypto.AsymmetricCodec,
	sessionStore *session.Store,
	log *logger.Logger,
) *sharingProtocol {
	return &sharingProtocol{
		adapter:    serverAdapter,
		symmetric:  symmetric,
		asymmetric: asymmetric,
		session:    sessionStore,
		logger:     log.WithComponent("sharing"),
	}
}

func (p *sharingProtocol) observe(fn func(models.ShareTransition)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

func (p *sharingProtocol) transition(t models.ShareTransition, state models.ShareState, err error) {
	t.State = state
	t.Err = err

	ev := p.logger.Debug()
	if err != nil {
		ev = p.logger.Warn().Err(err)
	}
	ev.Int64("login_id", t.LoginID).Str("state", state.String()).Msg("sharing transition")

	p.mu.RLock()
	observers := slices.Clone(p.observers)
	p.mu.RUnlock()

	for _, fn := range observers {
		fn(t)
	}
}

// run takes grant.LoginID and grant.SharedWith through the protocol.
func (p *sharingProtocol) run(ctx context.Context, grant models.SharedLogin) (err error) {
	t := models.ShareTransition{LoginID: grant.LoginID, Recipient: grant.SharedWith}
	p.transition(t, models.ShareRequested, nil)
	defer func() {
		if err != nil {
			p.transition(t, models.ShareFailed, err)
		}
	}()

	pemText, err := p.adapter.GetRecipientPublicKey(ctx, grant.SharedWith)
	if err != nil {
		return err
	}
	recipientKey, err := p.asymmetric.ParsePublicKeyPEM(pemText)
	if err != nil {
		return fmt.Errorf("recipient public key: %w", err)
	}
	p.transition(t, models.ShareRecipientKeyFetched, nil)

	source, err := p.adapter.GetLogin(ctx, grant.LoginID)
	if err != nil {
		return err
	}

	key, err := p.session.SymmetricKey()
	if err != nil {
		return err
	}
	plaintext, err := p.symmetric.DecryptSecret(source.Password, key)
	clear(key)
	if err != nil {
		return fmt.Errorf("open source password: %w", err)
	}
	p.transition(t, models.ShareSourceDecrypted, nil)

	ciphertext, err := p.asymmetric.EncryptForRecipient(plaintext, recipientKey)
	clear(plaintext)
	if err != nil {
		return fmt.Errorf("seal for recipient: %w", err)
	}
	p.transition(t, models.ShareReEncrypted, nil)

	sender, err := p.session.Login()
	if err != nil {
		return err
	}

	submitted := models.SharedLogin{
		LoginID:    grant.LoginID,
		Name:       source.Name,
		Username:   source.Username,
		URLs:       source.URIs(),
		SharedBy:   sender,
		SharedWith: grant.SharedWith,
		Password:   ciphertext,
	}
	p.transition(t, models.ShareSubmitted, nil)

	if _, err = p.adapter.CreateSharedLogin(ctx, submitted); err != nil {
		return err
	}

	p.transition(t, models.ShareConfirmed, nil)
	return nil
}

// openGrant decrypts a grant's password with the session private key. The
// symmetric path is never tried.
func (p *sharingProtocol) openGrant(grant models.SharedLogin) (string, error) {
	priv, err := p.session.PrivateKey()
	if err != nil {
		return "", err
	}

	plaintext, err := p.asymmetric.DecryptWithPrivateKey(grant.Password, priv)
	if err != nil {
		return "", fmt.Errorf("open shared password: %w", err)
	}
	defer clear(plaintext)

	return string(plaintext), nil
}

type sharingService struct {
	*core
}

const sharedByMeParams = "by_me=true"

// ListSharedByMe implements [SharingService]. Pending shares show as
// pending-add rows and pending revocations as pending-delete rows.
func (s *sharingService) ListSharedByMe(ctx context.Context) ([]models.DisplayRow[models.SharedLoginRow], error) {
	return s.list(ctx, models.SharedLoginQuery{ByMe: true}, sharedByMeParams)
}

// ListSharedWithMe implements [SharingService].
func (s *sharingService) ListSharedWithMe(ctx context.Context) ([]models.DisplayRow[models.SharedLoginRow], error) {
	return s.list(ctx, models.SharedLoginQuery{}, "")
}

func (s *sharingService) list(ctx context.Context, query models.SharedLoginQuery, params string) ([]models.DisplayRow[models.SharedLoginRow], error) {
	grants, err := s.grants(ctx, query, params)
	if err != nil {
		return nil, err
	}

	var adds []models.SharedLoginRow
	if query.ByMe {
		adds = rowsOf(mutation.PendingOf[models.SharedLogin](s.tracker, models.KindSharedLogin, models.OperationAdd), models.SharedLogin.Row)
	}
	deletes := reconcile.TargetIDs(pendingSlice[models.RevokeShareRequest](s.tracker, models.KindSharedLogin, models.OperationDelete))

	return reconcile.Merge(mapRows(grants, models.SharedLogin.Row), adds, nil, deletes), nil
}

func (s *sharingService) grants(ctx context.Context, query models.SharedLoginQuery, params string) ([]models.SharedLogin, error) {
	key := QueryKey{Kind: models.KindSharedLogin, Params: params}
	grants, err := Query(ctx, s.cache, key, func(ctx context.Context) ([]models.SharedLogin, error) {
		return s.adapter.ListSharedLogins(ctx, query)
	})
	if err != nil {
		return nil, s.fetchError(err)
	}
	return grants, nil
}

// Grant implements [SharingService].
func (s *sharingService) Grant(ctx context.Context, id int64) (models.SharedLogin, error) {
	grants, err := s.grants(ctx, models.SharedLoginQuery{}, "")
	if err != nil {
		return models.SharedLogin{}, err
	}
	for _, g := range grants {
		if g.ID == id {
			return g, nil
		}
	}
	return models.SharedLogin{}, fmt.Errorf("shared login %d: %w", id, adapter.ErrNotFound)
}

// Share implements [SharingService]. The pending row carries the login name
// from the cached logins view when it is known.
func (s *sharingService) Share(ctx context.Context, req models.ShareLoginRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	sender, err := s.session.Login()
	if err != nil {
		return "", err
	}

	pending := models.SharedLogin{
		LoginID:    req.LoginID,
		SharedBy:   sender,
		SharedWith: req.RecipientEmail,
	}
	if login, ok := s.cachedLogin(req.LoginID); ok {
		pending.Name = login.Name
		pending.Username = login.Username
		pending.URLs = login.URIs()
	}

	return s.submit(ctx, models.KindSharedLogin, models.OperationAdd, pending)
}

func (s *sharingService) cachedLogin(id int64) (models.Login, bool) {
	logins, ok := Peek[models.Login](s.cache, QueryKey{Kind: models.KindLogin, Params: loginParams(models.LoginQuery{})})
	if !ok {
		return models.Login{}, false
	}
	for _, l := range logins {
		if l.ID == id {
			return l, true
		}
	}
	return models.Login{}, false
}

// Revoke implements [SharingService].
func (s *sharingService) Revoke(ctx context.Context, req models.RevokeShareRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindSharedLogin, models.OperationDelete, req)
}

// RevealSharedPassword implements [SharingService].
func (s *sharingService) RevealSharedPassword(grant models.SharedLogin) (string, error) {
	return s.sharing.openGrant(grant)
}

// OnTransition implements [SharingService].
func (s *sharingService) OnTransition(fn func(models.ShareTransition)) {
	s.sharing.observe(fn)
}
