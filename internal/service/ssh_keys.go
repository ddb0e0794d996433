// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/reconcile"
	"github.com/MKhiriev/go-pass-vault/models"
)

type sshKeyService struct {
	*core
	keygen crypto.SSHKeyGenerator
}

// List implements [SSHKeyService].
func (s *sshKeyService) List(ctx context.Context) ([]models.DisplayRow[models.SSHKeyRow], error) {
	keys, err := Query(ctx, s.cache, QueryKey{Kind: models.KindSSHKey}, s.adapter.ListSSHKeys)
	if err != nil {
		return nil, s.fetchError(err)
	}

	adds := rowsOf(mutation.PendingOf[models.SSHKey](s.tracker, models.KindSSHKey, models.OperationAdd), models.SSHKey.Row)
	edits := rowsOf(mutation.PendingOf[models.SSHKey](s.tracker, models.KindSSHKey, models.OperationEdit), models.SSHKey.Row)
	deletes := reconcile.TargetIDs(pendingSlice[models.DeleteSSHKeyRequest](s.tracker, models.KindSSHKey, models.OperationDelete))

	return reconcile.Merge(mapRows(keys, models.SSHKey.Row), adds, edits, deletes), nil
}

// RevealPrivateKey implements [SSHKeyService].
func (s *sshKeyService) RevealPrivateKey(ctx context.Context, id int64) (string, error) {
	sshKey, err := s.adapter.GetSSHKey(ctx, id)
	if err != nil {
		return "", s.fetchError(err)
	}

	key, err := s.session.SymmetricKey()
	if err != nil {
		return "", err
	}
	defer clear(key)

	pem, err := s.symmetric.DecryptSecret(sshKey.PrivateKey, key)
	if err != nil {
		return "", fmt.Errorf("open ssh key %d: %w", id, err)
	}
	defer clear(pem)

	return string(pem), nil
}

// Create implements [SSHKeyService].
func (s *sshKeyService) Create(ctx context.Context, req models.CreateSSHKeyRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	privatePEM, publicKey := []byte(req.PrivateKey), req.PublicKey
	if req.PrivateKey == "" {
		var err error
		privatePEM, publicKey, err = s.keygen.Generate(req.Name)
		if err != nil {
			return "", err
		}
		s.logger.Debug().Str("name", req.Name).Msg("generated ssh key pair")
	}

	key, err := s.session.SymmetricKey()
	if err != nil {
		return "", err
	}
	sealed, err := s.symmetric.Encrypt(privatePEM, key)
	clear(key)
	clear(privatePEM)
	if err != nil {
		return "", fmt.Errorf("seal ssh private key: %w", err)
	}

	return s.submit(ctx, models.KindSSHKey, models.OperationAdd, models.SSHKey{
		Name:       req.Name,
		PrivateKey: sealed,
		PublicKey:  publicKey,
		Notes:      req.Notes,
	})
}

// Update implements [SSHKeyService]. Only the name and the notes change;
// the key material is left as stored.
func (s *sshKeyService) Update(ctx context.Context, req models.UpdateSSHKeyRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	edit := models.SSHKey{ID: req.ID, Name: req.Name, Notes: req.Notes}
	if cached, ok := Peek[models.SSHKey](s.cache, QueryKey{Kind: models.KindSSHKey}); ok {
		for _, k := range cached {
			if k.ID == req.ID {
				// shown while the edit is pending; omitted from the request when empty
				edit.PublicKey = k.PublicKey
				break
			}
		}
	}

	return s.submit(ctx, models.KindSSHKey, models.OperationEdit, edit)
}

// Delete implements [SSHKeyService].
func (s *sshKeyService) Delete(ctx context.Context, req models.DeleteSSHKeyRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindSSHKey, models.OperationDelete, req)
}
