// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/reconcile"
	"github.com/MKhiriev/go-pass-vault/models"
)

type loginService struct {
	*core
}

func loginParams(query models.LoginQuery) string {
	v := url.Values{}
	if query.Search != "" {
		v.Set("search", query.Search)
	}
	if query.FolderID != nil {
		v.Set("folder_id", strconv.FormatInt(*query.FolderID, 10))
	}
	return v.Encode()
}

// List implements [LoginService].
func (s *loginService) List(ctx context.Context, query models.LoginQuery) ([]models.DisplayRow[models.LoginRow], error) {
	key := QueryKey{Kind: models.KindLogin, Params: loginParams(query)}
	logins, err := Query(ctx, s.cache, key, func(ctx context.Context) ([]models.Login, error) {
		return s.adapter.ListLogins(ctx, query)
	})
	if err != nil {
		return nil, s.fetchError(err)
	}

	adds := rowsOf(mutation.PendingOf[models.Login](s.tracker, models.KindLogin, models.OperationAdd), models.Login.Row)
	edits := rowsOf(mutation.PendingOf[models.Login](s.tracker, models.KindLogin, models.OperationEdit), models.Login.Row)
	deletes := reconcile.TargetIDs(pendingSlice[models.TrashLoginRequest](s.tracker, models.KindLogin, models.OperationDelete))

	return reconcile.Merge(mapRows(logins, models.Login.Row), adds, edits, deletes), nil
}

// Get implements [LoginService].
func (s *loginService) Get(ctx context.Context, id int64) (models.Login, error) {
	login, err := s.adapter.GetLogin(ctx, id)
	if err != nil {
		return models.Login{}, s.fetchError(err)
	}
	return login, nil
}

// RevealOwnPassword implements [LoginService].
func (s *loginService) RevealOwnPassword(login models.Login) (string, error) {
	key, err := s.session.SymmetricKey()
	if err != nil {
		return "", err
	}
	defer clear(key)

	plaintext, err := s.symmetric.DecryptSecret(login.Password, key)
	if err != nil {
		return "", fmt.Errorf("open login %d password: %w", login.ID, err)
	}
	defer clear(plaintext)

	return string(plaintext), nil
}

// Create implements [LoginService].
func (s *loginService) Create(ctx context.Context, req models.CreateLoginRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	login, err := s.seal(0, nil, req.LoginForm)
	if err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindLogin, models.OperationAdd, login)
}

// Update implements [LoginService].
func (s *loginService) Update(ctx context.Context, req models.UpdateLoginRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	login, err := s.seal(req.ID, req.URLID, req.LoginForm)
	if err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindLogin, models.OperationEdit, login)
}

// Trash implements [LoginService]. The login moves to the trash.
func (s *loginService) Trash(ctx context.Context, req models.TrashLoginRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindLogin, models.OperationDelete, req)
}

// seal builds the wire login with the password encrypted under the
// session key.
func (s *loginService) seal(id int64, urlID *int64, form models.LoginForm) (models.Login, error) {
	key, err := s.session.SymmetricKey()
	if err != nil {
		return models.Login{}, err
	}
	defer clear(key)

	password := []byte(form.Password)
	secret, err := s.symmetric.Encrypt(password, key)
	clear(password)
	if err != nil {
		return models.Login{}, fmt.Errorf("seal login password: %w", err)
	}

	login := models.Login{
		ID:           id,
		Name:         form.Name,
		Username:     form.Username,
		Password:     secret,
		Notes:        form.Notes,
		CustomFields: form.CustomFields,
		IsFavorite:   form.IsFavorite,
	}
	if form.URL != "" {
		login.URLs = []models.LoginURL{{ID: urlID, URI: form.URL}}
	}
	if form.FolderID != nil && *form.FolderID != models.NoFolderID {
		folderID := *form.FolderID
		login.FolderID = &folderID
	}

	return login, nil
}
