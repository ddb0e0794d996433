// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestLoginParams(t *testing.T) {
	folder := int64(4)

	assert.Empty(t, loginParams(models.LoginQuery{}))
	assert.Equal(t, "folder_id=4&search=git+hub", loginParams(models.LoginQuery{Search: "git hub", FolderID: &folder}))
}

func TestLoginService_CreateSealsPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}
	folder := models.NoFolderID

	env.adapter.EXPECT().CreateLogin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.Login) (models.Login, error) {
			assert.Zero(t, l.ID)
			assert.True(t, l.Password.IsComplete())
			assert.NotContains(t, l.Password.Ciphertext, "hunter2")
			assert.Nil(t, l.FolderID, "папка-заглушка уходит как null")
			require.Len(t, l.URLs, 1)
			assert.Equal(t, "https://github.com", l.URLs[0].URI)

			plain, err := crypto.NewSymmetricCodec().DecryptSecret(l.Password, env.key)
			require.NoError(t, err)
			assert.Equal(t, "hunter2", string(plain))

			l.ID = 10
			return l, nil
		})

	_, err := svc.Create(context.Background(), models.CreateLoginRequest{LoginForm: models.LoginForm{
		Name:     "GitHub",
		Username: "alice",
		Password: "hunter2",
		URL:      "https://github.com",
		FolderID: &folder,
	}})
	require.NoError(t, err)
}

func TestLoginService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}

	_, err := svc.Create(context.Background(), models.CreateLoginRequest{LoginForm: models.LoginForm{Name: "x"}})
	require.ErrorIs(t, err, validators.ErrEmptyPassword)

	_, err = svc.Create(context.Background(), models.CreateLoginRequest{LoginForm: models.LoginForm{Password: "x"}})
	require.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestLoginService_UpdateKeepsURLID(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}
	urlID := int64(55)
	folder := int64(3)

	env.adapter.EXPECT().UpdateLogin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.Login) (models.Login, error) {
			assert.Equal(t, int64(8), l.ID)
			require.Len(t, l.URLs, 1)
			assert.Equal(t, &urlID, l.URLs[0].ID)
			assert.Equal(t, &folder, l.FolderID)
			return l, nil
		})

	_, err := svc.Update(context.Background(), models.UpdateLoginRequest{
		ID:    8,
		URLID: &urlID,
		LoginForm: models.LoginForm{
			Name:     "GitLab",
			Password: "p",
			URL:      "https://gitlab.com",
			FolderID: &folder,
		},
	})
	require.NoError(t, err)
}

func TestLoginService_ListShowsPendingAddAndEdit(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}
	ctx := context.Background()

	authoritative := []models.Login{{ID: 1, Name: "Old name"}}
	env.adapter.EXPECT().ListLogins(gomock.Any(), gomock.Any()).Return(authoritative, nil)

	_, err := svc.List(ctx, models.LoginQuery{})
	require.NoError(t, err)

	env.core.tracker.Record(models.KindLogin, models.OperationEdit, models.Login{ID: 1, Name: "New name"})
	env.core.tracker.Record(models.KindLogin, models.OperationAdd, models.Login{Name: "Fresh"})

	rows, err := svc.List(ctx, models.LoginQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.TagPendingEdit, rows[0].Tag)
	assert.Equal(t, "New name", rows[0].Entity.Name)
	assert.Equal(t, models.TagPendingAdd, rows[1].Tag)
	assert.Nil(t, rows[1].ID)
	assert.Equal(t, "Fresh", rows[1].Entity.Name)
}

func TestLoginService_RevealOwnPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}

	got, err := svc.RevealOwnPassword(models.Login{ID: 1, Password: env.seal(t, "s3cret")})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)

	_, err = svc.RevealOwnPassword(models.Login{ID: 1, Password: models.Secret{Ciphertext: "AAAA", IV: "AAAA"}})
	require.ErrorIs(t, err, ErrDecryption)

	env.session.Clear()
	_, err = svc.RevealOwnPassword(models.Login{ID: 1, Password: env.seal(t, "s3cret")})
	require.ErrorIs(t, err, ErrNoActiveSession)
}

func TestLoginService_ListUnauthorizedEndsSession(t *testing.T) {
	env := newTestEnv(t)
	svc := &loginService{core: env.core}

	env.adapter.EXPECT().ListLogins(gomock.Any(), gomock.Any()).Return(nil, adapterUnauthorized())

	_, err := svc.List(context.Background(), models.LoginQuery{})
	require.ErrorIs(t, err, ErrNoActiveSession)
	assert.False(t, env.session.Active())
}
