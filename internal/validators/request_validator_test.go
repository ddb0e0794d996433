// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrInt64(v int64) *int64 { return &v }

func validLoginForm() models.LoginForm {
	return models.LoginForm{
		Name:     "GitHub",
		Username: "alice",
		Password: "s3cret",
		URL:      "github.com",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Login{}), ErrUnsupportedType)
}

func TestValidate_PointersAccepted(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.CreateLoginRequest{LoginForm: validLoginForm()}))
	assert.NoError(t, v.Validate(ctx, &models.UpdateNoteRequest{ID: 1, Name: "n", Body: "b"}))
	assert.NoError(t, v.Validate(ctx, &models.TrashLoginRequest{ID: 3}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ShareLoginRequest{LoginID: 1, RecipientEmail: "nope"}), ErrInvalidEmail)
}

// ---------------------------------------------------------------------------
// Logins
// ---------------------------------------------------------------------------

func TestValidate_CreateLogin(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.LoginForm)
		wantErr error
	}{
		{name: "valid", mutate: func(f *models.LoginForm) {}},
		{name: "blank name", mutate: func(f *models.LoginForm) { f.Name = "  " }, wantErr: ErrEmptyName},
		{name: "empty password", mutate: func(f *models.LoginForm) { f.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "negative folder", mutate: func(f *models.LoginForm) { f.FolderID = ptrInt64(-1) }, wantErr: ErrInvalidFolderID},
		{name: "no folder sentinel", mutate: func(f *models.LoginForm) { f.FolderID = ptrInt64(models.NoFolderID) }},
		{
			name:    "unnamed custom field",
			mutate:  func(f *models.LoginForm) { f.CustomFields = []models.CustomField{{Name: "pin"}, {Value: "x"}} },
			wantErr: ErrEmptyFieldName,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validLoginForm()
			tt.mutate(&form)

			err := v.Validate(context.Background(), models.CreateLoginRequest{LoginForm: form})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UpdateLogin(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateLoginRequest{ID: 5, LoginForm: validLoginForm()}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateLoginRequest{ID: 0, LoginForm: validLoginForm()}), ErrInvalidID)

	// ограничение по полям: проверяется только id
	assert.NoError(t, v.Validate(ctx, models.UpdateLoginRequest{ID: 5}, FieldID))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateLoginRequest{ID: 5}, FieldID, FieldName), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateLoginRequest{ID: 5}, "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Notes & SSH keys
// ---------------------------------------------------------------------------

func TestValidate_Notes(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateNoteRequest{Name: "todo", Body: "milk"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateNoteRequest{Body: "milk"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateNoteRequest{Name: "todo"}), ErrEmptyNoteBody)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateNoteRequest{Name: "todo", Body: "x"}), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteNoteRequest{ID: -2}), ErrInvalidID)
}

func TestValidate_SSHKeys(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateSSHKeyRequest{Name: "deploy"}), "generate pair")
	assert.NoError(t, v.Validate(ctx, models.CreateSSHKeyRequest{Name: "deploy", PrivateKey: "priv", PublicKey: "pub"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateSSHKeyRequest{Name: "deploy", PrivateKey: "priv"}), ErrIncompleteSSHKey)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateSSHKeyRequest{PublicKey: "pub", PrivateKey: "priv"}), ErrEmptyName)

	assert.NoError(t, v.Validate(ctx, models.UpdateSSHKeyRequest{ID: 1, Name: "n"}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateSSHKeyRequest{Name: "n"}), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteSSHKeyRequest{}), ErrInvalidID)
}

// ---------------------------------------------------------------------------
// Sharing, trash, credentials
// ---------------------------------------------------------------------------

func TestValidate_ShareLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ShareLoginRequest
		wantErr error
	}{
		{name: "valid", req: models.ShareLoginRequest{LoginID: 1, RecipientEmail: "bob@example.com"}},
		{name: "empty email", req: models.ShareLoginRequest{LoginID: 1}, wantErr: ErrInvalidEmail},
		{name: "malformed email", req: models.ShareLoginRequest{LoginID: 1, RecipientEmail: "bob@"}, wantErr: ErrInvalidEmail},
		{name: "no login", req: models.ShareLoginRequest{RecipientEmail: "bob@example.com"}, wantErr: ErrInvalidID},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_TargetedRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	for _, req := range []models.Targeted{
		models.TrashLoginRequest{ID: 1},
		models.RevokeShareRequest{ID: 1},
		models.RestoreTrashRequest{LoginID: 1},
		models.PurgeTrashRequest{LoginID: 1},
	} {
		assert.NoError(t, v.Validate(ctx, req))
	}

	assert.ErrorIs(t, v.Validate(ctx, models.RevokeShareRequest{}), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, models.PurgeTrashRequest{LoginID: -1}), ErrInvalidID)
}

func TestValidate_User(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", MasterPassword: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{MasterPassword: "pw"}), ErrEmptyLogin)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice"}), ErrEmptyPassword)

	// регистрация требует email в качестве логина
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice", MasterPassword: "pw"}, FieldEmail, FieldPassword), ErrInvalidEmail)
	assert.NoError(t, v.Validate(ctx, &models.User{Login: "alice@example.com", MasterPassword: "pw"}, FieldEmail, FieldPassword))
}
