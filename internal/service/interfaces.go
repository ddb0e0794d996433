// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService opens and closes the vault session.
type AuthService interface {
	// Register creates the account, generates the sharing key pair and opens
	// a session. The master password never leaves the device: the server
	// receives a hash of the derived key and the two salts.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and opens a session. A device
	// without a stored key pair generates one and uploads its public key.
	Login(ctx context.Context, user models.User) error

	// Unlock reopens the saved session offline while its token is still
	// valid. The master password is checked by opening the stored private
	// key. It returns the login of the unlocked account.
	Unlock(ctx context.Context, masterPassword string) (string, error)

	// SavedLogin returns the login of an unexpired saved session.
	SavedLogin(ctx context.Context) (string, error)

	// Logout closes the session and forgets the saved one.
	Logout(ctx context.Context) error
}

// LoginService manages stored logins.
type LoginService interface {
	// List returns the reconciled logins view for query.
	List(ctx context.Context, query models.LoginQuery) ([]models.DisplayRow[models.LoginRow], error)

	// Get returns one login with its password still encrypted.
	Get(ctx context.Context, id int64) (models.Login, error)

	// RevealOwnPassword opens the password of one of the user's own logins
	// with the session symmetric key.
	RevealOwnPassword(login models.Login) (string, error)

	Create(ctx context.Context, req models.CreateLoginRequest) (mutation.Handle, error)
	Update(ctx context.Context, req models.UpdateLoginRequest) (mutation.Handle, error)
	Trash(ctx context.Context, req models.TrashLoginRequest) (mutation.Handle, error)
}

// NoteService manages secure notes.
type NoteService interface {
	List(ctx context.Context) ([]models.DisplayRow[models.NoteRow], error)

	// Reveal fetches one note and opens its name and text.
	Reveal(ctx context.Context, id int64) (models.NoteContent, error)

	Create(ctx context.Context, req models.CreateNoteRequest) (mutation.Handle, error)
	Update(ctx context.Context, req models.UpdateNoteRequest) (mutation.Handle, error)
	Delete(ctx context.Context, req models.DeleteNoteRequest) (mutation.Handle, error)
}

// SSHKeyService manages SSH key pairs.
type SSHKeyService interface {
	List(ctx context.Context) ([]models.DisplayRow[models.SSHKeyRow], error)

	// RevealPrivateKey fetches one key and opens its PEM private key.
	RevealPrivateKey(ctx context.Context, id int64) (string, error)

	// Create stores a key pair. When the request carries no key material a
	// new RSA pair is generated on the device.
	Create(ctx context.Context, req models.CreateSSHKeyRequest) (mutation.Handle, error)
	Update(ctx context.Context, req models.UpdateSSHKeyRequest) (mutation.Handle, error)
	Delete(ctx context.Context, req models.DeleteSSHKeyRequest) (mutation.Handle, error)
}

// SharingService shares logins with other users.
type SharingService interface {
	ListSharedByMe(ctx context.Context) ([]models.DisplayRow[models.SharedLoginRow], error)
	ListSharedWithMe(ctx context.Context) ([]models.DisplayRow[models.SharedLoginRow], error)

	// Grant returns one grant addressed to the user.
	Grant(ctx context.Context, id int64) (models.SharedLogin, error)

	// Share runs the sharing protocol for one login and one recipient.
	Share(ctx context.Context, req models.ShareLoginRequest) (mutation.Handle, error)

	// Revoke deletes a grant. The source login is left untouched.
	Revoke(ctx context.Context, req models.RevokeShareRequest) (mutation.Handle, error)

	// RevealSharedPassword opens a grant's password with the session
	// private key.
	RevealSharedPassword(grant models.SharedLogin) (string, error)

	// OnTransition registers fn to observe sharing protocol states.
	OnTransition(fn func(models.ShareTransition))
}

// TrashService manages trashed logins.
type TrashService interface {
	List(ctx context.Context) ([]models.DisplayRow[models.TrashRow], error)
	Restore(ctx context.Context, req models.RestoreTrashRequest) (mutation.Handle, error)
	Purge(ctx context.Context, req models.PurgeTrashRequest) (mutation.Handle, error)
}

// FolderService lists folders.
type FolderService interface {
	// List returns the user's folders with models.NoFolder first.
	List(ctx context.Context) ([]models.Folder, error)
}

// MutationService exposes failed mutations for retry.
type MutationService interface {
	Failed() []mutation.Entry

	// Retry submits the payload of a failed mutation again and returns the
	// new handle.
	Retry(ctx context.Context, h mutation.Handle) (mutation.Handle, error)

	Dismiss(h mutation.Handle) error
}
