// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the vault backend.
//
// [ServerAdapter] decouples the services from the wire: it owns the JSON
// shapes, the Bearer header and the mapping of HTTP failures to the sentinel
// errors of this package. Secrets cross this boundary only as ciphertext.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource yields the bearer token of the current session. An error
// (typically session.ErrNoActiveSession) aborts the request before it is
// sent.
type TokenSource interface {
	Token() (string, error)
}

// ServerAdapter is the backend API used by the services.
type ServerAdapter interface {
	// RequestAuthParams fetches the public key-derivation salts of login.
	RequestAuthParams(ctx context.Context, login string) (models.AuthParams, error)

	// Register creates an account. Only the auth hash, the salts and the
	// key pair with its private key sealed are sent; the master password
	// and the symmetric key never leave the client.
	Register(ctx context.Context, req RegisterRequest) (models.AuthResult, error)

	// Login exchanges an auth hash for a bearer token. The result carries
	// the account's sealed key pair when the server holds one.
	Login(ctx context.Context, login, authHash string) (models.AuthResult, error)

	// UploadKeyPair stores the sharing key pair of an account that has none.
	// The server refuses to replace an existing pair with ErrConflict.
	UploadKeyPair(ctx context.Context, pair models.KeyPair) error

	ListLogins(ctx context.Context, query models.LoginQuery) ([]models.Login, error)
	GetLogin(ctx context.Context, id int64) (models.Login, error)
	CreateLogin(ctx context.Context, login models.Login) (models.Login, error)
	UpdateLogin(ctx context.Context, login models.Login) (models.Login, error)
	// TrashLogin soft-deletes a login into the trash.
	TrashLogin(ctx context.Context, id int64) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListSSHKeys(ctx context.Context) ([]models.SSHKey, error)
	GetSSHKey(ctx context.Context, id int64) (models.SSHKey, error)
	CreateSSHKey(ctx context.Context, key models.SSHKey) (models.SSHKey, error)
	UpdateSSHKey(ctx context.Context, key models.SSHKey) (models.SSHKey, error)
	DeleteSSHKey(ctx context.Context, id int64) error

	ListSharedLogins(ctx context.Context, query models.SharedLoginQuery) ([]models.SharedLogin, error)
	// GetRecipientPublicKey returns the PEM public key of the account with
	// the given email, or ErrRecipientNotFound.
	GetRecipientPublicKey(ctx context.Context, email string) (string, error)
	CreateSharedLogin(ctx context.Context, grant models.SharedLogin) (models.SharedLogin, error)
	DeleteSharedLogin(ctx context.Context, id int64) error

	ListTrash(ctx context.Context) ([]models.TrashedLogin, error)
	RestoreTrash(ctx context.Context, loginID int64) error
	PurgeTrash(ctx context.Context, loginID int64) error

	ListFolders(ctx context.Context) ([]models.Folder, error)
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Login          string `json:"login"`
	AuthHash       string `json:"auth_hash"`
	EncryptionSalt string `json:"encryption_salt"`
	AuthSalt       string `json:"auth_salt"`
	PublicKey      string `json:"public_key"`
	PrivateKey     string `json:"private_key"`
	PrivateKeyIV   string `json:"private_key_iv"`
}
