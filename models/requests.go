// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Form requests carry plaintext as typed by the user. Services encrypt the
// secret fields before a request reaches the mutation tracker or the adapter.

// LoginForm holds the editable fields of a login.
type LoginForm struct {
	Name         string
	Username     string
	Password     string
	URL          string
	Notes        string
	CustomFields []CustomField
	IsFavorite   bool
	FolderID     *int64
}

// CreateLoginRequest adds a login.
type CreateLoginRequest struct {
	LoginForm
}

func (CreateLoginRequest) Kind() EntityKind         { return KindLogin }
func (CreateLoginRequest) Operation() OperationKind { return OperationAdd }

// UpdateLoginRequest edits an existing login.
type UpdateLoginRequest struct {
	ID    int64
	URLID *int64
	LoginForm
}

func (UpdateLoginRequest) Kind() EntityKind         { return KindLogin }
func (UpdateLoginRequest) Operation() OperationKind { return OperationEdit }
func (r UpdateLoginRequest) TargetID() int64        { return r.ID }

// TrashLoginRequest moves a login to the trash.
type TrashLoginRequest struct {
	ID int64
}

func (TrashLoginRequest) Kind() EntityKind         { return KindLogin }
func (TrashLoginRequest) Operation() OperationKind { return OperationDelete }
func (r TrashLoginRequest) TargetID() int64        { return r.ID }

// CreateNoteRequest adds a secure note.
type CreateNoteRequest struct {
	Name string
	Body string
}

func (CreateNoteRequest) Kind() EntityKind         { return KindNote }
func (CreateNoteRequest) Operation() OperationKind { return OperationAdd }

// UpdateNoteRequest edits a secure note.
type UpdateNoteRequest struct {
	ID   int64
	Name string
	Body string
}

func (UpdateNoteRequest) Kind() EntityKind         { return KindNote }
func (UpdateNoteRequest) Operation() OperationKind { return OperationEdit }
func (r UpdateNoteRequest) TargetID() int64        { return r.ID }

// DeleteNoteRequest deletes a secure note.
type DeleteNoteRequest struct {
	ID int64
}

func (DeleteNoteRequest) Kind() EntityKind         { return KindNote }
func (DeleteNoteRequest) Operation() OperationKind { return OperationDelete }
func (r DeleteNoteRequest) TargetID() int64        { return r.ID }

// CreateSSHKeyRequest stores an SSH key pair. When both key fields are empty
// the service generates a fresh pair.
type CreateSSHKeyRequest struct {
	Name       string
	PrivateKey string
	PublicKey  string
	Notes      string
}

func (CreateSSHKeyRequest) Kind() EntityKind         { return KindSSHKey }
func (CreateSSHKeyRequest) Operation() OperationKind { return OperationAdd }

// UpdateSSHKeyRequest edits the metadata of a stored key pair.
type UpdateSSHKeyRequest struct {
	ID    int64
	Name  string
	Notes string
}

func (UpdateSSHKeyRequest) Kind() EntityKind         { return KindSSHKey }
func (UpdateSSHKeyRequest) Operation() OperationKind { return OperationEdit }
func (r UpdateSSHKeyRequest) TargetID() int64        { return r.ID }

// DeleteSSHKeyRequest deletes a stored key pair.
type DeleteSSHKeyRequest struct {
	ID int64
}

func (DeleteSSHKeyRequest) Kind() EntityKind         { return KindSSHKey }
func (DeleteSSHKeyRequest) Operation() OperationKind { return OperationDelete }
func (r DeleteSSHKeyRequest) TargetID() int64        { return r.ID }

// ShareLoginRequest shares one login's password with another user.
type ShareLoginRequest struct {
	LoginID        int64
	RecipientEmail string
}

func (ShareLoginRequest) Kind() EntityKind         { return KindSharedLogin }
func (ShareLoginRequest) Operation() OperationKind { return OperationAdd }

// RevokeShareRequest deletes a sharing grant. The source login is untouched.
type RevokeShareRequest struct {
	ID int64
}

func (RevokeShareRequest) Kind() EntityKind         { return KindSharedLogin }
func (RevokeShareRequest) Operation() OperationKind { return OperationDelete }
func (r RevokeShareRequest) TargetID() int64        { return r.ID }

// RestoreTrashRequest moves a trashed login back to the vault.
type RestoreTrashRequest struct {
	LoginID int64
}

func (RestoreTrashRequest) Kind() EntityKind         { return KindTrash }
func (RestoreTrashRequest) Operation() OperationKind { return OperationEdit }
func (r RestoreTrashRequest) TargetID() int64        { return r.LoginID }

// PurgeTrashRequest deletes a trashed login for good.
type PurgeTrashRequest struct {
	LoginID int64
}

func (PurgeTrashRequest) Kind() EntityKind         { return KindTrash }
func (PurgeTrashRequest) Operation() OperationKind { return OperationDelete }
func (r PurgeTrashRequest) TargetID() int64        { return r.LoginID }

// LoginQuery filters the logins list.
type LoginQuery struct {
	Search   string
	FolderID *int64
}

// SharedLoginQuery selects between grants the user made and grants made to
// the user.
type SharedLoginQuery struct {
	ByMe bool
}
