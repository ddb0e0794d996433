// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SSHKey is a stored SSH key pair. It is unrelated to the user's sharing
// key pair: it is only an artifact kept in the vault.
type SSHKey struct {
	ID   int64
	Name string

	// PrivateKey is the PEM private key, symmetric-encrypted.
	PrivateKey Secret

	// PublicKey is the authorized_keys line. Public keys are not secret.
	PublicKey string

	Notes string
}

// Row returns the list-view projection of the key.
func (k SSHKey) Row() SSHKeyRow {
	return SSHKeyRow{ID: k.ID, Name: k.Name, PublicKey: k.PublicKey, Notes: k.Notes}
}

// SSHKeyRow is what the SSH keys list shows for one entry.
type SSHKeyRow struct {
	ID        int64
	Name      string
	PublicKey string
	Notes     string
}

// RowID implements [Identified].
func (r SSHKeyRow) RowID() int64 { return r.ID }
