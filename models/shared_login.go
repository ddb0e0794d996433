// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SharedLogin is a sharing grant: a standalone copy of one login's password
// encrypted for exactly one recipient under their RSA public key. It is
// independent of the source login; deleting it never touches the source.
type SharedLogin struct {
	// ID is the grant identifier.
	ID int64

	// LoginID references the source login of the sender.
	LoginID int64

	// Name, Username and URLs are denormalized display fields.
	Name     string
	Username string
	URLs     []string

	// SharedBy is the sender's email, SharedWith the recipient's.
	SharedBy   string
	SharedWith string

	// Password is the base64 RSA-OAEP ciphertext. Only the recipient's
	// private key opens it.
	Password string
}

// Row returns the list-view projection of the grant.
func (s SharedLogin) Row() SharedLoginRow {
	row := SharedLoginRow{
		ID:         s.ID,
		LoginID:    s.LoginID,
		Name:       s.Name,
		Username:   s.Username,
		SharedBy:   s.SharedBy,
		SharedWith: s.SharedWith,
	}
	if len(s.URLs) > 0 {
		row.URL = s.URLs[0]
	}
	return row
}

// SharedLoginRow is what the shared logins lists show for one grant.
type SharedLoginRow struct {
	ID         int64
	LoginID    int64
	Name       string
	Username   string
	URL        string
	SharedBy   string
	SharedWith string
}

// RowID implements [Identified].
func (r SharedLoginRow) RowID() int64 { return r.ID }
