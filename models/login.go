// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Login is a stored credential as returned by the backend. Password stays
// encrypted; it is opened on demand by the crypto layer.
type Login struct {
	// ID is the server-assigned login identifier.
	ID int64

	// Name is the display name of the entry.
	Name string

	// Username is the account name used on the target site.
	Username string

	// Password is the symmetric-encrypted password of the entry.
	Password Secret

	// URLs lists the sites the credential applies to.
	URLs []LoginURL

	// Notes is free text attached to the entry.
	Notes string

	// CustomFields are user-defined key/value pairs.
	CustomFields []CustomField

	// IsFavorite marks the entry as a favourite.
	IsFavorite bool

	// FolderID references the folder the login lives in; nil means "No folder".
	FolderID *int64

	// File is an optional reference to an uploaded attachment.
	File *string
}

// LoginURL is one site of a login. ID is set once the server stored it.
type LoginURL struct {
	ID  *int64
	URI string
}

// CustomField is a user-defined key/value pair attached to a login.
type CustomField struct {
	ID    *int64
	Name  string
	Value string
}

// PrimaryURL returns the first URL of the login, or "" when none is set.
func (l Login) PrimaryURL() string {
	if len(l.URLs) == 0 {
		return ""
	}
	return l.URLs[0].URI
}

// URIs returns the plain URI strings of the login.
func (l Login) URIs() []string {
	uris := make([]string, 0, len(l.URLs))
	for _, u := range l.URLs {
		uris = append(uris, u.URI)
	}
	return uris
}

// Row returns the list-view projection of the login.
func (l Login) Row() LoginRow {
	return LoginRow{ID: l.ID, Name: l.Name, Username: l.Username, URL: l.PrimaryURL()}
}

// LoginRow is what the logins list shows for one entry.
type LoginRow struct {
	ID       int64
	Name     string
	Username string
	URL      string
}

// RowID implements [Identified].
func (r LoginRow) RowID() int64 { return r.ID }

// TrashedLogin is a login that was soft-deleted and waits in the trash.
type TrashedLogin struct {
	LoginID   int64
	Name      string
	URLs      []string
	TrashDate time.Time
}

// Row returns the list-view projection of the trashed login.
func (t TrashedLogin) Row() TrashRow {
	row := TrashRow{ID: t.LoginID, Name: t.Name, TrashDate: t.TrashDate}
	if len(t.URLs) > 0 {
		row.URL = t.URLs[0]
	}
	return row
}

// TrashRow is what the trash list shows for one entry.
type TrashRow struct {
	ID        int64
	Name      string
	URL       string
	TrashDate time.Time
}

// RowID implements [Identified].
func (r TrashRow) RowID() int64 { return r.ID }
