// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the reference backend writes
// into error response bodies.
//
// The client never matches on them: it maps responses by status code. They
// live in one place so the wording stays consistent across handlers and
// tests can compare against them.
package app

const (
	// MsgInvalidLoginPassword is returned when the login is unknown or the
	// auth hash does not match.
	MsgInvalidLoginPassword = "invalid login or password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login has already been taken"

	// MsgUserNotFound is returned for auth params and recipient key lookups
	// of an unknown account.
	MsgUserNotFound = "user not found"

	// MsgUnknownAccount is returned when a valid token names an account the
	// backend no longer has.
	MsgUnknownAccount = "unknown account"

	// MsgAccessDenied is returned by the auth middleware when the token is
	// missing, malformed or cannot be verified.
	MsgAccessDenied = "access denied"

	MsgLoginNotFound        = "login not found"
	MsgTrashedLoginNotFound = "trashed login not found"
	MsgNoteNotFound         = "note not found"
	MsgSSHKeyNotFound       = "ssh key not found"
	MsgSharedLoginNotFound  = "shared login not found"
	MsgNotFound             = "not found"

	// MsgAlreadyShared is returned when the same login is shared with the
	// same recipient twice.
	MsgAlreadyShared = "login is already shared with this user"

	// MsgKeyPairExists is returned when a key pair upload would replace
	// the pair the account already has.
	MsgKeyPairExists = "account already has a key pair"

	// MsgInvalidFolderID is returned when the folder_id query parameter is
	// not a number.
	MsgInvalidFolderID = "folder_id is invalid"
)
