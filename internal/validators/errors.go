// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid id")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyLogin       = errors.New("login is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidFolderID  = errors.New("invalid folder id")
	ErrEmptyFieldName   = errors.New("custom field name is required")
	ErrIncompleteSSHKey = errors.New("ssh key needs both private and public parts or neither")
	ErrEmptyNoteBody    = errors.New("note text is required")
)
