// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldPassword     = "password"
	FieldFolderID     = "folder_id"
	FieldCustomFields = "custom_fields"
	FieldEmail        = "email"
	FieldLogin        = "login"
	FieldBody         = "body"
	FieldKeyMaterial  = "key_material"
)

// RequestValidator implements [Validator] for the mutation request structs
// of package models and for [models.User].
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Pointers to the supported
// types are accepted as well.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateLoginRequest:
		return v.validateLoginForm(value.LoginForm, fields...)
	case *models.CreateLoginRequest:
		return v.validateLoginForm(value.LoginForm, fields...)

	case models.UpdateLoginRequest:
		return v.validateUpdateLogin(value, fields...)
	case *models.UpdateLoginRequest:
		return v.validateUpdateLogin(*value, fields...)

	case models.CreateNoteRequest:
		return v.validateNote(0, value.Name, value.Body, withDefault(fields, FieldName, FieldBody)...)
	case *models.CreateNoteRequest:
		return v.validateNote(0, value.Name, value.Body, withDefault(fields, FieldName, FieldBody)...)

	case models.UpdateNoteRequest:
		return v.validateNote(value.ID, value.Name, value.Body, withDefault(fields, FieldID, FieldName, FieldBody)...)
	case *models.UpdateNoteRequest:
		return v.validateNote(value.ID, value.Name, value.Body, withDefault(fields, FieldID, FieldName, FieldBody)...)

	case models.CreateSSHKeyRequest:
		return v.validateCreateSSHKey(value, fields...)
	case *models.CreateSSHKeyRequest:
		return v.validateCreateSSHKey(*value, fields...)

	case models.UpdateSSHKeyRequest:
		return v.validateUpdateSSHKey(value, fields...)
	case *models.UpdateSSHKeyRequest:
		return v.validateUpdateSSHKey(*value, fields...)

	case models.ShareLoginRequest:
		return v.validateShare(value, fields...)
	case *models.ShareLoginRequest:
		return v.validateShare(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Targeted:
		// delete-style requests carry nothing but the target id
		return validateID(value.TargetID())

	default:
		return ErrUnsupportedType
	}
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func (v *RequestValidator) validateEmail(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func (v *RequestValidator) validateLoginForm(form models.LoginForm, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldPassword, FieldFolderID, FieldCustomFields) {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFolderID:
			if form.FolderID != nil && *form.FolderID < 0 {
				return ErrInvalidFolderID
			}
		case FieldCustomFields:
			for i, cf := range form.CustomFields {
				if strings.TrimSpace(cf.Name) == "" {
					return fmt.Errorf("custom field at index %d: %w", i, ErrEmptyFieldName)
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUpdateLogin(req models.UpdateLoginRequest, fields ...string) error {
	fields = withDefault(fields, FieldID, FieldName, FieldPassword, FieldFolderID, FieldCustomFields)

	var formFields []string
	for _, f := range fields {
		if f == FieldID {
			if err := validateID(req.ID); err != nil {
				return err
			}
			continue
		}
		formFields = append(formFields, f)
	}
	if len(formFields) == 0 {
		return nil
	}
	return v.validateLoginForm(req.LoginForm, formFields...)
}

func (v *RequestValidator) validateNote(id int64, name, body string, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(id); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		case FieldBody:
			if body == "" {
				return ErrEmptyNoteBody
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateCreateSSHKey(req models.CreateSSHKeyRequest, fields ...string) error {
	for _, f := range withDefault(fields, FieldName, FieldKeyMaterial) {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldKeyMaterial:
			// both empty means "generate a pair"
			if (req.PrivateKey == "") != (req.PublicKey == "") {
				return ErrIncompleteSSHKey
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUpdateSSHKey(req models.UpdateSSHKeyRequest, fields ...string) error {
	for _, f := range withDefault(fields, FieldID, FieldName) {
		switch f {
		case FieldID:
			if err := validateID(req.ID); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateShare(req models.ShareLoginRequest, fields ...string) error {
	for _, f := range withDefault(fields, FieldID, FieldEmail) {
		switch f {
		case FieldID:
			if err := validateID(req.LoginID); err != nil {
				return err
			}
		case FieldEmail:
			if err := v.validateEmail(req.RecipientEmail); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUser(user models.User, fields ...string) error {
	for _, f := range withDefault(fields, FieldLogin, FieldPassword) {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldEmail:
			if err := v.validateEmail(user.Login); err != nil {
				return err
			}
		case FieldPassword:
			if user.MasterPassword == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
