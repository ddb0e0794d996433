// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ListSharedLogins implements [ServerAdapter] via GET /shared_login_data.
// by_me=true selects grants the user made; otherwise grants made to the user.
func (h *httpServerAdapter) ListSharedLogins(ctx context.Context, query models.SharedLoginQuery) ([]models.SharedLogin, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if query.ByMe {
		req.SetQueryParam("by_me", "true")
	}

	body, err := h.do("list shared logins", resty.MethodGet, "/shared_login_data", req)
	if err != nil {
		return nil, err
	}

	var dtos []sharedLoginDTO
	if err = decode("list shared logins", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, sharedLoginDTO.toModel), nil
}

// GetRecipientPublicKey implements [ServerAdapter] via
// GET /shared_login_data/new?email=. A 404, an "error" body or an empty key
// all mean there is no such recipient.
func (h *httpServerAdapter) GetRecipientPublicKey(ctx context.Context, email string) (string, error) {
	const op = "get recipient public key"

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}
	req.SetQueryParam("email", email)

	resp, err := req.Get("/shared_login_data/new")
	if err != nil {
		return "", networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		var rejected *RejectedError
		if errors.Is(err, ErrNotFound) || (errors.As(err, &rejected) && rejected.Status < 300) {
			return "", fmt.Errorf("%s: %w: %s", op, ErrRecipientNotFound, email)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var dto recipientKeyDTO
	if err = decode(op, resp.Body(), &dto); err != nil {
		return "", err
	}
	if dto.PublicKey == "" {
		return "", fmt.Errorf("%s: %w: %s", op, ErrRecipientNotFound, email)
	}

	return dto.PublicKey, nil
}

// CreateSharedLogin implements [ServerAdapter] via POST /shared_login_data.
func (h *httpServerAdapter) CreateSharedLogin(ctx context.Context, grant models.SharedLogin) (models.SharedLogin, error) {
	const op = "create shared login"

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SharedLogin{}, err
	}
	req.SetHeader("Content-Type", "application/json").SetBody(newSharedLoginEnvelope(grant))

	body, err := h.do(op, resty.MethodPost, "/shared_login_data", req)
	if err != nil {
		return models.SharedLogin{}, err
	}

	var dto sharedLoginDTO
	if len(body) > 0 {
		if err = decode(op, body, &dto); err != nil {
			return models.SharedLogin{}, err
		}
	}
	return dto.toModel(), nil
}

// DeleteSharedLogin implements [ServerAdapter] via
// DELETE /shared_login_data/{id}. The source login is not affected.
func (h *httpServerAdapter) DeleteSharedLogin(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("delete shared login", resty.MethodDelete, idPath("/shared_login_data", id), req)
	return err
}
