// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ListLogins implements [ServerAdapter] via GET /logins?search=&folder_id=.
func (h *httpServerAdapter) ListLogins(ctx context.Context, query models.LoginQuery) ([]models.Login, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if query.Search != "" {
		req.SetQueryParam("search", query.Search)
	}
	if query.FolderID != nil {
		req.SetQueryParam("folder_id", strconv.FormatInt(*query.FolderID, 10))
	}

	body, err := h.do("list logins", resty.MethodGet, "/logins", req)
	if err != nil {
		return nil, err
	}

	var dtos []loginDTO
	if err = decode("list logins", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, loginDTO.toModel), nil
}

// GetLogin implements [ServerAdapter] via GET /logins/{id}.
func (h *httpServerAdapter) GetLogin(ctx context.Context, id int64) (models.Login, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Login{}, err
	}

	body, err := h.do("get login", resty.MethodGet, idPath("/logins", id), req)
	if err != nil {
		return models.Login{}, err
	}

	var dto loginDTO
	if err = decode("get login", body, &dto); err != nil {
		return models.Login{}, err
	}
	return dto.toModel(), nil
}

// CreateLogin implements [ServerAdapter] via POST /logins.
func (h *httpServerAdapter) CreateLogin(ctx context.Context, login models.Login) (models.Login, error) {
	return h.writeLogin(ctx, "create login", resty.MethodPost, "/logins", login)
}

// UpdateLogin implements [ServerAdapter] via PATCH /logins/{id}.
func (h *httpServerAdapter) UpdateLogin(ctx context.Context, login models.Login) (models.Login, error) {
	return h.writeLogin(ctx, "update login", resty.MethodPatch, idPath("/logins", login.ID), login)
}

func (h *httpServerAdapter) writeLogin(ctx context.Context, op, method, path string, login models.Login) (models.Login, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Login{}, err
	}
	req.SetHeader("Content-Type", "application/json").SetBody(newLoginEnvelope(login))

	body, err := h.do(op, method, path, req)
	if err != nil {
		return models.Login{}, err
	}

	var dto loginDTO
	if len(body) > 0 {
		if err = decode(op, body, &dto); err != nil {
			return models.Login{}, err
		}
	}
	return dto.toModel(), nil
}

// TrashLogin implements [ServerAdapter] via DELETE /logins/{id}.
func (h *httpServerAdapter) TrashLogin(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("trash login", resty.MethodDelete, idPath("/logins", id), req)
	return err
}

// ListFolders implements [ServerAdapter] via GET /folders.
func (h *httpServerAdapter) ListFolders(ctx context.Context) ([]models.Folder, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	body, err := h.do("list folders", resty.MethodGet, "/folders", req)
	if err != nil {
		return nil, err
	}

	var dtos []folderDTO
	if err = decode("list folders", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, func(d folderDTO) models.Folder {
		return models.Folder{ID: d.ID, Name: d.Name}
	}), nil
}
