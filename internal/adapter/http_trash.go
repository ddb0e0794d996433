// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ListTrash implements [ServerAdapter] via GET /trashes.
func (h *httpServerAdapter) ListTrash(ctx context.Context) ([]models.TrashedLogin, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	body, err := h.do("list trash", resty.MethodGet, "/trashes", req)
	if err != nil {
		return nil, err
	}

	var dtos []trashDTO
	if err = decode("list trash", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, trashDTO.toModel), nil
}

// RestoreTrash implements [ServerAdapter] via PATCH /trashes/{id}.
func (h *httpServerAdapter) RestoreTrash(ctx context.Context, loginID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("restore trash", resty.MethodPatch, idPath("/trashes", loginID), req)
	return err
}

// PurgeTrash implements [ServerAdapter] via DELETE /trashes/{id}.
func (h *httpServerAdapter) PurgeTrash(ctx context.Context, loginID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("purge trash", resty.MethodDelete, idPath("/trashes", loginID), req)
	return err
}
