// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ListSSHKeys implements [ServerAdapter] via GET /sshkeys.
func (h *httpServerAdapter) ListSSHKeys(ctx context.Context) ([]models.SSHKey, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	body, err := h.do("list ssh keys", resty.MethodGet, "/sshkeys", req)
	if err != nil {
		return nil, err
	}

	var dtos []sshKeyDTO
	if err = decode("list ssh keys", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, sshKeyDTO.toModel), nil
}

// GetSSHKey implements [ServerAdapter] via GET /sshkeys/{id}.
func (h *httpServerAdapter) GetSSHKey(ctx context.Context, id int64) (models.SSHKey, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SSHKey{}, err
	}

	body, err := h.do("get ssh key", resty.MethodGet, idPath("/sshkeys", id), req)
	if err != nil {
		return models.SSHKey{}, err
	}

	var dto sshKeyDTO
	if err = decode("get ssh key", body, &dto); err != nil {
		return models.SSHKey{}, err
	}
	return dto.toModel(), nil
}

// CreateSSHKey implements [ServerAdapter] via POST /sshkeys.
func (h *httpServerAdapter) CreateSSHKey(ctx context.Context, key models.SSHKey) (models.SSHKey, error) {
	return h.writeSSHKey(ctx, "create ssh key", resty.MethodPost, "/sshkeys", key)
}

// UpdateSSHKey implements [ServerAdapter] via PATCH /sshkeys/{id}.
func (h *httpServerAdapter) UpdateSSHKey(ctx context.Context, key models.SSHKey) (models.SSHKey, error) {
	return h.writeSSHKey(ctx, "update ssh key", resty.MethodPatch, idPath("/sshkeys", key.ID), key)
}

func (h *httpServerAdapter) writeSSHKey(ctx context.Context, op, method, path string, key models.SSHKey) (models.SSHKey, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SSHKey{}, err
	}
	req.SetHeader("Content-Type", "application/json").SetBody(newSSHKeyEnvelope(key))

	body, err := h.do(op, method, path, req)
	if err != nil {
		return models.SSHKey{}, err
	}

	var dto sshKeyDTO
	if len(body) > 0 {
		if err = decode(op, body, &dto); err != nil {
			return models.SSHKey{}, err
		}
	}
	return dto.toModel(), nil
}

// DeleteSSHKey implements [ServerAdapter] via DELETE /sshkeys/{id}.
func (h *httpServerAdapter) DeleteSSHKey(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("delete ssh key", resty.MethodDelete, idPath("/sshkeys", id), req)
	return err
}
