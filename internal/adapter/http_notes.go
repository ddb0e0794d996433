// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ListNotes implements [ServerAdapter] via GET /notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	body, err := h.do("list notes", resty.MethodGet, "/notes", req)
	if err != nil {
		return nil, err
	}

	var dtos []noteDTO
	if err = decode("list notes", body, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, noteDTO.toModel), nil
}

// GetNote implements [ServerAdapter] via GET /notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}

	body, err := h.do("get note", resty.MethodGet, idPath("/notes", id), req)
	if err != nil {
		return models.Note{}, err
	}

	var dto noteDTO
	if err = decode("get note", body, &dto); err != nil {
		return models.Note{}, err
	}
	return dto.toModel(), nil
}

// CreateNote implements [ServerAdapter] via POST /notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return h.writeNote(ctx, "create note", resty.MethodPost, "/notes", note)
}

// UpdateNote implements [ServerAdapter] via PATCH /notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return h.writeNote(ctx, "update note", resty.MethodPatch, idPath("/notes", note.ID), note)
}

func (h *httpServerAdapter) writeNote(ctx context.Context, op, method, path string, note models.Note) (models.Note, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Note{}, err
	}
	req.SetHeader("Content-Type", "application/json").SetBody(newNoteEnvelope(note))

	body, err := h.do(op, method, path, req)
	if err != nil {
		return models.Note{}, err
	}

	var dto noteDTO
	if len(body) > 0 {
		if err = decode(op, body, &dto); err != nil {
			return models.Note{}, err
		}
	}
	return dto.toModel(), nil
}

// DeleteNote implements [ServerAdapter] via DELETE /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	_, err = h.do("delete note", resty.MethodDelete, idPath("/notes", id), req)
	return err
}
