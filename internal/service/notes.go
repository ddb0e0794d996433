// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/reconcile"
	"github.com/MKhiriev/go-pass-vault/models"
)

type noteService struct {
	*core
}

// List implements [NoteService]. Note names are encrypted; a name that
// does not open is shown as unavailable instead of failing the list.
func (s *noteService) List(ctx context.Context) ([]models.DisplayRow[models.NoteRow], error) {
	notes, err := Query(ctx, s.cache, QueryKey{Kind: models.KindNote}, s.adapter.ListNotes)
	if err != nil {
		return nil, s.fetchError(err)
	}

	key, err := s.session.SymmetricKey()
	if err != nil {
		return nil, err
	}
	defer clear(key)

	row := func(n models.Note) models.NoteRow {
		name, err := s.symmetric.DecryptSecret(n.Name, key)
		if err != nil {
			return models.NoteRow{ID: n.ID, NameUnavailable: true}
		}
		return models.NoteRow{ID: n.ID, Name: string(name)}
	}

	adds := rowsOf(mutation.PendingOf[models.Note](s.tracker, models.KindNote, models.OperationAdd), row)
	edits := rowsOf(mutation.PendingOf[models.Note](s.tracker, models.KindNote, models.OperationEdit), row)
	deletes := reconcile.TargetIDs(pendingSlice[models.DeleteNoteRequest](s.tracker, models.KindNote, models.OperationDelete))

	return reconcile.Merge(mapRows(notes, row), adds, edits, deletes), nil
}

// Reveal implements [NoteService].
func (s *noteService) Reveal(ctx context.Context, id int64) (models.NoteContent, error) {
	note, err := s.adapter.GetNote(ctx, id)
	if err != nil {
		return models.NoteContent{}, s.fetchError(err)
	}

	key, err := s.session.SymmetricKey()
	if err != nil {
		return models.NoteContent{}, err
	}
	defer clear(key)

	name, err := s.symmetric.DecryptSecret(note.Name, key)
	if err != nil {
		return models.NoteContent{}, fmt.Errorf("open note %d name: %w", id, err)
	}
	body, err := s.symmetric.DecryptSecret(note.Body, key)
	if err != nil {
		return models.NoteContent{}, fmt.Errorf("open note %d text: %w", id, err)
	}

	return models.NoteContent{ID: id, Name: string(name), Body: string(body)}, nil
}

// Create implements [NoteService].
func (s *noteService) Create(ctx context.Context, req models.CreateNoteRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	note, err := s.seal(0, req.Name, req.Body)
	if err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindNote, models.OperationAdd, note)
}

// Update implements [NoteService].
func (s *noteService) Update(ctx context.Context, req models.UpdateNoteRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	note, err := s.seal(req.ID, req.Name, req.Body)
	if err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindNote, models.OperationEdit, note)
}

// Delete implements [NoteService].
func (s *noteService) Delete(ctx context.Context, req models.DeleteNoteRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindNote, models.OperationDelete, req)
}

// seal encrypts the name and the text, each with its own IV.
func (s *noteService) seal(id int64, name, body string) (models.Note, error) {
	key, err := s.session.SymmetricKey()
	if err != nil {
		return models.Note{}, err
	}
	defer clear(key)

	sealedName, err := s.symmetric.Encrypt([]byte(name), key)
	if err != nil {
		return models.Note{}, fmt.Errorf("seal note name: %w", err)
	}
	sealedBody, err := s.symmetric.Encrypt([]byte(body), key)
	if err != nil {
		return models.Note{}, fmt.Errorf("seal note text: %w", err)
	}

	return models.Note{ID: id, Name: sealedName, Body: sealedBody}, nil
}
