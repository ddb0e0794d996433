// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/reconcile"
	"github.com/MKhiriev/go-pass-vault/models"
)

type trashService struct {
	*core
}

// List implements [TrashService]. A pending restore is shown as a
// pending-edit of the trashed row, a pending purge as a pending-delete.
func (s *trashService) List(ctx context.Context) ([]models.DisplayRow[models.TrashRow], error) {
	trashed, err := Query(ctx, s.cache, QueryKey{Kind: models.KindTrash}, s.adapter.ListTrash)
	if err != nil {
		return nil, s.fetchError(err)
	}
	rows := mapRows(trashed, models.TrashedLogin.Row)

	restoring := make(map[int64]struct{})
	for req := range mutation.PendingOf[models.RestoreTrashRequest](s.tracker, models.KindTrash, models.OperationEdit) {
		restoring[req.LoginID] = struct{}{}
	}
	var edits []models.TrashRow
	for _, row := range rows {
		if _, ok := restoring[row.ID]; ok {
			edits = append(edits, row)
		}
	}
	deletes := reconcile.TargetIDs(pendingSlice[models.PurgeTrashRequest](s.tracker, models.KindTrash, models.OperationDelete))

	return reconcile.Merge(rows, nil, edits, deletes), nil
}

// Restore implements [TrashService].
func (s *trashService) Restore(ctx context.Context, req models.RestoreTrashRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindTrash, models.OperationEdit, req)
}

// Purge implements [TrashService]. A purged login is gone for good.
func (s *trashService) Purge(ctx context.Context, req models.PurgeTrashRequest) (mutation.Handle, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	return s.submit(ctx, models.KindTrash, models.OperationDelete, req)
}
