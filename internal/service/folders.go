// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type folderService struct {
	*core
}

// List implements [FolderService].
func (s *folderService) List(ctx context.Context) ([]models.Folder, error) {
	folders, err := Query(ctx, s.cache, QueryKey{Kind: models.KindFolder}, s.adapter.ListFolders)
	if err != nil {
		return nil, s.fetchError(err)
	}

	out := make([]models.Folder, 0, len(folders)+1)
	out = append(out, models.NoFolder)
	for _, f := range folders {
		if f.ID == models.NoFolderID {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
