// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile overlays in-flight mutations on an authoritative
// collection to produce the rows a list view renders.
package reconcile

import (
	"github.com/MKhiriev/go-pass-vault/models"
)

// Merge overlays pending mutations on the authoritative collection.
//
// For every authoritative entity, in order: a pending edit with the same id
// replaces the entity and tags it pending-edit; otherwise a pending delete
// with the same id tags it pending-delete; otherwise the entity passes
// through untagged. When several edits target one id the last one wins.
// Pending adds follow as rows without an id, in submission order.
//
// Only untagged rows are actionable. Merge has no side effects and does not
// modify its inputs.
func Merge[T models.Identified](authoritative []T, adds, edits []T, deletes []int64) []models.DisplayRow[T] {
	editByID := make(map[int64]T, len(edits))
	for _, e := range edits {
		editByID[e.RowID()] = e
	}

	deleted := make(map[int64]struct{}, len(deletes))
	for _, id := range deletes {
		deleted[id] = struct{}{}
	}

	rows := make([]models.DisplayRow[T], 0, len(authoritative)+len(adds))

	for _, entity := range authoritative {
		id := entity.RowID()
		row := models.DisplayRow[T]{Entity: entity, ID: &id}

		if edit, ok := editByID[id]; ok {
			row.Entity = edit
			row.Tag = models.TagPendingEdit
		} else if _, ok := deleted[id]; ok {
			row.Tag = models.TagPendingDelete
		} else {
			row.Actionable = true
		}

		rows = append(rows, row)
	}

	for _, add := range adds {
		rows = append(rows, models.DisplayRow[T]{Entity: add, Tag: models.TagPendingAdd})
	}

	return rows
}

// TargetIDs collects the ids addressed by pending targeted mutations.
func TargetIDs[M models.Targeted](pending []M) []int64 {
	ids := make([]int64, 0, len(pending))
	for _, m := range pending {
		ids = append(ids, m.TargetID())
	}
	return ids
}
