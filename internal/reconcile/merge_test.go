// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func ptr(v int64) *int64 { return &v }

func authoritativeLogins() []models.LoginRow {
	return []models.LoginRow{
		{ID: 1, Name: "A", Username: "alice", URL: "a.example"},
		{ID: 2, Name: "B", Username: "bob", URL: "b.example"},
	}
}

func TestMerge_PendingAdd(t *testing.T) {
	rows := Merge(authoritativeLogins(), []models.LoginRow{{Name: "C"}}, nil, nil)

	require.Len(t, rows, 3)
	assert.Equal(t, models.DisplayRow[models.LoginRow]{Entity: authoritativeLogins()[0], ID: ptr(1), Actionable: true}, rows[0])
	assert.Equal(t, models.DisplayRow[models.LoginRow]{Entity: authoritativeLogins()[1], ID: ptr(2), Actionable: true}, rows[1])
	assert.Equal(t, models.DisplayRow[models.LoginRow]{Entity: models.LoginRow{Name: "C"}, Tag: models.TagPendingAdd}, rows[2])
	assert.Nil(t, rows[2].ID)
}

func TestMerge_EditTakesPrecedenceOverDelete(t *testing.T) {
	edit := models.LoginRow{ID: 1, Name: "A2", Username: "alice", URL: "a.example"}

	rows := Merge(authoritativeLogins(), nil, []models.LoginRow{edit}, []int64{1})

	require.Len(t, rows, 2)
	assert.Equal(t, edit, rows[0].Entity)
	assert.Equal(t, models.TagPendingEdit, rows[0].Tag)
	assert.False(t, rows[0].Actionable)
	assert.Equal(t, ptr(1), rows[0].ID)

	assert.Equal(t, models.TagNone, rows[1].Tag)
	assert.True(t, rows[1].Actionable)
}

func TestMerge_PendingDelete(t *testing.T) {
	rows := Merge(authoritativeLogins(), nil, nil, []int64{2})

	require.Len(t, rows, 2)
	assert.True(t, rows[0].Actionable)
	assert.Equal(t, authoritativeLogins()[1], rows[1].Entity, "deleted entity keeps its content")
	assert.Equal(t, models.TagPendingDelete, rows[1].Tag)
	assert.False(t, rows[1].Actionable)
}

func TestMerge_EmptyOverlayIsIdentity(t *testing.T) {
	rows := Merge(authoritativeLogins(), nil, nil, nil)

	require.Len(t, rows, 2)
	for i, r := range rows {
		assert.Equal(t, authoritativeLogins()[i], r.Entity)
		assert.Equal(t, models.TagNone, r.Tag)
		assert.True(t, r.Actionable)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	auth := authoritativeLogins()
	adds := []models.LoginRow{{Name: "C"}, {Name: "D"}}
	edits := []models.LoginRow{{ID: 2, Name: "B2"}}
	deletes := []int64{1, 99}

	first := Merge(auth, adds, edits, deletes)
	second := Merge(auth, adds, edits, deletes)

	assert.Equal(t, first, second)
	assert.Equal(t, authoritativeLogins(), auth, "inputs must not be modified")
}

func TestMerge_UnknownTargetsAreIgnored(t *testing.T) {
	rows := Merge(authoritativeLogins(), nil, []models.LoginRow{{ID: 42, Name: "ghost"}}, []int64{43})

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, models.TagNone, r.Tag)
	}
}

func TestMerge_LastEditWins(t *testing.T) {
	edits := []models.LoginRow{{ID: 1, Name: "first"}, {ID: 1, Name: "second"}}

	rows := Merge(authoritativeLogins(), nil, edits, nil)

	assert.Equal(t, "second", rows[0].Entity.Name)
}

func TestMerge_AddsKeepSubmissionOrder(t *testing.T) {
	adds := []models.NoteRow{{Name: "1"}, {Name: "2"}, {Name: "3"}}

	rows := Merge(nil, adds, nil, nil)

	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, adds[i].Name, r.Entity.Name)
		assert.Equal(t, models.TagPendingAdd, r.Tag)
		assert.False(t, r.Actionable)
	}
}

func TestTargetIDs(t *testing.T) {
	ids := TargetIDs([]models.TrashLoginRequest{{ID: 3}, {ID: 5}})
	assert.Equal(t, []int64{3, 5}, ids)
	assert.Empty(t, TargetIDs[models.RevokeShareRequest](nil))
}
