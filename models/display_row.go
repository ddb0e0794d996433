// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identified is implemented by every row type a list view renders.
type Identified interface {
	RowID() int64
}

// PendingTag describes which in-flight mutation, if any, a row reflects.
type PendingTag int

const (
	TagNone PendingTag = iota
	TagPendingEdit
	TagPendingDelete
	TagPendingAdd
)

func (t PendingTag) String() string {
	switch t {
	case TagPendingEdit:
		return "pending-edit"
	case TagPendingDelete:
		return "pending-delete"
	case TagPendingAdd:
		return "pending-add"
	default:
		return "none"
	}
}

// DisplayRow is one row of a reconciled list view.
type DisplayRow[T Identified] struct {
	// Entity is the row content. For a pending edit it is the edit payload.
	Entity T

	// ID is nil for pending adds, which have no server id yet.
	ID *int64

	Tag PendingTag

	// Actionable is false for every row with a pending mutation: such rows
	// must not offer edit, delete or share.
	Actionable bool
}

// IsPending reports whether the row reflects an unconfirmed mutation.
func (r DisplayRow[T]) IsPending() bool {
	return r.Tag != TagNone
}
