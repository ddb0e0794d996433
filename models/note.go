// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a secure note. Name and body are sealed under separate IVs.
type Note struct {
	ID   int64
	Name Secret
	Body Secret
}

// NoteRow is the notes list projection. The name is opened for display; when
// it cannot be opened NameUnavailable is set and Name stays empty.
type NoteRow struct {
	ID              int64
	Name            string
	NameUnavailable bool
}

// RowID implements [Identified].
func (r NoteRow) RowID() int64 { return r.ID }

// NoteContent is an opened note.
type NoteContent struct {
	ID   int64
	Name string
	Body string
}
