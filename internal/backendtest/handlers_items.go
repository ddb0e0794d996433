// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

type noteWrite struct {
	Name   string `json:"name" validate:"required"`
	NameIV string `json:"name_iv" validate:"required"`
	Text   string `json:"text"`
	TextIV string `json:"text_iv" validate:"required_with=Text"`
}

type noteEnvelope struct {
	Note noteWrite `json:"note" validate:"required"`
}

type noteItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameIV string `json:"name_iv"`
	Text   string `json:"text,omitempty"`
	TextIV string `json:"text_iv,omitempty"`
}

type sshKeyWrite struct {
	Name       string `json:"name" validate:"required"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key" validate:"required"`
	IV         string `json:"iv" validate:"required"`
	Notes      string `json:"notes"`
}

type sshKeyEnvelope struct {
	SSHKey sshKeyWrite `json:"sshkey" validate:"required"`
}

type sshKeyItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
	IV         string `json:"iv,omitempty"`
	Notes      string `json:"notes"`
}

// ── Notes ───────────────────────────────────────────────────────────────────

func (b *Backend) ownedNoteLocked(owner string, id int64) (*NoteRecord, bool) {
	n, ok := b.notes[id]
	if !ok || n.Owner != owner {
		return nil, false
	}
	return n, true
}

func (b *Backend) listNotes(w http.ResponseWriter, r *http.Request) {
	owner := loginFromContext(r.Context())

	b.mu.Lock()
	items := make([]noteItem, 0)
	for _, n := range sortedByID(b.notes) {
		if n.Owner == owner {
			items = append(items, noteItem{ID: n.ID, Name: n.Name, NameIV: n.NameIV})
		}
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}

func (b *Backend) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	n, ok := b.ownedNoteLocked(loginFromContext(r.Context()), id)
	var item noteItem
	if ok {
		item = noteItem{ID: n.ID, Name: n.Name, NameIV: n.NameIV, Text: n.Text, TextIV: n.TextIV}
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgNoteNotFound)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (b *Backend) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteEnvelope
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	n := &NoteRecord{
		ID:     b.newIDLocked(),
		Owner:  loginFromContext(r.Context()),
		Name:   req.Note.Name,
		NameIV: req.Note.NameIV,
		Text:   req.Note.Text,
		TextIV: req.Note.TextIV,
	}
	b.notes[n.ID] = n
	b.mu.Unlock()

	writeJSON(w, noteItem{ID: n.ID, Name: n.Name, NameIV: n.NameIV, Text: n.Text, TextIV: n.TextIV}, http.StatusCreated)
}

func (b *Backend) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req noteEnvelope
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	n, ok := b.ownedNoteLocked(loginFromContext(r.Context()), id)
	var item noteItem
	if ok {
		n.Name, n.NameIV = req.Note.Name, req.Note.NameIV
		n.Text, n.TextIV = req.Note.Text, req.Note.TextIV
		item = noteItem{ID: n.ID, Name: n.Name, NameIV: n.NameIV, Text: n.Text, TextIV: n.TextIV}
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgNoteNotFound)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (b *Backend) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	_, ok = b.ownedNoteLocked(loginFromContext(r.Context()), id)
	if ok {
		delete(b.notes, id)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgNoteNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── SSH keys ────────────────────────────────────────────────────────────────

func (b *Backend) ownedSSHKeyLocked(owner string, id int64) (*SSHKeyRecord, bool) {
	k, ok := b.sshKeys[id]
	if !ok || k.Owner != owner {
		return nil, false
	}
	return k, true
}

func sshKeyDetail(k *SSHKeyRecord) sshKeyItem {
	return sshKeyItem{
		ID:         k.ID,
		Name:       k.Name,
		PublicKey:  k.PublicKey,
		PrivateKey: k.PrivateKey,
		IV:         k.IV,
		Notes:      k.Notes,
	}
}

func (b *Backend) listSSHKeys(w http.ResponseWriter, r *http.Request) {
	owner := loginFromContext(r.Context())

	b.mu.Lock()
	items := make([]sshKeyItem, 0)
	for _, k := range sortedByID(b.sshKeys) {
		if k.Owner == owner {
			items = append(items, sshKeyItem{ID: k.ID, Name: k.Name, PublicKey: k.PublicKey, Notes: k.Notes})
		}
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}

func (b *Backend) getSSHKey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	k, ok := b.ownedSSHKeyLocked(loginFromContext(r.Context()), id)
	var item sshKeyItem
	if ok {
		item = sshKeyDetail(k)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgSSHKeyNotFound)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (b *Backend) createSSHKey(w http.ResponseWriter, r *http.Request) {
	var req sshKeyEnvelope
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	k := &SSHKeyRecord{
		ID:         b.newIDLocked(),
		Owner:      loginFromContext(r.Context()),
		Name:       req.SSHKey.Name,
		PublicKey:  req.SSHKey.PublicKey,
		PrivateKey: req.SSHKey.PrivateKey,
		IV:         req.SSHKey.IV,
		Notes:      req.SSHKey.Notes,
	}
	b.sshKeys[k.ID] = k
	item := sshKeyDetail(k)
	b.mu.Unlock()

	writeJSON(w, item, http.StatusCreated)
}

// updateSSHKey only rewrites metadata. The key material is immutable; an
// omitted public key keeps the stored one.
func (b *Backend) updateSSHKey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		SSHKey struct {
			Name      string `json:"name" validate:"required"`
			PublicKey string `json:"public_key"`
			Notes     string `json:"notes"`
		} `json:"sshkey" validate:"required"`
	}
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	k, ok := b.ownedSSHKeyLocked(loginFromContext(r.Context()), id)
	var item sshKeyItem
	if ok {
		k.Name = req.SSHKey.Name
		k.Notes = req.SSHKey.Notes
		if req.SSHKey.PublicKey != "" {
			k.PublicKey = req.SSHKey.PublicKey
		}
		item = sshKeyDetail(k)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgSSHKeyNotFound)
		return
	}
	writeJSON(w, item, http.StatusOK)
}

func (b *Backend) deleteSSHKey(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	_, ok = b.ownedSSHKeyLocked(loginFromContext(r.Context()), id)
	if ok {
		delete(b.sshKeys, id)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgSSHKeyNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
