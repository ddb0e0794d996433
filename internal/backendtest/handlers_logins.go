// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

type urlAttributes struct {
	ID  *int64 `json:"id,omitempty"`
	URI string `json:"uri"`
}

type fieldAttributes struct {
	ID    *int64 `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type loginWrite struct {
	Name         string            `json:"name" validate:"required"`
	Username     string            `json:"login_name"`
	Password     string            `json:"login_password" validate:"required"`
	IV           string            `json:"iv" validate:"required"`
	URLs         []urlAttributes   `json:"urls_attributes" validate:"dive"`
	Notes        string            `json:"notes"`
	CustomFields []fieldAttributes `json:"custom_fields_attributes"`
	IsFavorite   bool              `json:"is_favorite"`
	FolderID     *int64            `json:"folder_id"`
}

type loginEnvelope struct {
	Login loginWrite `json:"login" validate:"required"`
}

// loginListItem is the list shape: URLs are plain strings and the password
// stays on the server.
type loginListItem struct {
	ID         int64    `json:"login_id"`
	Name       string   `json:"name"`
	Username   string   `json:"login_name"`
	URLs       []string `json:"urls"`
	IsFavorite bool     `json:"is_favorite"`
	FolderID   *int64   `json:"folder_id,omitempty"`
}

type urlItem struct {
	ID  int64  `json:"id"`
	URI string `json:"uri"`
}

type fieldItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type loginDetail struct {
	ID           int64       `json:"login_id"`
	Name         string      `json:"name"`
	Username     string      `json:"login_name"`
	Password     string      `json:"login_password"`
	IV           string      `json:"iv"`
	URLs         []urlItem   `json:"urls"`
	Notes        string      `json:"notes"`
	CustomFields []fieldItem `json:"custom_fields"`
	IsFavorite   bool        `json:"is_favorite"`
	FolderID     *int64      `json:"folder_id,omitempty"`
}

type trashItem struct {
	LoginID   int64     `json:"login_id"`
	Name      string    `json:"name"`
	URLs      []string  `json:"urls"`
	TrashDate time.Time `json:"trash_date"`
}

type folderItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newLoginDetail(l *LoginRecord) loginDetail {
	d := loginDetail{
		ID:           l.ID,
		Name:         l.Name,
		Username:     l.Username,
		Password:     l.Password,
		IV:           l.IV,
		URLs:         make([]urlItem, 0, len(l.URLs)),
		Notes:        l.Notes,
		CustomFields: make([]fieldItem, 0, len(l.CustomFields)),
		IsFavorite:   l.IsFavorite,
		FolderID:     l.FolderID,
	}
	for _, u := range l.URLs {
		d.URLs = append(d.URLs, urlItem{ID: u.ID, URI: u.URI})
	}
	for _, f := range l.CustomFields {
		d.CustomFields = append(d.CustomFields, fieldItem{ID: f.ID, Name: f.Name, Value: f.Value})
	}
	return d
}

// matches reports whether l passes the search and folder filters of the
// logins list. Folder 0 selects logins without a folder.
func (l *LoginRecord) matches(search string, folderID *int64) bool {
	if folderID != nil {
		switch {
		case *folderID == 0 && l.FolderID != nil:
			return false
		case *folderID != 0 && (l.FolderID == nil || *l.FolderID != *folderID):
			return false
		}
	}
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(l.Name), search) || strings.Contains(strings.ToLower(l.Username), search) {
		return true
	}
	for _, u := range l.URLs {
		if strings.Contains(strings.ToLower(u.URI), search) {
			return true
		}
	}
	return false
}

// applyLoginWriteLocked copies the written fields into l. URLs and custom fields are
// replaced; entries that carry a known id keep it.
func (b *Backend) applyLoginWriteLocked(l *LoginRecord, w loginWrite) {
	l.Name = w.Name
	l.Username = w.Username
	l.Password = w.Password
	l.IV = w.IV
	l.Notes = w.Notes
	l.IsFavorite = w.IsFavorite
	l.FolderID = w.FolderID

	known := make(map[int64]bool, len(l.URLs))
	for _, u := range l.URLs {
		known[u.ID] = true
	}
	urls := make([]URLRecord, 0, len(w.URLs))
	for _, u := range w.URLs {
		if u.URI == "" {
			continue
		}
		id := b.newIDLocked()
		if u.ID != nil && known[*u.ID] {
			id = *u.ID
		}
		urls = append(urls, URLRecord{ID: id, URI: u.URI})
	}
	l.URLs = urls

	fields := make([]FieldRecord, 0, len(w.CustomFields))
	for _, f := range w.CustomFields {
		id := b.newIDLocked()
		if f.ID != nil {
			id = *f.ID
		}
		fields = append(fields, FieldRecord{ID: id, Name: f.Name, Value: f.Value})
	}
	l.CustomFields = fields
}

// ownedLoginLocked looks up login id of owner. Trashed logins are only
// returned when trashed is true, live ones only when it is false.
func (b *Backend) ownedLoginLocked(owner string, id int64, trashed bool) (*LoginRecord, bool) {
	l, ok := b.logins[id]
	if !ok || l.Owner != owner || (l.TrashedAt != nil) != trashed {
		return nil, false
	}
	return l, true
}

func (b *Backend) listLogins(w http.ResponseWriter, r *http.Request) {
	owner := loginFromContext(r.Context())
	search := r.URL.Query().Get("search")

	var folderID *int64
	if raw := r.URL.Query().Get("folder_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, app.MsgInvalidFolderID)
			return
		}
		folderID = &id
	}

	b.mu.Lock()
	items := make([]loginListItem, 0)
	for _, l := range sortedByID(b.logins) {
		if l.Owner != owner || l.TrashedAt != nil || !l.matches(search, folderID) {
			continue
		}
		items = append(items, loginListItem{
			ID:         l.ID,
			Name:       l.Name,
			Username:   l.Username,
			URLs:       l.uris(),
			IsFavorite: l.IsFavorite,
			FolderID:   l.FolderID,
		})
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}

func (b *Backend) getLogin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	l, ok := b.ownedLoginLocked(loginFromContext(r.Context()), id, false)
	var detail loginDetail
	if ok {
		detail = newLoginDetail(l)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgLoginNotFound)
		return
	}
	writeJSON(w, detail, http.StatusOK)
}

func (b *Backend) createLogin(w http.ResponseWriter, r *http.Request) {
	var req loginEnvelope
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	l := &LoginRecord{ID: b.newIDLocked(), Owner: loginFromContext(r.Context())}
	b.applyLoginWriteLocked(l, req.Login)
	b.logins[l.ID] = l
	detail := newLoginDetail(l)
	b.mu.Unlock()

	writeJSON(w, detail, http.StatusCreated)
}

func (b *Backend) updateLogin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req loginEnvelope
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	l, ok := b.ownedLoginLocked(loginFromContext(r.Context()), id, false)
	var detail loginDetail
	if ok {
		b.applyLoginWriteLocked(l, req.Login)
		detail = newLoginDetail(l)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgLoginNotFound)
		return
	}
	writeJSON(w, detail, http.StatusOK)
}

func (b *Backend) trashLogin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	l, ok := b.ownedLoginLocked(loginFromContext(r.Context()), id, false)
	if ok {
		now := b.now().UTC()
		l.TrashedAt = &now
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgLoginNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) listTrash(w http.ResponseWriter, r *http.Request) {
	owner := loginFromContext(r.Context())

	b.mu.Lock()
	items := make([]trashItem, 0)
	for _, l := range sortedByID(b.logins) {
		if l.Owner != owner || l.TrashedAt == nil {
			continue
		}
		items = append(items, trashItem{LoginID: l.ID, Name: l.Name, URLs: l.uris(), TrashDate: *l.TrashedAt})
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}

func (b *Backend) restoreTrash(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	l, ok := b.ownedLoginLocked(loginFromContext(r.Context()), id, true)
	if ok {
		l.TrashedAt = nil
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgTrashedLoginNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) purgeTrash(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	_, ok = b.ownedLoginLocked(loginFromContext(r.Context()), id, true)
	if ok {
		delete(b.logins, id)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgTrashedLoginNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) listFolders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	stored := b.folders[loginFromContext(r.Context())]
	items := make([]folderItem, 0, len(stored))
	for _, f := range stored {
		items = append(items, folderItem{ID: f.ID, Name: f.Name})
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}
