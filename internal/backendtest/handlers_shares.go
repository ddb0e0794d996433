// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

type shareWrite struct {
	LoginID  int64           `json:"login_id" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,base64"`
	Name     string          `json:"name"`
	Username string          `json:"login_name"`
	URLs     []urlAttributes `json:"urls_attributes"`
}

type shareEnvelope struct {
	Share shareWrite `json:"shared_login_datum" validate:"required"`
}

type shareItem struct {
	ID         int64    `json:"id"`
	LoginID    int64    `json:"login_id"`
	Name       string   `json:"name"`
	Username   string   `json:"login_name"`
	URLs       []string `json:"urls"`
	SharedBy   string   `json:"shared_by"`
	SharedWith string   `json:"shared_with"`
	Password   string   `json:"password"`
}

type recipientKeyResponse struct {
	PublicKey string `json:"public_key"`
}

func newShareItem(s *ShareRecord) shareItem {
	urls := s.URLs
	if urls == nil {
		urls = []string{}
	}
	return shareItem{
		ID:         s.ID,
		LoginID:    s.LoginID,
		Name:       s.Name,
		Username:   s.Username,
		URLs:       urls,
		SharedBy:   s.SharedBy,
		SharedWith: s.SharedWith,
		Password:   s.Password,
	}
}

// listShares returns the grants made to the caller, or with by_me=true the
// grants the caller made.
func (b *Backend) listShares(w http.ResponseWriter, r *http.Request) {
	caller := loginFromContext(r.Context())
	byMe := r.URL.Query().Get("by_me") == "true"

	b.mu.Lock()
	items := make([]shareItem, 0)
	for _, s := range sortedByID(b.shares) {
		if (byMe && s.SharedBy == caller) || (!byMe && s.SharedWith == caller) {
			items = append(items, newShareItem(s))
		}
	}
	b.mu.Unlock()

	writeJSON(w, items, http.StatusOK)
}

// recipientKey returns the public key of the account an email belongs to.
// Unknown accounts, accounts without a published key and the caller itself
// are answered with 404.
func (b *Backend) recipientKey(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	caller := loginFromContext(r.Context())

	b.mu.Lock()
	account, ok := b.accounts[email]
	var publicKey string
	if ok {
		publicKey = account.PublicKey
	}
	b.mu.Unlock()

	if !ok || publicKey == "" || email == caller {
		writeError(w, http.StatusNotFound, app.MsgUserNotFound)
		return
	}
	writeJSON(w, recipientKeyResponse{PublicKey: publicKey}, http.StatusOK)
}

func (b *Backend) createShare(w http.ResponseWriter, r *http.Request) {
	var req shareEnvelope
	if !b.decode(w, r, &req) {
		return
	}
	caller := loginFromContext(r.Context())

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.ownedLoginLocked(caller, req.Share.LoginID, false); !ok {
		writeError(w, http.StatusNotFound, app.MsgLoginNotFound)
		return
	}
	if _, ok := b.accounts[req.Share.Email]; !ok || req.Share.Email == caller {
		writeError(w, http.StatusNotFound, app.MsgUserNotFound)
		return
	}
	for _, s := range b.shares {
		if s.LoginID == req.Share.LoginID && s.SharedWith == req.Share.Email {
			writeError(w, http.StatusConflict, app.MsgAlreadyShared)
			return
		}
	}

	urls := make([]string, 0, len(req.Share.URLs))
	for _, u := range req.Share.URLs {
		urls = append(urls, u.URI)
	}
	s := &ShareRecord{
		ID:         b.newIDLocked(),
		LoginID:    req.Share.LoginID,
		Name:       req.Share.Name,
		Username:   req.Share.Username,
		URLs:       slices.Clip(urls),
		SharedBy:   caller,
		SharedWith: req.Share.Email,
		Password:   req.Share.Password,
	}
	b.shares[s.ID] = s

	writeJSON(w, newShareItem(s), http.StatusCreated)
}

// deleteShare lets either side of a grant remove it. The source login is
// not touched.
func (b *Backend) deleteShare(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	caller := loginFromContext(r.Context())

	b.mu.Lock()
	s, ok := b.shares[id]
	ok = ok && (s.SharedBy == caller || s.SharedWith == caller)
	if ok {
		delete(b.shares, id)
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgSharedLoginNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
