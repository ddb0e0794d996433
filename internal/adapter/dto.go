// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Wire shapes of the backend. Secrets travel as ciphertext plus IV in flat
// fields; request bodies are wrapped in a resource key.

type urlDTO struct {
	ID  *int64 `json:"id,omitempty"`
	URI string `json:"uri"`
}

// urlList accepts both the list shape (["a.com"]) and the detail shape
// ([{"id":1,"uri":"a.com"}]).
type urlList []urlDTO

func (u *urlList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*u = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(urlList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, urlDTO{URI: s})
			continue
		}
		var obj urlDTO
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		out = append(out, obj)
	}
	*u = out
	return nil
}

type customFieldDTO struct {
	ID    *int64 `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type loginDTO struct {
	ID           int64            `json:"login_id"`
	Name         string           `json:"name"`
	Username     string           `json:"login_name"`
	Password     string           `json:"login_password,omitempty"`
	IV           string           `json:"iv,omitempty"`
	URLs         urlList          `json:"urls,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CustomFields []customFieldDTO `json:"custom_fields,omitempty"`
	IsFavorite   bool             `json:"is_favorite"`
	FolderID     *int64           `json:"folder_id,omitempty"`
	File         *string          `json:"file,omitempty"`
}

type loginWriteDTO struct {
	Name         string           `json:"name"`
	Username     string           `json:"login_name"`
	Password     string           `json:"login_password"`
	IV           string           `json:"iv"`
	URLs         []urlDTO         `json:"urls_attributes"`
	Notes        string           `json:"notes"`
	CustomFields []customFieldDTO `json:"custom_fields_attributes"`
	IsFavorite   bool             `json:"is_favorite"`
	FolderID     *int64           `json:"folder_id"`
}

type loginEnvelope struct {
	Login loginWriteDTO `json:"login"`
}

func (d loginDTO) toModel() models.Login {
	login := models.Login{
		ID:         d.ID,
		Name:       d.Name,
		Username:   d.Username,
		Password:   models.Secret{Ciphertext: d.Password, IV: d.IV},
		Notes:      d.Notes,
		IsFavorite: d.IsFavorite,
		FolderID:   d.FolderID,
		File:       d.File,
	}
	for _, u := range d.URLs {
		login.URLs = append(login.URLs, models.LoginURL{ID: u.ID, URI: u.URI})
	}
	for _, f := range d.CustomFields {
		login.CustomFields = append(login.CustomFields, models.CustomField{ID: f.ID, Name: f.Name, Value: f.Value})
	}
	return login
}

func newLoginEnvelope(l models.Login) loginEnvelope {
	w := loginWriteDTO{
		Name:         l.Name,
		Username:     l.Username,
		Password:     l.Password.Ciphertext,
		IV:           l.Password.IV,
		URLs:         make([]urlDTO, 0, len(l.URLs)),
		Notes:        l.Notes,
		CustomFields: make([]customFieldDTO, 0, len(l.CustomFields)),
		IsFavorite:   l.IsFavorite,
		FolderID:     l.FolderID,
	}
	for _, u := range l.URLs {
		w.URLs = append(w.URLs, urlDTO{ID: u.ID, URI: u.URI})
	}
	for _, f := range l.CustomFields {
		w.CustomFields = append(w.CustomFields, customFieldDTO{ID: f.ID, Name: f.Name, Value: f.Value})
	}
	return loginEnvelope{Login: w}
}

type noteDTO struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	NameIV string `json:"name_iv"`
	Text   string `json:"text,omitempty"`
	TextIV string `json:"text_iv,omitempty"`
}

type noteEnvelope struct {
	Note noteDTO `json:"note"`
}

func (d noteDTO) toModel() models.Note {
	return models.Note{
		ID:   d.ID,
		Name: models.Secret{Ciphertext: d.Name, IV: d.NameIV},
		Body: models.Secret{Ciphertext: d.Text, IV: d.TextIV},
	}
}

func newNoteEnvelope(n models.Note) noteEnvelope {
	return noteEnvelope{Note: noteDTO{
		Name:   n.Name.Ciphertext,
		NameIV: n.Name.IV,
		Text:   n.Body.Ciphertext,
		TextIV: n.Body.IV,
	}}
}

type sshKeyDTO struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	PublicKey  string `json:"public_key,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	IV         string `json:"iv,omitempty"`
	Notes      string `json:"notes"`
}

type sshKeyEnvelope struct {
	SSHKey sshKeyDTO `json:"sshkey"`
}

func (d sshKeyDTO) toModel() models.SSHKey {
	return models.SSHKey{
		ID:         d.ID,
		Name:       d.Name,
		PublicKey:  d.PublicKey,
		PrivateKey: models.Secret{Ciphertext: d.PrivateKey, IV: d.IV},
		Notes:      d.Notes,
	}
}

func newSSHKeyEnvelope(k models.SSHKey) sshKeyEnvelope {
	return sshKeyEnvelope{SSHKey: sshKeyDTO{
		Name:       k.Name,
		PublicKey:  k.PublicKey,
		PrivateKey: k.PrivateKey.Ciphertext,
		IV:         k.PrivateKey.IV,
		Notes:      k.Notes,
	}}
}

type sharedLoginDTO struct {
	ID         int64    `json:"id"`
	LoginID    int64    `json:"login_id"`
	Name       string   `json:"name"`
	Username   string   `json:"login_name"`
	URLs       []string `json:"urls"`
	SharedBy   string   `json:"shared_by"`
	SharedWith string   `json:"shared_with"`
	Password   string   `json:"password"`
}

type sharedLoginWriteDTO struct {
	LoginID  int64    `json:"login_id"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Username string   `json:"login_name"`
	URLs     []urlDTO `json:"urls_attributes"`
}

type sharedLoginEnvelope struct {
	SharedLogin sharedLoginWriteDTO `json:"shared_login_datum"`
}

func (d sharedLoginDTO) toModel() models.SharedLogin {
	return models.SharedLogin{
		ID:         d.ID,
		LoginID:    d.LoginID,
		Name:       d.Name,
		Username:   d.Username,
		URLs:       d.URLs,
		SharedBy:   d.SharedBy,
		SharedWith: d.SharedWith,
		Password:   d.Password,
	}
}

func newSharedLoginEnvelope(g models.SharedLogin) sharedLoginEnvelope {
	w := sharedLoginWriteDTO{
		LoginID:  g.LoginID,
		Email:    g.SharedWith,
		Password: g.Password,
		Name:     g.Name,
		Username: g.Username,
		URLs:     make([]urlDTO, 0, len(g.URLs)),
	}
	for _, u := range g.URLs {
		w.URLs = append(w.URLs, urlDTO{URI: u})
	}
	return sharedLoginEnvelope{SharedLogin: w}
}

type recipientKeyDTO struct {
	PublicKey string `json:"public_key"`
	Error     string `json:"error"`
}

type trashDTO struct {
	LoginID   int64     `json:"login_id"`
	Name      string    `json:"name"`
	URLs      []string  `json:"urls"`
	TrashDate time.Time `json:"trash_date"`
}

func (d trashDTO) toModel() models.TrashedLogin {
	return models.TrashedLogin{LoginID: d.LoginID, Name: d.Name, URLs: d.URLs, TrashDate: d.TrashDate}
}

type folderDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type authParamsDTO struct {
	EncryptionSalt string `json:"encryption_salt"`
	AuthSalt       string `json:"auth_salt"`
}

type loginRequestDTO struct {
	Login    string `json:"login"`
	AuthHash string `json:"auth_hash"`
}

type authResponseDTO struct {
	Expiration   *time.Time `json:"expiration"`
	PublicKey    string     `json:"public_key,omitempty"`
	PrivateKey   string     `json:"private_key,omitempty"`
	PrivateKeyIV string     `json:"private_key_iv,omitempty"`
}

// keyPair returns the sealed pair carried by the response, if complete.
func (d authResponseDTO) keyPair() *models.KeyPair {
	if d.PublicKey == "" || d.PrivateKey == "" || d.PrivateKeyIV == "" {
		return nil
	}
	return &models.KeyPair{
		PublicKeyPEM:        d.PublicKey,
		EncryptedPrivateKey: models.Secret{Ciphertext: d.PrivateKey, IV: d.PrivateKeyIV},
	}
}

type keyPairDTO struct {
	PublicKey    string `json:"public_key"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyIV string `json:"private_key_iv"`
}

func mapSlice[D any, M any](in []D, fn func(D) M) []M {
	out := make([]M, 0, len(in))
	for _, d := range in {
		out = append(out, fn(d))
	}
	return out
}
