// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type authParamsRequest struct {
	Login string `json:"login" validate:"required"`
}

type authParamsResponse struct {
	EncryptionSalt string `json:"encryption_salt"`
	AuthSalt       string `json:"auth_salt"`
}

type registerRequest struct {
	Login          string `json:"login" validate:"required,email"`
	AuthHash       string `json:"auth_hash" validate:"required,base64"`
	EncryptionSalt string `json:"encryption_salt" validate:"required,base64"`
	AuthSalt       string `json:"auth_salt" validate:"required,base64"`
	PublicKey      string `json:"public_key" validate:"required_with=PrivateKey"`
	PrivateKey     string `json:"private_key" validate:"required_with=PublicKey PrivateKeyIV"`
	PrivateKeyIV   string `json:"private_key_iv" validate:"required_with=PrivateKey"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	AuthHash string `json:"auth_hash" validate:"required"`
}

type authResponse struct {
	Expiration   time.Time `json:"expiration"`
	PublicKey    string    `json:"public_key,omitempty"`
	PrivateKey   string    `json:"private_key,omitempty"`
	PrivateKeyIV string    `json:"private_key_iv,omitempty"`
}

type keyPairRequest struct {
	PublicKey    string `json:"public_key" validate:"required"`
	PrivateKey   string `json:"private_key" validate:"required"`
	PrivateKeyIV string `json:"private_key_iv" validate:"required"`
}

func (b *Backend) authParams(w http.ResponseWriter, r *http.Request) {
	var req authParamsRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	account, ok := b.accounts[req.Login]
	var resp authParamsResponse
	if ok {
		resp = authParamsResponse{EncryptionSalt: account.EncryptionSalt, AuthSalt: account.AuthSalt}
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, app.MsgUserNotFound)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	if _, exists := b.accounts[req.Login]; exists {
		b.mu.Unlock()
		writeError(w, http.StatusConflict, app.MsgLoginAlreadyExists)
		return
	}
	b.accounts[req.Login] = &Account{
		Login:          req.Login,
		AuthHash:       b.hashAuth(req.AuthHash),
		EncryptionSalt: req.EncryptionSalt,
		AuthSalt:       req.AuthSalt,
		PublicKey:      req.PublicKey,
		PrivateKey:     req.PrivateKey,
		PrivateKeyIV:   req.PrivateKeyIV,
	}
	b.mu.Unlock()

	logger.FromContext(r.Context()).Info().Str("login", req.Login).Msg("account registered")
	b.respondWithToken(w, req.Login, http.StatusCreated)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	account, ok := b.accounts[req.Login]
	valid := ok && b.authHashMatches(account.AuthHash, req.AuthHash)
	b.mu.Unlock()

	if !valid {
		writeError(w, http.StatusUnauthorized, app.MsgInvalidLoginPassword)
		return
	}
	b.respondWithToken(w, req.Login, http.StatusOK)
}

// respondWithToken sends the token in the Authorization header. The body
// carries its expiry and the account's sealed key pair, if there is one.
func (b *Backend) respondWithToken(w http.ResponseWriter, login string, status int) {
	token, expiresAt, err := b.issueToken(login)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := authResponse{Expiration: expiresAt.UTC()}
	b.mu.Lock()
	if account, ok := b.accounts[login]; ok && account.PrivateKey != "" {
		resp.PublicKey = account.PublicKey
		resp.PrivateKey = account.PrivateKey
		resp.PrivateKeyIV = account.PrivateKeyIV
	}
	b.mu.Unlock()

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, resp, status)
}

// uploadKeyPair stores the key pair of an account that has none. An
// existing pair is never replaced: grants are sealed for it.
func (b *Backend) uploadKeyPair(w http.ResponseWriter, r *http.Request) {
	var req keyPairRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	account := b.accounts[loginFromContext(r.Context())]
	if account.PublicKey != "" {
		b.mu.Unlock()
		writeError(w, http.StatusConflict, app.MsgKeyPairExists)
		return
	}
	account.PublicKey = req.PublicKey
	account.PrivateKey = req.PrivateKey
	account.PrivateKeyIV = req.PrivateKeyIV
	b.mu.Unlock()

	logger.FromContext(r.Context()).Info().Str("login", account.Login).Msg("key pair stored")
	w.WriteHeader(http.StatusNoContent)
}
