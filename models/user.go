// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account the client is logged in as.
type User struct {
	// Login is the user's email. It is also the address other users type to
	// share a credential with them.
	Login string

	// MasterPassword is the plaintext master password as typed by the user.
	// It lives only for the duration of a login or register call and is
	// never persisted or sent to the server.
	MasterPassword string
}

// AuthParams are the key-derivation parameters the server keeps for a user.
// They are not secret.
type AuthParams struct {
	// EncryptionSalt is the base64 salt the session key is derived with.
	EncryptionSalt string

	// AuthSalt is the base64 salt the server-side auth hash is built with.
	AuthSalt string
}

// AuthResult is what the server returns for a successful login.
type AuthResult struct {
	// Token is the bearer token for subsequent requests.
	Token string

	// ExpiresAt is the session expiry as reported by the server. Zero when
	// the server left it out; the token's own exp claim is used then.
	ExpiresAt time.Time

	// KeyPair is the account's sharing key pair as the server keeps it, with
	// the private key still sealed. Nil for an account that has none yet.
	KeyPair *KeyPair
}

// LocalSession is the persisted part of a session that lets the client
// unlock an unexpired session without another round trip.
type LocalSession struct {
	Login          string
	Token          string
	ExpiresAt      time.Time
	EncryptionSalt string
	AuthSalt       string
}

// KeyPair is the user's sharing key pair. It is created once per account;
// the server keeps the authoritative copy and every device caches it in
// local storage. The private key is PKCS#8 DER sealed under the session
// symmetric key, so neither copy is readable without the master password.
type KeyPair struct {
	Login               string
	PublicKeyPEM        string
	EncryptedPrivateKey Secret
	CreatedAt           time.Time
}
