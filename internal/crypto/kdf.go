// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of encryption and auth salts in bytes.
const SaltSize = 16

// Argon2Params tunes Argon2id. The zero value is replaced by the defaults.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params follows the OWASP recommendation for Argon2id:
// 1 iteration, 64 MiB, 4 lanes.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

type keyDerivation struct {
	params Argon2Params
	random io.Reader
}

// NewKeyDerivation returns an Argon2id [KeyDerivation].
func NewKeyDerivation(params Argon2Params) KeyDerivation {
	if params.Time == 0 {
		params.Time = DefaultArgon2Params.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Params.Threads
	}
	return &keyDerivation{params: params, random: rand.Reader}
}

func (k *keyDerivation) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (k *keyDerivation) DeriveKey(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		SymmetricKeySize,
	)
}

func (k *keyDerivation) AuthHash(key []byte, authSalt string) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(authSalt)) // keeps the auth hash apart from the key itself
	return h.Sum(nil)
}
