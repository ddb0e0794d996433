// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// SymmetricKeySize is the AES-256 key size in bytes.
	SymmetricKeySize = 32

	// IVSize is the GCM nonce size in bytes.
	IVSize = 12
)

type symmetricCodec struct {
	random io.Reader
}

// NewSymmetricCodec returns the AES-256-GCM [SymmetricCodec].
func NewSymmetricCodec() SymmetricCodec {
	return &symmetricCodec{random: rand.Reader}
}

func (s *symmetricCodec) Encrypt(plaintext, key []byte) (models.Secret, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return models.Secret{}, fmt.Errorf("%w: generate iv: %w", ErrEncoding, err)
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)

	return models.Secret{
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
		IV:         base64.StdEncoding.EncodeToString(iv),
	}, nil
}

func (s *symmetricCodec) Decrypt(ciphertext, iv string, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	rawIV, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %w", ErrDecryption, err)
	}
	if len(rawIV) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecryption, IVSize, len(rawIV))
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %w", ErrDecryption, err)
	}

	// Open authenticates before it returns anything, so a wrong key or a
	// flipped bit can only surface as an error.
	plaintext, err := gcm.Open(nil, rawIV, sealed, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

func (s *symmetricCodec) DecryptSecret(secret models.Secret, key []byte) ([]byte, error) {
	if !secret.IsComplete() {
		return nil, fmt.Errorf("%w: incomplete secret", ErrDecryption)
	}
	return s.Decrypt(secret.Ciphertext, secret.IV, key)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", SymmetricKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
