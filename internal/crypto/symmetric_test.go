// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, SymmetricKeySize)
}

func TestSymmetricCodec_RoundTrip(t *testing.T) {
	codec := NewSymmetricCodec()
	key := testKey(0x11)

	for _, plaintext := range []string{"", "hunter2", "пароль с юникодом 🔑", string(bytes.Repeat([]byte("x"), 4096))} {
		secret, err := codec.Encrypt([]byte(plaintext), key)
		require.NoError(t, err)

		iv, err := base64.StdEncoding.DecodeString(secret.IV)
		require.NoError(t, err)
		assert.Len(t, iv, IVSize)

		got, err := codec.Decrypt(secret.Ciphertext, secret.IV, key)
		require.NoError(t, err)
		assert.Equal(t, plaintext, string(got))
	}
}

func TestSymmetricCodec_FreshIVPerEncryption(t *testing.T) {
	codec := NewSymmetricCodec()
	key := testKey(0x22)

	a, err := codec.Encrypt([]byte("same"), key)
	require.NoError(t, err)
	b, err := codec.Encrypt([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

func TestSymmetricCodec_DecryptFailures(t *testing.T) {
	codec := NewSymmetricCodec()
	key := testKey(0x33)

	secret, err := codec.Encrypt([]byte("top secret"), key)
	require.NoError(t, err)

	other, err := codec.Encrypt([]byte("other"), key)
	require.NoError(t, err)

	raw, _ := base64.StdEncoding.DecodeString(secret.Ciphertext)
	raw[0] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name       string
		ciphertext string
		iv         string
		key        []byte
	}{
		{name: "wrong key", ciphertext: secret.Ciphertext, iv: secret.IV, key: testKey(0x34)},
		{name: "wrong iv", ciphertext: secret.Ciphertext, iv: other.IV, key: key},
		{name: "tampered ciphertext", ciphertext: tampered, iv: secret.IV, key: key},
		{name: "short iv", ciphertext: secret.Ciphertext, iv: base64.StdEncoding.EncodeToString([]byte("short")), key: key},
		{name: "malformed base64 ciphertext", ciphertext: "%%%not-base64", iv: secret.IV, key: key},
		{name: "malformed base64 iv", ciphertext: secret.Ciphertext, iv: "***", key: key},
		{name: "key of wrong size", ciphertext: secret.Ciphertext, iv: secret.IV, key: []byte("short key")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decrypt(tt.ciphertext, tt.iv, tt.key)
			require.ErrorIs(t, err, ErrDecryption)
			assert.Nil(t, got)
		})
	}
}

func TestSymmetricCodec_DecryptSecret(t *testing.T) {
	codec := NewSymmetricCodec()
	key := testKey(0x44)

	secret, err := codec.Encrypt([]byte("pw"), key)
	require.NoError(t, err)

	got, err := codec.DecryptSecret(secret, key)
	require.NoError(t, err)
	assert.Equal(t, "pw", string(got))

	_, err = codec.DecryptSecret(models.Secret{Ciphertext: secret.Ciphertext}, key)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestSymmetricCodec_EncryptRejectsBadKey(t *testing.T) {
	_, err := NewSymmetricCodec().Encrypt([]byte("pw"), []byte("too short"))
	assert.ErrorIs(t, err, ErrEncoding)
}
