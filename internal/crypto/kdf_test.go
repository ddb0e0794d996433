// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the tests fast; the algorithm is the same.
var testArgon2 = Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1}

func TestKeyDerivation_GenerateSalt(t *testing.T) {
	kdf := NewKeyDerivation(testArgon2)

	s1, err := kdf.GenerateSalt()
	require.NoError(t, err)
	s2, err := kdf.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestKeyDerivation_DeriveKey(t *testing.T) {
	kdf := NewKeyDerivation(testArgon2)
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := kdf.DeriveKey("correct horse battery staple", salt)
	k2 := kdf.DeriveKey("correct horse battery staple", salt)
	assert.Len(t, k1, SymmetricKeySize)
	assert.Equal(t, k1, k2)

	// другая соль или другой пароль дают другой ключ
	assert.NotEqual(t, k1, kdf.DeriveKey("correct horse battery staple", bytes.Repeat([]byte{0x01}, SaltSize)))
	assert.NotEqual(t, k1, kdf.DeriveKey("correct horse battery stapler", salt))
}

func TestKeyDerivation_DerivedKeyOpensSecrets(t *testing.T) {
	kdf := NewKeyDerivation(testArgon2)
	codec := NewSymmetricCodec()
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	secret, err := codec.Encrypt([]byte("vault item"), kdf.DeriveKey("master", salt))
	require.NoError(t, err)

	got, err := codec.DecryptSecret(secret, kdf.DeriveKey("master", salt))
	require.NoError(t, err)
	assert.Equal(t, "vault item", string(got))

	_, err = codec.DecryptSecret(secret, kdf.DeriveKey("wrong master", salt))
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestKeyDerivation_AuthHash(t *testing.T) {
	kdf := NewKeyDerivation(testArgon2)
	key := bytes.Repeat([]byte{0x42}, SymmetricKeySize)

	h1 := kdf.AuthHash(key, "salt-a")
	h2 := kdf.AuthHash(key, "salt-a")
	h3 := kdf.AuthHash(key, "salt-b")

	assert.Len(t, h1, 32)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, key, h1)
}

func TestNewKeyDerivation_Defaults(t *testing.T) {
	kdf := NewKeyDerivation(Argon2Params{}).(*keyDerivation)
	assert.Equal(t, DefaultArgon2Params, kdf.params)
}
