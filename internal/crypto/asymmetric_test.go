// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keysOnce sync.Once
	aliceKey *rsa.PrivateKey
	bobKey   *rsa.PrivateKey
)

// RSA generation is slow; the keys are shared by every test in the package.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keysOnce.Do(func() {
		codec := NewAsymmetricCodec()
		var err error
		aliceKey, err = codec.GenerateKeyPair(MinRSABits)
		require.NoError(t, err)
		bobKey, err = codec.GenerateKeyPair(MinRSABits)
		require.NoError(t, err)
	})
	return aliceKey, bobKey
}

func TestAsymmetricCodec_RoundTrip(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, _ := testKeys(t)

	ciphertext, err := codec.EncryptForRecipient([]byte("correct horse"), &alice.PublicKey)
	require.NoError(t, err)

	got, err := codec.DecryptWithPrivateKey(ciphertext, alice)
	require.NoError(t, err)
	assert.Equal(t, "correct horse", string(got))
}

func TestAsymmetricCodec_WrongPrivateKey(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, bob := testKeys(t)

	ciphertext, err := codec.EncryptForRecipient([]byte("for alice only"), &alice.PublicKey)
	require.NoError(t, err)

	got, err := codec.DecryptWithPrivateKey(ciphertext, bob)
	require.ErrorIs(t, err, ErrDecryption)
	assert.Nil(t, got)
}

func TestAsymmetricCodec_DecryptMalformed(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, _ := testKeys(t)

	_, err := codec.DecryptWithPrivateKey("not base64 !!", alice)
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = codec.DecryptWithPrivateKey("AAAA", alice)
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = codec.DecryptWithPrivateKey("AAAA", nil)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestAsymmetricCodec_PlaintextLimit(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, _ := testKeys(t)

	limit := MaxOAEPPlaintext(&alice.PublicKey)
	assert.Equal(t, 256-2*32-2, limit)

	_, err := codec.EncryptForRecipient(bytes.Repeat([]byte("a"), limit), &alice.PublicKey)
	require.NoError(t, err)

	_, err = codec.EncryptForRecipient(bytes.Repeat([]byte("a"), limit+1), &alice.PublicKey)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestAsymmetricCodec_GenerateKeyPairRejectsWeakSize(t *testing.T) {
	_, err := NewAsymmetricCodec().GenerateKeyPair(1024)
	assert.ErrorIs(t, err, ErrWeakKey)
}

func TestAsymmetricCodec_PublicKeyPEM(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, _ := testKeys(t)

	pemText, err := codec.EncodePublicKeyPEM(&alice.PublicKey)
	require.NoError(t, err)
	assert.Contains(t, pemText, "-----BEGIN PUBLIC KEY-----")

	parsed, err := codec.ParsePublicKeyPEM(pemText)
	require.NoError(t, err)
	assert.True(t, alice.PublicKey.Equal(parsed))

	pkcs1 := string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&alice.PublicKey),
	}))
	parsed, err = codec.ParsePublicKeyPEM(pkcs1)
	require.NoError(t, err)
	assert.True(t, alice.PublicKey.Equal(parsed))

	for _, bad := range []string{"", "garbage", "-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"} {
		_, err := codec.ParsePublicKeyPEM(bad)
		assert.ErrorIs(t, err, ErrEncoding, bad)
	}
}

func TestAsymmetricCodec_PrivateKeyEncoding(t *testing.T) {
	codec := NewAsymmetricCodec()
	alice, _ := testKeys(t)

	der, err := codec.EncodePrivateKey(alice)
	require.NoError(t, err)

	parsed, err := codec.ParsePrivateKey(der)
	require.NoError(t, err)
	assert.True(t, alice.Equal(parsed))

	_, err = codec.ParsePrivateKey([]byte("junk"))
	assert.ErrorIs(t, err, ErrDecryption)
}

// Ciphertext of one path must never open on the other.
func TestCodecs_PathsDoNotMix(t *testing.T) {
	sym := NewSymmetricCodec()
	asym := NewAsymmetricCodec()
	alice, _ := testKeys(t)
	key := testKey(0x55)

	grant, err := asym.EncryptForRecipient([]byte("pw"), &alice.PublicKey)
	require.NoError(t, err)

	secret, err := sym.Encrypt([]byte("pw"), key)
	require.NoError(t, err)

	_, err = sym.Decrypt(grant, secret.IV, key)
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = asym.DecryptWithPrivateKey(secret.Ciphertext, alice)
	assert.ErrorIs(t, err, ErrDecryption)
}
