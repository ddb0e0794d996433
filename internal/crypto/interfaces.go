// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rsa"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SymmetricCodec seals and opens the vault's own secrets with the session
// symmetric key (AES-256-GCM, 12-byte IV, base64 text encoding).
//
// The ciphertext and the IV always travel together as a [models.Secret]. A
// fresh random IV is drawn for every Encrypt call.
type SymmetricCodec interface {
	// Encrypt seals plaintext under key. key must be 32 bytes.
	Encrypt(plaintext, key []byte) (models.Secret, error)

	// Decrypt opens a base64 ciphertext with its base64 IV. Any failure is
	// reported as ErrDecryption.
	Decrypt(ciphertext, iv string, key []byte) ([]byte, error)

	// DecryptSecret is Decrypt for a Secret.
	DecryptSecret(secret models.Secret, key []byte) ([]byte, error)
}

// AsymmetricCodec holds the RSA side of sharing: key generation, the PEM and
// PKCS#8 encodings, and RSA-OAEP (SHA-256) encryption of short secrets.
type AsymmetricCodec interface {
	// GenerateKeyPair creates an RSA key. bits below 2048 fail with ErrWeakKey.
	GenerateKeyPair(bits int) (*rsa.PrivateKey, error)

	// EncodePublicKeyPEM renders pub as a PKIX "PUBLIC KEY" PEM block.
	EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error)

	// ParsePublicKeyPEM parses a PKIX or PKCS#1 PEM public key.
	ParsePublicKeyPEM(pemText string) (*rsa.PublicKey, error)

	// EncodePrivateKey renders priv as PKCS#8 DER for local persistence.
	EncodePrivateKey(priv *rsa.PrivateKey) ([]byte, error)

	// ParsePrivateKey parses PKCS#8 DER produced by EncodePrivateKey.
	ParsePrivateKey(der []byte) (*rsa.PrivateKey, error)

	// EncryptForRecipient seals plaintext under the recipient's public key
	// and returns base64 ciphertext. Plaintext longer than the OAEP limit
	// fails with ErrEncoding; it is never truncated.
	EncryptForRecipient(plaintext []byte, pub *rsa.PublicKey) (string, error)

	// DecryptWithPrivateKey opens a base64 ciphertext with priv only.
	DecryptWithPrivateKey(ciphertext string, priv *rsa.PrivateKey) ([]byte, error)
}

// KeyDerivation turns a master password into the session symmetric key and
// the server-side auth hash. The master password never leaves the client.
//
//	salt     = GenerateSalt()                       (register)
//	key      = DeriveKey(password, salt)            (every login)
//	authHash = AuthHash(key, authSalt)              (sent to the server)
type KeyDerivation interface {
	// GenerateSalt returns 16 random bytes. Salts are stored on the server
	// in the clear.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 32-byte key with Argon2id.
	DeriveKey(masterPassword string, salt []byte) []byte

	// AuthHash is SHA-256(key ‖ authSalt). The server can compare it but not
	// invert it back to the key.
	AuthHash(key []byte, authSalt string) []byte
}

// SSHKeyGenerator creates SSH key pairs stored as vault items.
type SSHKeyGenerator interface {
	// Generate returns a PEM private key and an authorized_keys public key.
	Generate(comment string) (privatePEM []byte, authorizedKey string, err error)
}
