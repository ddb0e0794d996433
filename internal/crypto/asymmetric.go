// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
)

const (
	// MinRSABits is the smallest modulus accepted for a sharing key pair.
	MinRSABits = 2048

	// DefaultRSABits is used when the configuration leaves the size unset.
	DefaultRSABits = 3072

	pemPublicKey    = "PUBLIC KEY"
	pemRSAPublicKey = "RSA PUBLIC KEY"
)

type asymmetricCodec struct {
	random io.Reader
}

// NewAsymmetricCodec returns the RSA-OAEP [AsymmetricCodec].
func NewAsymmetricCodec() AsymmetricCodec {
	return &asymmetricCodec{random: rand.Reader}
}

func (a *asymmetricCodec) GenerateKeyPair(bits int) (*rsa.PrivateKey, error) {
	if bits < MinRSABits {
		return nil, fmt.Errorf("%w: %d < %d", ErrWeakKey, bits, MinRSABits)
	}

	key, err := rsa.GenerateKey(a.random, bits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa key: %w", err)
	}
	return key, nil
}

func (a *asymmetricCodec) EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrEncoding)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: marshal public key: %w", ErrEncoding, err)
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: der})), nil
}

func (a *asymmetricCodec) ParsePublicKeyPEM(pemText string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in public key", ErrEncoding)
	}

	switch block.Type {
	case pemPublicKey:
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: parse public key: %w", ErrEncoding, err)
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrEncoding)
		}
		return rsaPub, nil
	case pemRSAPublicKey:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: parse public key: %w", ErrEncoding, err)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrEncoding, block.Type)
	}
}

func (a *asymmetricCodec) EncodePrivateKey(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal private key: %w", ErrEncoding, err)
	}
	return der, nil
}

func (a *asymmetricCodec) ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrDecryption, err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrDecryption)
	}
	return rsaKey, nil
}

func (a *asymmetricCodec) EncryptForRecipient(plaintext []byte, pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrEncoding)
	}
	if pub.Size()*8 < MinRSABits {
		return "", fmt.Errorf("%w: %w", ErrEncoding, ErrWeakKey)
	}

	if limit := MaxOAEPPlaintext(pub); len(plaintext) > limit {
		return "", fmt.Errorf("%w: plaintext is %d bytes, limit is %d", ErrEncoding, len(plaintext), limit)
	}

	sealed, err := rsa.EncryptOAEP(sha256.New(), a.random, pub, plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (a *asymmetricCodec) DecryptWithPrivateKey(ciphertext string, priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", ErrDecryption)
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %w", ErrDecryption, err)
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, priv, sealed, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// MaxOAEPPlaintext returns k - 2·hLen - 2, the largest plaintext RSA-OAEP
// with SHA-256 can seal under pub.
func MaxOAEPPlaintext(pub *rsa.PublicKey) int {
	return pub.Size() - 2*sha256.Size - 2
}
