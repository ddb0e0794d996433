// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned whenever a ciphertext cannot be opened: wrong
	// key, wrong IV, tampered ciphertext or malformed encoding. A failed
	// decryption never yields partial or garbage plaintext.
	ErrDecryption = errors.New("decryption failed")

	// ErrEncoding is returned when a value cannot be sealed: a key of the
	// wrong size, an unparsable public key or a plaintext larger than the
	// padding scheme allows.
	ErrEncoding = errors.New("encoding failed")

	// ErrWeakKey is returned for RSA moduli below the minimum size.
	ErrWeakKey = errors.New("rsa key size below minimum")
)
