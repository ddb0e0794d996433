// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Secret is one encrypted field: a base64 ciphertext together with the
// base64 initialization vector it was sealed under. A ciphertext without its
// IV cannot be opened, so the two are only ever stored and moved as a pair.
type Secret struct {
	// Ciphertext is the AES-GCM sealed value (ciphertext ‖ tag), base64.
	Ciphertext string

	// IV is the 12-byte GCM nonce, base64. Never reused for the same key.
	IV string
}

// IsZero reports whether neither half of the secret is set.
func (s Secret) IsZero() bool {
	return s.Ciphertext == "" && s.IV == ""
}

// IsComplete reports whether both halves of the secret are present.
func (s Secret) IsComplete() bool {
	return s.Ciphertext != "" && s.IV != ""
}
