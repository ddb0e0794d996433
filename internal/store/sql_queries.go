// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveKeyPair = `
		INSERT INTO key_pairs (
			login,
			public_key,
			private_key,
			private_key_iv,
			created_at
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (login) DO UPDATE SET
			public_key     = excluded.public_key,
			private_key    = excluded.private_key,
			private_key_iv = excluded.private_key_iv,
			created_at     = excluded.created_at;`

	getKeyPair = `
		SELECT
			login,
			public_key,
			private_key,
			private_key_iv,
			created_at
		FROM key_pairs
		WHERE login = ?;`

	saveSession = `
		INSERT INTO sessions (
			id,
			login,
			token,
			expires_at,
			encryption_salt,
			auth_salt,
			updated_at
		) VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			login           = excluded.login,
			token           = excluded.token,
			expires_at      = excluded.expires_at,
			encryption_salt = excluded.encryption_salt,
			auth_salt       = excluded.auth_salt,
			updated_at      = CURRENT_TIMESTAMP;`

	getSession = `
		SELECT
			login,
			token,
			expires_at,
			encryption_salt,
			auth_salt
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`
)
