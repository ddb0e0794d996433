// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestSSHKeyGenerator_Generate(t *testing.T) {
	privatePEM, authorized, err := NewSSHKeyGenerator().Generate("deploy@ci")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(authorized, "ssh-rsa "))
	assert.True(t, strings.HasSuffix(authorized, " deploy@ci"))

	signer, err := ssh.ParsePrivateKey(privatePEM)
	require.NoError(t, err)

	pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(authorized))
	require.NoError(t, err)
	assert.Equal(t, "deploy@ci", comment)
	assert.Equal(t, ssh.FingerprintSHA256(signer.PublicKey()), ssh.FingerprintSHA256(pub))
}
