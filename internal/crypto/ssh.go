// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/pem"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/ssh"
)

// SSHKeyBits is the modulus size of generated SSH keys.
const SSHKeyBits = 2048

type sshKeyGenerator struct {
	random io.Reader
}

// NewSSHKeyGenerator returns an RSA [SSHKeyGenerator].
func NewSSHKeyGenerator() SSHKeyGenerator {
	return &sshKeyGenerator{random: rand.Reader}
}

// Generate creates an RSA-2048 key and returns it in the OpenSSH private key
// format together with its authorized_keys line.
func (g *sshKeyGenerator) Generate(comment string) ([]byte, string, error) {
	key, err := rsa.GenerateKey(g.random, SSHKeyBits)
	if err != nil {
		return nil, "", fmt.Errorf("generate ssh key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(key, comment)
	if err != nil {
		return nil, "", fmt.Errorf("marshal ssh private key: %w", err)
	}

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return nil, "", fmt.Errorf("convert ssh public key: %w", err)
	}

	authorized := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
	if comment != "" {
		authorized += " " + comment
	}

	return pem.EncodeToMemory(block), authorized, nil
}
