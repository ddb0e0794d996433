// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "192.168.1.10:443", expected: NetAddress{Host: "192.168.1.10", Port: 443}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname", input: "vault.example:443", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	// Reset flag.CommandLine and os.Args for the parse
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = []string{"cmd",
		"-a", "127.0.0.1:8081",
		"-d", "file:test.db",
		"-config", "/etc/vault.json",
		"-request-timeout", "4s",
		"-refetch-interval", "7s",
		"-expiry-check-interval", "20s",
		"-rsa-bits", "4096",
		"-kdf-time", "2",
		"-kdf-memory", "1024",
		"-kdf-threads", "1",
		"-log-dir", "/tmp/logs",
		"-log-level", "error",
	}
	defer func() { os.Args = oldArgs }()

	cfg := ParseFlags()

	assert.Equal(t, "127.0.0.1:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, 7*time.Second, cfg.Workers.RefetchInterval)
	assert.Equal(t, 20*time.Second, cfg.Session.ExpiryCheckInterval)
	assert.Equal(t, 4096, cfg.App.RSABits)
	assert.Equal(t, uint32(2), cfg.App.KDFTime)
	assert.Equal(t, uint32(1024), cfg.App.KDFMemory)
	assert.Equal(t, uint8(1), cfg.App.KDFThreads)
	assert.Equal(t, "/tmp/logs", cfg.Log.Dir)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseFlags_NoArgs(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = []string{"cmd"}
	defer func() { os.Args = oldArgs }()

	cfg := ParseFlags()

	assert.Equal(t, &StructuredConfig{}, cfg)
}
