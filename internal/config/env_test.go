// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_KDF_TIME":    "3",
		"APP_KDF_MEMORY":  "32768",
		"APP_KDF_THREADS": "2",
		"APP_RSA_BITS":    "4096",

		"ADAPTER_ADDRESS":         "https://vault.example",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN": "file:/tmp/vault.db",

		"SESSION_EXPIRY_CHECK_INTERVAL": "1m",
		"WORKERS_REFETCH_INTERVAL":      "2s",

		"LOG_DIR":   "/var/log/vault",
		"LOG_LEVEL": "warn",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg, err := parseEnv[StructuredConfig]()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, uint32(3), cfg.App.KDFTime)
	assert.Equal(t, uint32(32768), cfg.App.KDFMemory)
	assert.Equal(t, uint8(2), cfg.App.KDFThreads)
	assert.Equal(t, 4096, cfg.App.RSABits)
	assert.Equal(t, "https://vault.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Session.ExpiryCheckInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.RefetchInterval)
	assert.Equal(t, "/var/log/vault", cfg.Log.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	cfg, err := parseEnv[StructuredConfig]()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
