// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {"kdf_time": 2, "kdf_memory": 65536, "kdf_threads": 4, "rsa_bits": 3072},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "file:vault.db"}},
		"session": {"expiry_check_interval": "15s"},
		"workers": {"refetch_interval": 1000000000},
		"log": {"dir": "/tmp", "level": "info"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cfg.App.KDFTime)
	assert.Equal(t, 3072, cfg.App.RSABits)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Session.ExpiryCheckInterval)
	assert.Equal(t, time.Second, cfg.Workers.RefetchInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "forever"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
