// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNew_Fields verifies the role, timestamp and caller fields.
func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf)

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, closer, err := NewClientLogger("client", dir, "info")
	require.NoError(t, err)

	l.Debug().Msg("filtered")
	l.Info().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered")
	assert.Contains(t, string(data), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("chatty"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Error().Msg("nothing") })
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New("client", &buf).WithComponent("sharing")

	l.Info().Msg("x")

	entry := decode(t, &buf)
	assert.Equal(t, "sharing", entry["component"])
	assert.Equal(t, "client", entry["role"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "ctx-role", decode(t, &buf)["role"])
}

func TestGetChildLogger_IndependentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", &buf)
	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "1").Logger()

	parent.Info().Msg("p")
	assert.NotContains(t, decode(t, &buf), "extra")
}
