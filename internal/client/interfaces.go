// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client. *tui.TUI implements it.
type UI interface {
	// LoginFlow blocks until a session is open and returns its login.
	LoginFlow(ctx context.Context, notice string) (string, error)

	// MainLoop blocks while the vault is browsed.
	MainLoop(ctx context.Context, login string) (tui.Exit, error)
}

// Background is the group of background workers that runs for the whole
// process. *workers.Workers implements it.
type Background interface {
	Start(ctx context.Context)
	Stop()
}
