// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs an HTTP handler until its context is cancelled and
// then shuts it down gracefully. cmd/server uses it to serve the in-memory
// reference backend for local client runs.
package server
