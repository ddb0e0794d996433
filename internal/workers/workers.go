// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Workers starts and stops a group of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// NewClientWorkers builds the expiry watcher and the refetch worker of the
// client.
func NewClientWorkers(sessionCfg config.ClientSession, workersCfg config.ClientWorkers, session interface {
	SessionExpirer
	SessionState
}, cache StaleRefetcher, log *logger.Logger) *Workers {
	return NewWorkers(
		NewExpiryWatcher(session, sessionCfg.ExpiryCheckInterval, log),
		NewRefetchWorker(cache, session, workersCfg.RefetchInterval, log),
	)
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
