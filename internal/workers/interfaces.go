// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the vault client: the session
// expiry watcher and the refetch of stale collections the views observe.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately; the job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job goroutine has exited
// and is safe to call on a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionExpirer is the part of the session store the expiry watcher needs.
type SessionExpirer interface {
	ExpireIfDue() bool
}

// SessionState reports whether a session is open.
type SessionState interface {
	Active() bool
}

// StaleRefetcher refreshes stale collections that a view still observes.
type StaleRefetcher interface {
	RefetchStale(ctx context.Context) (int, error)
}
