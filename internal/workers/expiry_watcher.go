// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const defaultExpiryCheckInterval = 10 * time.Second

// ExpiryWatcher closes the session once its expiry has passed, even while
// the user is idle. The session's clear hooks route the UI back to login.
type ExpiryWatcher struct {
	*tickerJob
}

// NewExpiryWatcher returns a watcher checking session every interval.
func NewExpiryWatcher(session SessionExpirer, interval time.Duration, log *logger.Logger) *ExpiryWatcher {
	log = log.WithComponent("expiry_watcher")
	return &ExpiryWatcher{
		tickerJob: newTickerJob(interval, defaultExpiryCheckInterval, func(context.Context) {
			if session.ExpireIfDue() {
				log.Info().Msg("session expired")
			}
		}),
	}
}
