// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const defaultRefetchInterval = 5 * time.Second

// RefetchWorker refreshes invalidated collections in the background so an
// open view catches up after a mutation settles without user input.
type RefetchWorker struct {
	*tickerJob
}

// NewRefetchWorker returns a worker that calls cache.RefetchStale every
// interval while a session is open.
func NewRefetchWorker(cache StaleRefetcher, session SessionState, interval time.Duration, log *logger.Logger) *RefetchWorker {
	log = log.WithComponent("refetch_worker")
	return &RefetchWorker{
		tickerJob: newTickerJob(interval, defaultRefetchInterval, func(ctx context.Context) {
			if !session.Active() {
				return
			}
			n, err := cache.RefetchStale(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("background refetch failed")
			}
			if n > 0 {
				log.Debug().Int("queries", n).Msg("stale queries refetched")
			}
		}),
	}
}
