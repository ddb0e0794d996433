// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// DefaultObserveWindow is how long after its last read a query counts as
// observed by a view.
const DefaultObserveWindow = time.Minute

// fetchTimeout bounds a shared fetch once it no longer follows the context
// of the caller that started it.
const fetchTimeout = 30 * time.Second

// QueryKey names one cached collection: its entity kind plus the query
// parameters that produced it.
type QueryKey struct {
	Kind   models.EntityKind
	Params string
}

func (k QueryKey) String() string {
	if k.Params == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + "?" + k.Params
}

type cacheEntry struct {
	value      any
	stale      bool
	generation uint64
	lastRead   time.Time
	fetch      func(context.Context) (any, error)
}

// QueryCache holds the authoritative collections the views render.
//
// It implements the invalidate-then-refetch strategy: mutation responses are
// never written into the cache. Settling a mutation marks every collection
// of the affected kinds stale, and the next read fetches again. Between
// settlement and the end of that fetch readers of [QueryCache.Peek] still
// see the previous snapshot. Concurrent fetches of one key are collapsed.
type QueryCache struct {
	mu      sync.Mutex
	entries map[QueryKey]*cacheEntry
	group   singleflight.Group

	now           func() time.Time
	observeWindow time.Duration
	fetchTimeout  time.Duration
	listeners     []func()
	logger        *logger.Logger
}

// NewQueryCache returns an empty cache. Queries read within observeWindow
// are refreshed by RefetchStale; a non-positive window means
// DefaultObserveWindow.
func NewQueryCache(observeWindow time.Duration, log *logger.Logger) *QueryCache {
	if observeWindow <= 0 {
		observeWindow = DefaultObserveWindow
	}
	return &QueryCache{
		entries:       make(map[QueryKey]*cacheEntry),
		now:           time.Now,
		observeWindow: observeWindow,
		fetchTimeout:  fetchTimeout,
		logger:        log.WithComponent("query_cache"),
	}
}

// Query returns the collection for key, calling fetch when it is missing or
// stale.
func Query[T any](ctx context.Context, c *QueryCache, key QueryKey, fetch func(context.Context) ([]T, error)) ([]T, error) {
	v, err := c.get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	out, _ := v.([]T)
	return out, nil
}

// Peek returns the last fetched collection for key, stale or not, without
// fetching.
func Peek[T any](c *QueryCache, key QueryKey) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.value == nil {
		return nil, false
	}
	out, ok := e.value.([]T)
	return out, ok
}

// OnChange registers fn to run after a fetch stores a new snapshot.
func (c *QueryCache) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *QueryCache) get(ctx context.Context, key QueryKey, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{stale: true}
		c.entries[key] = e
	}
	e.lastRead = c.now()
	e.fetch = fetch
	if !e.stale {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	return c.refetch(ctx, key)
}

// refetch fetches key once for every concurrent caller. The shared fetch
// runs detached from any single caller: a caller whose ctx ends gets
// ctx.Err() while the others still receive the result.
func (c *QueryCache) refetch(ctx context.Context, key QueryKey) (any, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(fetchCtx, c.fetchTimeout)
		defer cancel()
		return c.fetchAndStore(fetchCtx, key)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *QueryCache) fetchAndStore(ctx context.Context, key QueryKey) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("query %s was dropped", key)
	}
	generation, fetch := e.generation, e.fetch
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		c.logger.Debug().Str("query", key.String()).Err(err).Msg("fetch failed")
		return nil, err
	}

	c.mu.Lock()
	// a Clear or Invalidate during the fetch wins over its result
	if current, ok := c.entries[key]; ok && current == e {
		e.value = value
		if e.generation == generation {
			e.stale = false
		}
	}
	c.mu.Unlock()

	c.notify()
	return value, nil
}

// Invalidate marks every collection of the given kinds stale.
func (c *QueryCache) Invalidate(kinds ...models.EntityKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if slices.Contains(kinds, key.Kind) {
			e.stale = true
			e.generation++
		}
	}
}

// RefetchStale refetches stale collections that a view read within the
// observe window. It returns the number of refreshed collections.
func (c *QueryCache) RefetchStale(ctx context.Context) (int, error) {
	cutoff := c.now().Add(-c.observeWindow)

	c.mu.Lock()
	var keys []QueryKey
	for key, e := range c.entries {
		if e.stale && e.fetch != nil && e.lastRead.After(cutoff) {
			keys = append(keys, key)
		}
	}
	c.mu.Unlock()

	var (
		refreshed int
		errs      []error
	)
	for _, key := range keys {
		if _, err := c.refetch(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("refetch %s: %w", key, err))
			continue
		}
		refreshed++
	}
	return refreshed, errors.Join(errs...)
}

// Clear drops every collection. It runs when the session ends.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

func (c *QueryCache) notify() {
	c.mu.Lock()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
