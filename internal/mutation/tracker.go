// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mutation tracks submitted but unconfirmed writes so list views can
// show them before the server answers.
//
// Entries are keyed by entity kind and operation kind. A settled entry is
// dropped; a failed one is kept with its payload so the user can retry or
// dismiss it. The tracker does not deduplicate by target id: two edits of
// the same entity in flight are both tracked and the later one wins in the
// view.
package mutation

import (
	"cmp"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Handle identifies one tracked mutation.
type Handle string

// Status is the lifecycle state of a tracked mutation.
type Status int

const (
	StatusPending Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusFailed {
		return "failed"
	}
	return "pending"
}

// Entry is a snapshot of one tracked mutation.
type Entry struct {
	Handle      Handle
	Kind        models.EntityKind
	Operation   models.OperationKind
	Payload     any
	Status      Status
	Err         error
	SubmittedAt time.Time
}

type entry struct {
	Entry
	seq uint64
}

// Tracker is the in-memory mutation tracker. It is safe for concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	seq     uint64
	entries map[Handle]*entry

	now       func() time.Time
	listeners []func()
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[Handle]*entry),
		now:     time.Now,
	}
}

// OnChange registers fn to run after every change to the tracked set.
// Listeners run outside the tracker's lock.
func (t *Tracker) OnChange(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Record starts tracking a pending mutation and returns its handle.
func (t *Tracker) Record(kind models.EntityKind, op models.OperationKind, payload any) Handle {
	h := newHandle()

	t.mu.Lock()
	t.seq++
	t.entries[h] = &entry{
		Entry: Entry{
			Handle:      h,
			Kind:        kind,
			Operation:   op,
			Payload:     payload,
			Status:      StatusPending,
			SubmittedAt: t.now(),
		},
		seq: t.seq,
	}
	t.mu.Unlock()

	t.notify()
	return h
}

// Pending yields the payloads of pending mutations of one kind and operation
// in submission order. The set is captured when Pending is called, so the
// sequence is finite and unaffected by later Record or Settle calls.
func (t *Tracker) Pending(kind models.EntityKind, op models.OperationKind) iter.Seq[any] {
	snapshot := t.collect(func(e *entry) bool {
		return e.Status == StatusPending && e.Kind == kind && e.Operation == op
	})

	return func(yield func(any) bool) {
		for _, e := range snapshot {
			if !yield(e.Payload) {
				return
			}
		}
	}
}

// Settle drops a mutation after the server confirmed it. Unknown handles
// are ignored.
func (t *Tracker) Settle(h Handle) {
	t.mu.Lock()
	_, ok := t.entries[h]
	delete(t.entries, h)
	t.mu.Unlock()

	if ok {
		t.notify()
	}
}

// Fail moves a pending mutation to the failed set, keeping its payload.
func (t *Tracker) Fail(h Handle, err error) {
	t.mu.Lock()
	e, ok := t.entries[h]
	if ok {
		e.Status = StatusFailed
		e.Err = err
	}
	t.mu.Unlock()

	if ok {
		t.notify()
	}
}

// Failed lists failed mutations of one kind in submission order.
func (t *Tracker) Failed(kind models.EntityKind) []Entry {
	return t.collect(func(e *entry) bool {
		return e.Status == StatusFailed && e.Kind == kind
	})
}

// AllFailed lists every failed mutation in submission order.
func (t *Tracker) AllFailed() []Entry {
	return t.collect(func(e *entry) bool {
		return e.Status == StatusFailed
	})
}

// Get returns the entry for h.
func (t *Tracker) Get(h Handle) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[h]
	if !ok {
		return Entry{}, false
	}
	return e.Entry, true
}

// Dismiss drops a failed mutation. It reports false for unknown handles and
// for mutations that are still pending.
func (t *Tracker) Dismiss(h Handle) bool {
	t.mu.Lock()
	e, ok := t.entries[h]
	if ok && e.Status == StatusFailed {
		delete(t.entries, h)
	} else {
		ok = false
	}
	t.mu.Unlock()

	if ok {
		t.notify()
	}
	return ok
}

// Reset drops every entry. The application calls it when the session ends
// so failed payloads of one user are never retried under another. Settle
// and Fail of a dropped in-flight mutation become no-ops.
func (t *Tracker) Reset() {
	t.mu.Lock()
	n := len(t.entries)
	clear(t.entries)
	t.mu.Unlock()

	if n > 0 {
		t.notify()
	}
}

// Len returns the number of tracked entries, pending and failed.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *Tracker) collect(match func(*entry) bool) []Entry {
	t.mu.RLock()
	matched := make([]entry, 0, len(t.entries))
	for _, e := range t.entries {
		if match(e) {
			matched = append(matched, *e)
		}
	}
	t.mu.RUnlock()

	slices.SortFunc(matched, func(a, b entry) int {
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]Entry, len(matched))
	for i, e := range matched {
		out[i] = e.Entry
	}
	return out
}

func (t *Tracker) notify() {
	t.mu.RLock()
	listeners := slices.Clone(t.listeners)
	t.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// PendingOf is Pending narrowed to payloads of type T. Payloads of any other
// type are skipped.
func PendingOf[T any](t *Tracker, kind models.EntityKind, op models.OperationKind) iter.Seq[T] {
	pending := t.Pending(kind, op)
	return func(yield func(T) bool) {
		for p := range pending {
			v, ok := p.(T)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func newHandle() Handle {
	v7, err := uuid.NewV7()
	if err != nil {
		return Handle(uuid.NewString())
	}
	return Handle(v7.String())
}
