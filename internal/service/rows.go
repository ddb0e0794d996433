// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"iter"
	"slices"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/models"
)

func mapRows[E any, R any](in []E, fn func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}

func rowsOf[E any, R any](seq iter.Seq[E], fn func(E) R) []R {
	var out []R
	for e := range seq {
		out = append(out, fn(e))
	}
	return out
}

func pendingSlice[T any](tracker *mutation.Tracker, kind models.EntityKind, op models.OperationKind) []T {
	return slices.Collect(mutation.PendingOf[T](tracker, kind, op))
}
