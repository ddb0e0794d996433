// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mutation

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestTracker_RecordAndPending(t *testing.T) {
	tr := NewTracker()

	tr.Record(models.KindLogin, models.OperationAdd, "first")
	tr.Record(models.KindLogin, models.OperationEdit, "edit")
	tr.Record(models.KindNote, models.OperationAdd, "note")
	tr.Record(models.KindLogin, models.OperationAdd, "second")

	got := slices.Collect(tr.Pending(models.KindLogin, models.OperationAdd))
	assert.Equal(t, []any{"first", "second"}, got)

	assert.Equal(t, []any{"edit"}, slices.Collect(tr.Pending(models.KindLogin, models.OperationEdit)))
	assert.Empty(t, slices.Collect(tr.Pending(models.KindSSHKey, models.OperationAdd)))
}

func TestTracker_PendingIsSnapshot(t *testing.T) {
	tr := NewTracker()
	h := tr.Record(models.KindNote, models.OperationDelete, 1)

	seq := tr.Pending(models.KindNote, models.OperationDelete)

	tr.Settle(h)
	tr.Record(models.KindNote, models.OperationDelete, 2)

	assert.Equal(t, []any{1}, slices.Collect(seq))
}

func TestTracker_Settle(t *testing.T) {
	tr := NewTracker()
	h := tr.Record(models.KindLogin, models.OperationDelete, int64(7))

	tr.Settle(h)
	tr.Settle(h)
	tr.Settle("unknown")

	assert.Empty(t, slices.Collect(tr.Pending(models.KindLogin, models.OperationDelete)))
	assert.Zero(t, tr.Len())
}

func TestTracker_FailKeepsPayloadOutOfPending(t *testing.T) {
	tr := NewTracker()
	errBoom := errors.New("boom")

	h := tr.Record(models.KindLogin, models.OperationAdd, "payload")
	tr.Fail(h, errBoom)

	assert.Empty(t, slices.Collect(tr.Pending(models.KindLogin, models.OperationAdd)))

	failed := tr.Failed(models.KindLogin)
	require.Len(t, failed, 1)
	assert.Equal(t, h, failed[0].Handle)
	assert.Equal(t, "payload", failed[0].Payload)
	assert.Equal(t, StatusFailed, failed[0].Status)
	assert.ErrorIs(t, failed[0].Err, errBoom)
	assert.Empty(t, tr.Failed(models.KindNote))
	assert.Len(t, tr.AllFailed(), 1)
}

func TestTracker_Dismiss(t *testing.T) {
	tr := NewTracker()

	pending := tr.Record(models.KindNote, models.OperationEdit, "p")
	failed := tr.Record(models.KindNote, models.OperationEdit, "f")
	tr.Fail(failed, errors.New("x"))

	assert.False(t, tr.Dismiss(pending), "pending entries cannot be dismissed")
	assert.True(t, tr.Dismiss(failed))
	assert.False(t, tr.Dismiss(failed))

	_, ok := tr.Get(failed)
	assert.False(t, ok)
	e, ok := tr.Get(pending)
	require.True(t, ok)
	assert.Equal(t, StatusPending, e.Status)
}

func TestTracker_NoDeduplicationPerTarget(t *testing.T) {
	tr := NewTracker()

	tr.Record(models.KindLogin, models.OperationEdit, models.LoginRow{ID: 1, Name: "a"})
	tr.Record(models.KindLogin, models.OperationEdit, models.LoginRow{ID: 1, Name: "b"})

	got := slices.Collect(PendingOf[models.LoginRow](tr, models.KindLogin, models.OperationEdit))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)
}

func TestPendingOf_SkipsOtherTypes(t *testing.T) {
	tr := NewTracker()

	tr.Record(models.KindLogin, models.OperationDelete, models.TrashLoginRequest{ID: 3})
	tr.Record(models.KindLogin, models.OperationDelete, "not a request")
	tr.Record(models.KindLogin, models.OperationDelete, models.TrashLoginRequest{ID: 4})

	got := slices.Collect(PendingOf[models.TrashLoginRequest](tr, models.KindLogin, models.OperationDelete))
	assert.Equal(t, []models.TrashLoginRequest{{ID: 3}, {ID: 4}}, got)

	// ранний выход из range не должен ломать итератор
	for range PendingOf[models.TrashLoginRequest](tr, models.KindLogin, models.OperationDelete) {
		break
	}
}

func TestTracker_OnChange(t *testing.T) {
	tr := NewTracker()
	var calls atomic.Int32
	tr.OnChange(func() { calls.Add(1) })

	h := tr.Record(models.KindNote, models.OperationAdd, "n")
	tr.Fail(h, errors.New("x"))
	tr.Dismiss(h)
	tr.Settle(h)

	assert.Equal(t, int32(3), calls.Load())
}

func TestTracker_ConcurrentUse(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h := tr.Record(models.KindLogin, models.OperationAdd, i*100+j)
				for range tr.Pending(models.KindLogin, models.OperationAdd) {
				}
				if j%2 == 0 {
					tr.Settle(h)
				} else {
					tr.Fail(h, errors.New("x"))
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, slices.Collect(tr.Pending(models.KindLogin, models.OperationAdd)))
	assert.Len(t, tr.Failed(models.KindLogin), 8*25)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	pending := tr.Record(models.KindLogin, models.OperationAdd, "a")
	failed := tr.Record(models.KindNote, models.OperationEdit, "b")
	tr.Fail(failed, errors.New("boom"))

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.AllFailed())

	// завершение уже сброшенной мутации ничего не возвращает обратно
	tr.Fail(pending, errors.New("late"))
	tr.Settle(pending)
	assert.Equal(t, 0, tr.Len())
}
