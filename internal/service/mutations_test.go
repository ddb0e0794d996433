// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestAffectedKinds(t *testing.T) {
	tests := []struct {
		name string
		kind models.EntityKind
		op   models.OperationKind
		want []models.EntityKind
	}{
		{"login add", models.KindLogin, models.OperationAdd, []models.EntityKind{models.KindLogin}},
		{"login trash", models.KindLogin, models.OperationDelete, []models.EntityKind{models.KindLogin, models.KindTrash}},
		{"trash restore", models.KindTrash, models.OperationEdit, []models.EntityKind{models.KindTrash, models.KindLogin}},
		{"trash purge", models.KindTrash, models.OperationDelete, []models.EntityKind{models.KindTrash}},
		{"note edit", models.KindNote, models.OperationEdit, []models.EntityKind{models.KindNote}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, affectedKinds(tt.kind, tt.op))
		})
	}
}

// ── submit ───────────────────────────────────────────────────────────────────

func TestSubmit_PendingWhileInFlightThenRefetched(t *testing.T) {
	env := newTestEnv(t)
	logins := &loginService{core: env.core}
	ctx := context.Background()

	first := []models.Login{{ID: 1, Name: "GitHub"}, {ID: 2, Name: "Mail"}}
	second := []models.Login{{ID: 2, Name: "Mail"}}

	gomock.InOrder(
		env.adapter.EXPECT().ListLogins(gomock.Any(), models.LoginQuery{}).Return(first, nil),
		env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) error {
			// пока запрос в полёте, view видит старый снимок и pending-delete
			rows, err := logins.List(ctx, models.LoginQuery{})
			require.NoError(t, err)
			require.Len(t, rows, 2)
			assert.Equal(t, models.TagPendingDelete, rows[0].Tag)
			assert.False(t, rows[0].Actionable)
			assert.True(t, rows[1].Actionable)
			return nil
		}),
		env.adapter.EXPECT().ListLogins(gomock.Any(), models.LoginQuery{}).Return(second, nil),
	)

	_, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)

	_, err = logins.Trash(ctx, models.TrashLoginRequest{ID: 1})
	require.NoError(t, err)
	assert.Zero(t, env.core.tracker.Len())

	rows, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, rowIDs(rows))
	assert.False(t, rows[0].IsPending())
}

func TestSubmit_SettledAddNeverShownTwice(t *testing.T) {
	env := newTestEnv(t)
	logins := &loginService{core: env.core}
	ctx := context.Background()

	before := []models.Login{{ID: 1, Name: "GitHub"}}
	after := []models.Login{{ID: 1, Name: "GitHub"}, {ID: 2, Name: "Mail"}}

	gomock.InOrder(
		env.adapter.EXPECT().ListLogins(gomock.Any(), models.LoginQuery{}).Return(before, nil),
		env.adapter.EXPECT().CreateLogin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l models.Login) (models.Login, error) {
				l.ID = 2
				return l, nil
			}),
		env.adapter.EXPECT().ListLogins(gomock.Any(), models.LoginQuery{}).Return(after, nil),
	)

	_, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)

	// view перерисовывается на каждое изменение трекера
	var redrawn []int
	env.core.tracker.OnChange(func() {
		if env.core.tracker.Len() != 0 {
			return
		}
		rows, err := logins.List(ctx, models.LoginQuery{})
		require.NoError(t, err)
		redrawn = append(redrawn, len(rows))
		for _, r := range rows {
			assert.False(t, r.IsPending())
		}
	})

	_, err = logins.Create(ctx, models.CreateLoginRequest{LoginForm: models.LoginForm{
		Name: "Mail", Username: "alice", Password: "s3cret",
	}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, redrawn, "после подтверждения до инвалидации виден прежний снимок")

	rows, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, rowIDs(rows))
	assert.Len(t, rows, 2)
}

func TestSubmit_FailureRevertsToAuthoritativeView(t *testing.T) {
	env := newTestEnv(t)
	logins := &loginService{core: env.core}
	ctx := context.Background()

	authoritative := []models.Login{{ID: 1, Name: "GitHub"}}
	env.adapter.EXPECT().ListLogins(gomock.Any(), gomock.Any()).Return(authoritative, nil).Times(2)
	env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(1)).
		Return(fmt.Errorf("%w: connection refused", adapter.ErrNetwork))

	_, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)

	h, err := logins.Trash(ctx, models.TrashLoginRequest{ID: 1})
	require.ErrorIs(t, err, ErrNetwork)
	require.NotEmpty(t, h)

	rows, err := logins.List(ctx, models.LoginQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.TagNone, rows[0].Tag)
	assert.True(t, rows[0].Actionable)

	failed := env.core.tracker.AllFailed()
	require.Len(t, failed, 1)
	assert.Equal(t, h, failed[0].Handle)
	assert.Equal(t, models.TrashLoginRequest{ID: 1}, failed[0].Payload)
	assert.True(t, env.session.Active(), "сетевая ошибка не завершает сессию")
}

func TestSubmit_UnauthorizedEndsSession(t *testing.T) {
	env := newTestEnv(t)
	notes := &noteService{core: env.core}

	env.adapter.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	_, err := notes.Create(context.Background(), models.CreateNoteRequest{Name: "n", Body: "b"})
	require.ErrorIs(t, err, session.ErrNoActiveSession)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.False(t, env.session.Active())
	assert.Zero(t, env.core.tracker.Len(), "сброс сессии очищает трекер")
}

func TestSubmit_DetachedFromCallerCancellation(t *testing.T) {
	env := newTestEnv(t)
	logins := &loginService{core: env.core}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(7)).DoAndReturn(func(ctx context.Context, _ int64) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	_, err := logins.Trash(ctx, models.TrashLoginRequest{ID: 7})
	require.NoError(t, err)
}

func TestSubmit_ValidationFailureTracksNothing(t *testing.T) {
	env := newTestEnv(t)
	logins := &loginService{core: env.core}

	_, err := logins.Trash(context.Background(), models.TrashLoginRequest{ID: 0})
	require.Error(t, err)
	assert.Zero(t, env.core.tracker.Len())
}

func TestExecute_UnsupportedPayload(t *testing.T) {
	env := newTestEnv(t)

	err := env.core.execute(context.Background(), models.KindLogin, models.OperationAdd, struct{}{})
	require.ErrorIs(t, err, ErrUnsupportedMutation)
}

// ── mutationService ──────────────────────────────────────────────────────────

func TestMutationService_RetryResubmitsPayload(t *testing.T) {
	env := newTestEnv(t)
	svc := &mutationService{core: env.core}
	logins := &loginService{core: env.core}
	ctx := context.Background()

	gomock.InOrder(
		env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(3)).Return(adapter.ErrNetwork),
		env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(3)).Return(nil),
	)

	h, err := logins.Trash(ctx, models.TrashLoginRequest{ID: 3})
	require.Error(t, err)
	require.Len(t, svc.Failed(), 1)

	retried, err := svc.Retry(ctx, h)
	require.NoError(t, err)
	assert.NotEqual(t, h, retried)
	assert.Empty(t, svc.Failed())
	assert.Zero(t, env.core.tracker.Len())
}

func TestMutationService_RetryFailsAgain(t *testing.T) {
	env := newTestEnv(t)
	svc := &mutationService{core: env.core}
	logins := &loginService{core: env.core}
	ctx := context.Background()

	env.adapter.EXPECT().TrashLogin(gomock.Any(), int64(3)).Return(adapter.ErrNetwork).Times(2)

	h, _ := logins.Trash(ctx, models.TrashLoginRequest{ID: 3})
	retried, err := svc.Retry(ctx, h)
	require.ErrorIs(t, err, ErrNetwork)

	failed := svc.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, retried, failed[0].Handle)
}

func TestMutationService_UnknownHandle(t *testing.T) {
	env := newTestEnv(t)
	svc := &mutationService{core: env.core}

	_, err := svc.Retry(context.Background(), mutation.Handle("nope"))
	require.ErrorIs(t, err, ErrMutationNotFound)

	require.ErrorIs(t, svc.Dismiss("nope"), ErrMutationNotFound)
}

func TestMutationService_Dismiss(t *testing.T) {
	env := newTestEnv(t)
	svc := &mutationService{core: env.core}
	logins := &loginService{core: env.core}

	env.adapter.EXPECT().TrashLogin(gomock.Any(), gomock.Any()).Return(adapter.ErrServerRejected)

	h, _ := logins.Trash(context.Background(), models.TrashLoginRequest{ID: 9})
	require.NoError(t, svc.Dismiss(h))
	assert.Empty(t, svc.Failed())
}
