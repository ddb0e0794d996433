// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/models"
)

// affectedKinds lists the cached kinds a settled mutation invalidates.
func affectedKinds(kind models.EntityKind, op models.OperationKind) []models.EntityKind {
	switch {
	case kind == models.KindLogin && op == models.OperationDelete:
		return []models.EntityKind{models.KindLogin, models.KindTrash}
	case kind == models.KindTrash && op == models.OperationEdit:
		return []models.EntityKind{models.KindTrash, models.KindLogin}
	default:
		return []models.EntityKind{kind}
	}
}

// submit tracks payload as a pending mutation and sends it. The server call
// runs on a context detached from ctx's cancellation: a closed view must not
// abort a write that was already dispatched.
//
// On completion the entry is dropped on success or kept as failed with its
// payload, and only then are the affected collections invalidated. A read
// therefore never combines the refetched server row with the still pending
// overlay of the same write.
func (c *core) submit(ctx context.Context, kind models.EntityKind, op models.OperationKind, payload any) (mutation.Handle, error) {
	h := c.tracker.Record(kind, op, payload)

	log := c.logger.With().
		Str("handle", string(h)).
		Str("kind", string(kind)).
		Str("op", string(op)).
		Logger()
	log.Debug().Msg("mutation submitted")

	err := c.execute(context.WithoutCancel(ctx), kind, op, payload)
	if err != nil {
		err = mapAdapterError(err)
		c.tracker.Fail(h, err)
		c.cache.Invalidate(affectedKinds(kind, op)...)
		log.Warn().Err(err).Msg("mutation failed")
		endSessionIfLost(c.session, err)
		return h, err
	}

	c.tracker.Settle(h)
	c.cache.Invalidate(affectedKinds(kind, op)...)
	log.Debug().Msg("mutation settled")
	return h, nil
}

// execute performs the server call for one tracked payload.
func (c *core) execute(ctx context.Context, kind models.EntityKind, op models.OperationKind, payload any) error {
	var err error

	switch p := payload.(type) {
	case models.Login:
		if op == models.OperationAdd {
			_, err = c.adapter.CreateLogin(ctx, p)
		} else {
			_, err = c.adapter.UpdateLogin(ctx, p)
		}
	case models.TrashLoginRequest:
		err = c.adapter.TrashLogin(ctx, p.ID)

	case models.Note:
		if op == models.OperationAdd {
			_, err = c.adapter.CreateNote(ctx, p)
		} else {
			_, err = c.adapter.UpdateNote(ctx, p)
		}
	case models.DeleteNoteRequest:
		err = c.adapter.DeleteNote(ctx, p.ID)

	case models.SSHKey:
		if op == models.OperationAdd {
			_, err = c.adapter.CreateSSHKey(ctx, p)
		} else {
			_, err = c.adapter.UpdateSSHKey(ctx, p)
		}
	case models.DeleteSSHKeyRequest:
		err = c.adapter.DeleteSSHKey(ctx, p.ID)

	case models.SharedLogin:
		err = c.sharing.run(ctx, p)
	case models.RevokeShareRequest:
		err = c.adapter.DeleteSharedLogin(ctx, p.ID)

	case models.RestoreTrashRequest:
		err = c.adapter.RestoreTrash(ctx, p.LoginID)
	case models.PurgeTrashRequest:
		err = c.adapter.PurgeTrash(ctx, p.LoginID)

	default:
		return fmt.Errorf("%w: %s/%s %T", ErrUnsupportedMutation, kind, op, payload)
	}

	return err
}

type mutationService struct {
	*core
}

// Failed implements [MutationService].
func (s *mutationService) Failed() []mutation.Entry {
	return s.tracker.AllFailed()
}

// Retry implements [MutationService]. The failed entry is replaced by a new
// pending one carrying the same payload.
func (s *mutationService) Retry(ctx context.Context, h mutation.Handle) (mutation.Handle, error) {
	entry, ok := s.tracker.Get(h)
	if !ok || entry.Status != mutation.StatusFailed {
		return "", fmt.Errorf("%w: %s", ErrMutationNotFound, h)
	}
	s.tracker.Dismiss(h)

	return s.submit(ctx, entry.Kind, entry.Operation, entry.Payload)
}

// Dismiss implements [MutationService].
func (s *mutationService) Dismiss(h mutation.Handle) error {
	if !s.tracker.Dismiss(h) {
		return fmt.Errorf("%w: %s", ErrMutationNotFound, h)
	}
	return nil
}
