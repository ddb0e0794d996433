// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityKind names a collection of the vault that has its own list view and
// its own set of tracked mutations.
type EntityKind string

const (
	KindLogin       EntityKind = "login"
	KindNote        EntityKind = "note"
	KindSSHKey      EntityKind = "sshkey"
	KindSharedLogin EntityKind = "shared_login"
	KindTrash       EntityKind = "trash"
	KindFolder      EntityKind = "folder"
)

// OperationKind is the kind of change a mutation applies to its entity.
type OperationKind string

const (
	OperationAdd    OperationKind = "add"
	OperationEdit   OperationKind = "edit"
	OperationDelete OperationKind = "delete"
)

// Mutation is implemented by every tagged request that changes server state.
// Kind and Operation together form the key under which the request is
// tracked while it is in flight.
type Mutation interface {
	Kind() EntityKind
	Operation() OperationKind
}

// Targeted is implemented by mutations that address an existing entity.
type Targeted interface {
	Mutation
	TargetID() int64
}
