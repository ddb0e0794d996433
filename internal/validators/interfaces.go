// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks tagged mutation requests and credentials before
// they are dispatched to the server.
//
// Validate accepts an optional list of field names to restrict the check
// to a subset of fields. Without fields every rule for the type is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
