// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. mapHTTPError wraps them in a [RejectedError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrNetwork wraps transport failures: no connection, timeouts and
	// cancelled contexts. The request may be retried.
	ErrNetwork = errors.New("network error")

	// ErrServerRejected is matched by every [RejectedError].
	ErrServerRejected = errors.New("server rejected request")

	// ErrRecipientNotFound is returned by GetRecipientPublicKey when no
	// account matches the email.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid server response")
)

// RejectedError is a response the server refused, either by status code or
// by an "error" field in the body. It matches [ErrServerRejected] and the
// status sentinel, if any, with errors.Is.
type RejectedError struct {
	Status int
	Reason string
	status error
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("server rejected request: http %d", e.Status)
	}
	return fmt.Sprintf("server rejected request: http %d: %s", e.Status, e.Reason)
}

func (e *RejectedError) Unwrap() []error {
	if e.status == nil {
		return []error{ErrServerRejected}
	}
	return []error{ErrServerRejected, e.status}
}
