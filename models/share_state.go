// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ShareState is a state of the sharing protocol.
type ShareState int

const (
	ShareRequested ShareState = iota
	ShareRecipientKeyFetched
	ShareSourceDecrypted
	ShareReEncrypted
	ShareSubmitted
	ShareConfirmed
	ShareFailed
)

func (s ShareState) String() string {
	switch s {
	case ShareRequested:
		return "requested"
	case ShareRecipientKeyFetched:
		return "recipient_key_fetched"
	case ShareSourceDecrypted:
		return "source_decrypted"
	case ShareReEncrypted:
		return "re_encrypted"
	case ShareSubmitted:
		return "submitted"
	case ShareConfirmed:
		return "confirmed"
	case ShareFailed:
		return "failed"
	default:
		return fmt.Sprintf("ShareState(%d)", int(s))
	}
}

// ShareTransition reports one state change of a sharing run. Err is set
// only for ShareFailed.
type ShareTransition struct {
	LoginID   int64
	Recipient string
	State     ShareState
	Err       error
}
