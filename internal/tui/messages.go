// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

// NavigateTo switches the login flow to another page. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// authResult finishes a login, register or unlock attempt.
type authResult struct {
	login string
	err   error
}

// menuNotice is shown on top of the menu after a page sends the user back.
type menuNotice struct {
	text string
}

// vaultChangedMsg is sent when the tracked mutations or a cached collection
// change outside the current command.
type vaultChangedMsg struct{}

// sessionEndedMsg is sent when the session store is cleared.
type sessionEndedMsg struct{}

type shareTransitionMsg struct {
	transition models.ShareTransition
}

type rowsLoadedMsg struct {
	tab    vaultTab
	rows   []listRow
	failed int
	err    error
}

type foldersLoadedMsg struct {
	folders []models.Folder
	err     error
}

type detailLoadedMsg struct {
	detail detailModel
	err    error
}

// formLoadedMsg opens an edit form once the entity it edits was fetched.
type formLoadedMsg struct {
	form formModel
	err  error
}

type mutationDoneMsg struct {
	done string
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
