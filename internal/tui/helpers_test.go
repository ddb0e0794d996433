// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

type testMocks struct {
	auth      *mock.MockAuthService
	logins    *mock.MockLoginService
	notes     *mock.MockNoteService
	sshKeys   *mock.MockSSHKeyService
	sharing   *mock.MockSharingService
	trash     *mock.MockTrashService
	folders   *mock.MockFolderService
	mutations *mock.MockMutationService
}

func newTestServices(t *testing.T) (*service.ClientServices, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:      mock.NewMockAuthService(ctrl),
		logins:    mock.NewMockLoginService(ctrl),
		notes:     mock.NewMockNoteService(ctrl),
		sshKeys:   mock.NewMockSSHKeyService(ctrl),
		sharing:   mock.NewMockSharingService(ctrl),
		trash:     mock.NewMockTrashService(ctrl),
		folders:   mock.NewMockFolderService(ctrl),
		mutations: mock.NewMockMutationService(ctrl),
	}
	services := &service.ClientServices{
		Auth:      m.auth,
		Logins:    m.logins,
		Notes:     m.notes,
		SSHKeys:   m.sshKeys,
		Sharing:   m.sharing,
		Trash:     m.trash,
		Folders:   m.folders,
		Mutations: m.mutations,
	}
	return services, m
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, model tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// exec runs cmd and returns its message; a nil cmd yields nil.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}
