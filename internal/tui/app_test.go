// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newLoginFlow(auth service.AuthService, start string, savedLogin string) RootModel {
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(savedLogin != ""),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}
	if savedLogin != "" {
		pages[pageUnlock] = NewUnlockModel(ctx, auth, savedLogin)
	}
	return NewRootModel(pages, start, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))
}

// navigate delivers the NavigateTo produced by cmd.
func navigate(t *testing.T, r tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	msg := exec(cmd)
	nav, ok := msg.(NavigateTo)
	require.True(t, ok, "expected NavigateTo, got %T", msg)
	r, _ = r.Update(nav)
	return r
}

func TestRootModel_Login(t *testing.T) {
	services, mk := newTestServices(t)
	var r tea.Model = newLoginFlow(services.Auth, pageMenu, "")

	_, cmd := r.Update(enterKey)
	r = navigate(t, r, cmd)
	require.IsType(t, &LoginModel{}, r.(RootModel).current)

	r = typeText(t, r, testLogin)
	r, _ = r.Update(tabKey)
	r = typeText(t, r, "wrong")

	t.Run("wrong password stays on the page", func(t *testing.T) {
		mk.auth.EXPECT().Login(gomock.Any(), models.User{Login: testLogin, MasterPassword: "wrong"}).
			Return(service.ErrWrongPassword)

		next, cmd := r.Update(enterKey)
		next, cmd = next.Update(exec(cmd))
		assert.Nil(t, cmd)
		assert.Contains(t, next.View(), "Неверный логин или мастер-пароль")
	})

	t.Run("success quits with the login", func(t *testing.T) {
		mk.auth.EXPECT().Login(gomock.Any(), models.User{Login: testLogin, MasterPassword: "wrong"}).Return(nil)

		next, cmd := r.Update(enterKey)
		next, cmd = next.Update(exec(cmd))
		requireQuit(t, cmd)
		assert.Equal(t, testLogin, next.(RootModel).login)
		assert.False(t, next.(RootModel).quitByUser)
	})
}

func TestRootModel_EmptyLoginIsRejectedLocally(t *testing.T) {
	services, _ := newTestServices(t)
	var r tea.Model = newLoginFlow(services.Auth, pageLogin, "")

	r, cmd := r.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Логин и пароль обязательны")
}

func TestRootModel_Register(t *testing.T) {
	services, mk := newTestServices(t)
	var r tea.Model = newLoginFlow(services.Auth, pageRegister, "")

	r = typeText(t, r, testLogin)
	r, _ = r.Update(tabKey)
	r = typeText(t, r, "master")
	r, _ = r.Update(tabKey)
	r = typeText(t, r, "mistyped")

	r, cmd := r.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Пароли не совпадают")

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	r = typeText(t, r, "master")

	mk.auth.EXPECT().Register(gomock.Any(), models.User{Login: testLogin, MasterPassword: "master"}).
		Return(service.ErrLoginAlreadyExists)
	r, cmd = r.Update(enterKey)
	r, _ = r.Update(exec(cmd))
	assert.Contains(t, r.View(), "Пользователь с таким логином уже существует")
}

func TestRootModel_Unlock(t *testing.T) {
	t.Run("starts on the saved login", func(t *testing.T) {
		services, mk := newTestServices(t)
		var r tea.Model = newLoginFlow(services.Auth, pageUnlock, testLogin)
		assert.Contains(t, r.View(), testLogin)

		r = typeText(t, r, "master")
		mk.auth.EXPECT().Unlock(gomock.Any(), "master").Return(testLogin, nil)

		r, cmd := r.Update(enterKey)
		r, cmd = r.Update(exec(cmd))
		requireQuit(t, cmd)
		assert.Equal(t, testLogin, r.(RootModel).login)
	})

	t.Run("wrong password clears the input", func(t *testing.T) {
		services, mk := newTestServices(t)
		var r tea.Model = newLoginFlow(services.Auth, pageUnlock, testLogin)

		r = typeText(t, r, "nope")
		mk.auth.EXPECT().Unlock(gomock.Any(), "nope").Return("", service.ErrWrongPassword)

		r, cmd := r.Update(enterKey)
		r, cmd = r.Update(exec(cmd))
		assert.Nil(t, cmd)

		page := r.(RootModel).current.(*UnlockModel)
		assert.Empty(t, page.input.Value())
		assert.Equal(t, "Неверный логин или мастер-пароль", page.errMsg)
	})

	t.Run("expired session falls back to the menu", func(t *testing.T) {
		services, mk := newTestServices(t)
		var r tea.Model = newLoginFlow(services.Auth, pageUnlock, testLogin)

		r = typeText(t, r, "master")
		mk.auth.EXPECT().Unlock(gomock.Any(), "master").Return("", service.ErrSessionExpired)

		r, cmd := r.Update(enterKey)
		r, cmd = r.Update(exec(cmd))
		nav := exec(cmd).(NavigateTo)
		require.Equal(t, pageMenu, nav.Page)

		r, cmd = r.Update(nav)
		require.IsType(t, &MenuModel{}, r.(RootModel).current)
		r, _ = r.Update(nav.Payload)
		assert.Contains(t, r.View(), "Сохранённая сессия недоступна")
	})
}

func TestRootModel_BuildInfo(t *testing.T) {
	services, _ := newTestServices(t)
	var r tea.Model = newLoginFlow(services.Auth, pageMenu, "")

	r, _ = r.Update(runes("v"))
	view := r.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")

	r, _ = r.Update(escKey)
	assert.Contains(t, r.View(), "ГЛАВНОЕ МЕНЮ")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	services, _ := newTestServices(t)
	var r tea.Model = newLoginFlow(services.Auth, pageLogin, "")

	r, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	requireQuit(t, cmd)
	assert.True(t, r.(RootModel).quitByUser)
}

func TestMenuModel_OffersUnlock(t *testing.T) {
	m := NewMenuModel(true)
	assert.Contains(t, m.View(), "Разблокировать")

	_, cmd := m.Update(enterKey)
	assert.Equal(t, NavigateTo{Page: pageUnlock}, exec(cmd))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(enterKey)
	assert.Equal(t, NavigateTo{Page: pageRegister}, exec(cmd))
}
