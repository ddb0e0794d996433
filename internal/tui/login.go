// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// LoginModel is the login screen. It renders the login and master password
// inputs and dispatches an async login command on submit. On success an
// [authResult] is produced and handled by [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newTextInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// NewLoginModel creates a [LoginModel] with the login input focused.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	loginInput := newTextInput("email", 254)
	loginInput.Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{loginInput, newPasswordInput("master password")},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [authResult] clears the submitting state and shows the error, if any.
//   - esc goes back to the menu.
//   - tab and shift+tab move the focus.
//   - enter validates the inputs and dispatches the login command.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case "shift+tab", "up":
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if login == "" || pass == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		err := auth.Login(ctx, models.User{Login: login, MasterPassword: pass})
		return authResult{login: login, err: err}
	}
}

// UnlockModel reopens the saved session with the master password only.
type UnlockModel struct {
	ctx   context.Context
	auth  service.AuthService
	login string

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] for the saved session of login.
func NewUnlockModel(ctx context.Context, auth service.AuthService, login string) *UnlockModel {
	in := newPasswordInput("master password")
	in.Focus()
	return &UnlockModel{ctx: ctx, auth: auth, login: login, input: in}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err == nil {
			return m, nil
		}
		// сохранённая сессия больше не годится, только полный вход
		if errors.Is(result.err, service.ErrSessionExpired) || errors.Is(result.err, service.ErrNoLocalSession) {
			notice := menuNotice{text: humanizeError(result.err)}
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
		}
		m.errMsg = humanizeError(result.err)
		m.input.SetValue("")
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			pass := m.input.Value()
			if pass == "" {
				m.errMsg = "Введите мастер-пароль"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(pass)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Логин   │ ")
	b.WriteString(m.login)
	b.WriteString("\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Разблокировать...]\n")
	} else {
		b.WriteString("\n[Разблокировать]\n")
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("РАЗБЛОКИРОВКА", strings.TrimRight(b.String(), "\n"), "esc: меню │ enter: подтвердить")
}

func (m *UnlockModel) cmdUnlock(pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		login, err := auth.Unlock(ctx, pass)
		return authResult{login: login, err: err}
	}
}

func moveFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
