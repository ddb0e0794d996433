// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the vault client. It runs two
// Bubble Tea programs in turn: the login flow, which ends with an open
// session, and the vault browser, which runs until the user quits, logs
// out or the session ends.
package tui

import (
	"context"
	"sync/atomic"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Clipboard receives copied secrets.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SessionNotifier reports the end of a session. *session.Store implements
// it.
type SessionNotifier interface {
	OnClear(fn func())
}

type Option func(*TUI)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(t *TUI) {
		t.clipboard = c
	}
}

// WithProgramOptions replaces the options both programs are started with.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(t *TUI) {
		t.programOpts = opts
	}
}

type TUI struct {
	services    *service.ClientServices
	buildInfo   models.AppBuildInfo
	clipboard   Clipboard
	programOpts []tea.ProgramOption
	logger      *logger.Logger

	// vault is the running vault browser; change hooks deliver to it.
	vault atomic.Pointer[tea.Program]
}

// New creates the interface and subscribes it to the change hooks of the
// services and of the session.
func New(services *service.ClientServices, sessionNotifier SessionNotifier, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) *TUI {
	t := &TUI{
		services:    services,
		buildInfo:   buildInfo,
		clipboard:   systemClipboard{},
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
		logger:      log.WithComponent("tui"),
	}
	for _, opt := range opts {
		opt(t)
	}

	if services.Tracker != nil {
		services.Tracker.OnChange(func() { t.send(vaultChangedMsg{}) })
	}
	if services.Cache != nil {
		services.Cache.OnChange(func() { t.send(vaultChangedMsg{}) })
	}
	if services.Sharing != nil {
		services.Sharing.OnTransition(func(tr models.ShareTransition) { t.send(shareTransitionMsg{transition: tr}) })
	}
	if sessionNotifier != nil {
		sessionNotifier.OnClear(func() { t.send(sessionEndedMsg{}) })
	}

	return t
}

func (t *TUI) send(msg tea.Msg) {
	if p := t.vault.Load(); p != nil {
		p.Send(msg)
	}
}

// LoginFlow runs the menu, login, registration and unlock pages until a
// session is open and returns its login. notice is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (string, error) {
	savedLogin, err := t.services.Auth.SavedLogin(ctx)
	canUnlock := err == nil && savedLogin != ""

	menu := NewMenuModel(canUnlock)
	menu.status = notice

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.services.Auth),
		pageRegister: NewRegisterModel(ctx, t.services.Auth),
	}
	start := pageMenu
	if canUnlock {
		pages[pageUnlock] = NewUnlockModel(ctx, t.services.Auth, savedLogin)
		start = pageUnlock
	}

	root := NewRootModel(pages, start, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, t.options(ctx)...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || result.login == "" {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("login", result.login).Msg("session opened")
	return result.login, nil
}

// MainLoop runs the vault browser for login and reports why it closed.
func (t *TUI) MainLoop(ctx context.Context, login string) (Exit, error) {
	model := newVaultModel(ctx, t.services, t.clipboard, login)
	p := tea.NewProgram(model, t.options(ctx)...)

	t.vault.Store(p)
	defer t.vault.Store(nil)

	finalModel, runErr := p.Run()
	if runErr != nil {
		return ExitQuit, runErr
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return ExitQuit, tea.ErrProgramKilled
	}

	t.logger.Info().Str("login", login).Int("exit", int(result.exit)).Msg("vault closed")
	return result.exit, nil
}

func (t *TUI) options(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOpts...)
}
