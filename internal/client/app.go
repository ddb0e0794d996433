// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

const (
	noticeLoggedOut      = "Вы вышли из хранилища"
	noticeSessionExpired = "Сессия истекла, войдите снова"
)

type App struct {
	ui         UI
	background Background
	logger     *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ui UI, background Background, log *logger.Logger) *App {
	return &App{
		ui:         ui,
		background: background,
		logger:     log.WithComponent("client"),
	}
}

// Run stops on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.background.Start(ctx)
	defer a.background.Stop()

	notice := ""
	for {
		login, err := a.ui.LoginFlow(ctx, notice)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		exit, err := a.ui.MainLoop(ctx, login)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch exit {
		case tui.ExitLogout:
			a.logger.Info().Str("login", login).Msg("logged out")
			notice = noticeLoggedOut
		case tui.ExitSessionEnded:
			a.logger.Info().Str("login", login).Msg("session ended")
			notice = noticeSessionExpired
		default:
			return nil
		}
	}
}
