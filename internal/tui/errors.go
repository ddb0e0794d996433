// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

const serverUnavailableMessage = "Отсутствует сеть или Сервер недоступен"

// humanizeError turns a service error into the line shown to the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или мастер-пароль"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "Пользователь с таким логином уже существует"
	case errors.Is(err, service.ErrRecipientNotFound):
		return "Получатель не найден или ещё не входил в систему"
	case errors.Is(err, service.ErrKeyPairUnavailable):
		return "Ключ для общего доступа не открывается этим мастер-паролем"
	case errors.Is(err, service.ErrDecryption):
		return "Не удалось расшифровать данные"
	case errors.Is(err, service.ErrNoActiveSession):
		return "Сессия не активна, войдите снова"
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrNoLocalSession):
		return "Сохранённая сессия недоступна, войдите снова"
	case errors.Is(err, service.ErrNetwork):
		return serverUnavailableMessage
	}
	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableMessage
	}

	return err.Error()
}
