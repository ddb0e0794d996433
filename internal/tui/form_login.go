// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	loginFieldName = iota
	loginFieldUsername
	loginFieldPassword
	loginFieldURL
	loginFieldNotes
	loginFieldFolder
	loginFieldFavorite
)

// newLoginForm creates or, when existing is set, edits a login. password is
// the opened password of existing.
func newLoginForm(ctx context.Context, logins service.LoginService, folders []models.Folder, existing *models.Login, password string) formModel {
	title := "НОВЫЙ ЛОГИН"
	var current models.Login
	if existing != nil {
		title = "ИЗМЕНЕНИЕ ЛОГИНА"
		current = *existing
	}

	favorite := "нет"
	if current.IsFavorite {
		favorite = "да"
	}

	submit := func(values []string) (tea.Cmd, string) {
		form := models.LoginForm{
			Name:         strings.TrimSpace(values[loginFieldName]),
			Username:     strings.TrimSpace(values[loginFieldUsername]),
			Password:     values[loginFieldPassword],
			URL:          strings.TrimSpace(values[loginFieldURL]),
			Notes:        values[loginFieldNotes],
			CustomFields: current.CustomFields,
			IsFavorite:   isYes(values[loginFieldFavorite]),
		}
		switch {
		case form.Name == "":
			return nil, "Название обязательно"
		case form.Password == "":
			return nil, "Пароль обязателен"
		}

		folderID, ok := resolveFolder(folders, values[loginFieldFolder])
		if !ok {
			return nil, "Папка не найдена"
		}
		form.FolderID = folderID

		if existing == nil {
			return cmdMutation("Логин добавлен", func() error {
				_, err := logins.Create(ctx, models.CreateLoginRequest{LoginForm: form})
				return err
			}), ""
		}

		req := models.UpdateLoginRequest{ID: current.ID, LoginForm: form}
		if len(current.URLs) > 0 {
			req.URLID = current.URLs[0].ID
		}
		return cmdMutation("Логин обновлён", func() error {
			_, err := logins.Update(ctx, req)
			return err
		}), ""
	}

	return newForm(title, submit,
		lineField("Название", current.Name, 256),
		lineField("Пользователь", current.Username, 256),
		secretField("Пароль", password),
		lineField("URL", current.PrimaryURL(), 2048),
		lineField("Заметки", current.Notes, 4096),
		lineField("Папка", folderName(folders, current.FolderID), 256),
		lineField("Избранное", favorite, 3),
	)
}

// resolveFolder maps a typed folder name to its id. Empty input and the
// "No folder" sentinel mean no folder.
func resolveFolder(folders []models.Folder, name string) (*int64, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, models.NoFolder.Name) {
		return nil, true
	}
	for _, f := range folders {
		if strings.EqualFold(f.Name, name) {
			if f.ID == models.NoFolderID {
				return nil, true
			}
			id := f.ID
			return &id, true
		}
	}
	return nil, false
}

func folderName(folders []models.Folder, id *int64) string {
	if id == nil {
		return ""
	}
	for _, f := range folders {
		if f.ID == *id {
			return f.Name
		}
	}
	return ""
}

func isYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "да", "y", "yes", "д":
		return true
	}
	return false
}
