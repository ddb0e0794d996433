// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

type detailField struct {
	label string
	value string
}

// detailModel is an opened entry. The secret is decrypted when the detail is
// loaded but stays masked until the user reveals it.
type detailModel struct {
	title  string
	fields []detailField

	secretLabel string
	secret      string
	revealed    bool

	// username is what "u" copies; empty when the entry has none.
	username string
}

func loginDetail(login models.Login, password string) detailModel {
	fields := []detailField{
		{"Название", login.Name},
		{"Пользователь", login.Username},
	}
	for _, u := range login.URIs() {
		fields = append(fields, detailField{"URL", u})
	}
	if login.Notes != "" {
		fields = append(fields, detailField{"Заметки", login.Notes})
	}
	for _, f := range login.CustomFields {
		fields = append(fields, detailField{f.Name, f.Value})
	}
	if login.IsFavorite {
		fields = append(fields, detailField{"Избранное", "да"})
	}

	return detailModel{
		title:       "ЛОГИН",
		fields:      fields,
		secretLabel: "Пароль",
		secret:      password,
		username:    login.Username,
	}
}

func noteDetail(note models.NoteContent) detailModel {
	return detailModel{
		title:       "ЗАМЕТКА",
		fields:      []detailField{{"Название", note.Name}},
		secretLabel: "Текст",
		secret:      note.Body,
	}
}

func sshKeyDetail(row models.SSHKeyRow, privateKey string) detailModel {
	return detailModel{
		title: "SSH-КЛЮЧ",
		fields: []detailField{
			{"Название", row.Name},
			{"Публичный ключ", row.PublicKey},
			{"Заметки", row.Notes},
		},
		secretLabel: "Приватный ключ",
		secret:      privateKey,
	}
}

func sharedLoginDetail(grant models.SharedLogin, password string) detailModel {
	fields := []detailField{
		{"Название", grant.Name},
		{"Пользователь", grant.Username},
	}
	for _, u := range grant.URLs {
		fields = append(fields, detailField{"URL", u})
	}
	fields = append(fields, detailField{"От кого", grant.SharedBy})

	return detailModel{
		title:       "ДОСТУП К ЛОГИНУ",
		fields:      fields,
		secretLabel: "Пароль",
		secret:      password,
		username:    grant.Username,
	}
}

func (d detailModel) View(status, errMsg string) string {
	labelWidth := len([]rune(d.secretLabel))
	for _, f := range d.fields {
		if w := len([]rune(f.label)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, f := range d.fields {
		b.WriteString(pad(f.label, labelWidth))
		b.WriteString(" │ ")
		b.WriteString(valueOrDash(f.value))
		b.WriteString("\n")
	}

	if d.secretLabel != "" {
		b.WriteString(pad(d.secretLabel, labelWidth))
		b.WriteString(" │ ")
		switch {
		case !d.revealed:
			b.WriteString("********")
		case strings.Contains(d.secret, "\n"):
			// многострочный секрет (PEM, текст заметки) выводим под полем
			b.WriteString("\n")
			b.WriteString(d.secret)
		default:
			b.WriteString(d.secret)
		}
		b.WriteString("\n")
	}
	writeStatus(&b, status, errMsg)

	hotKeys := "esc: назад │ space: показать/скрыть │ c: копировать " + strings.ToLower(d.secretLabel)
	if d.username != "" {
		hotKeys += " │ u: копировать пользователя"
	}
	return renderPage(d.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
