// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// submitFunc turns the form values into a command. A non-empty problem
// keeps the form open and is shown to the user instead.
type submitFunc func(values []string) (cmd tea.Cmd, problem string)

// formField is a single-line input or, when multiline is set, a text area.
type formField struct {
	label     string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

func (f formField) value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func lineField(label, value string, limit int) formField {
	in := newTextInput(strings.ToLower(label), limit)
	in.SetValue(value)
	return formField{label: label, input: in}
}

func secretField(label, value string) formField {
	in := newPasswordInput(strings.ToLower(label))
	in.SetValue(value)
	return formField{label: label, input: in}
}

func areaField(label, value string) formField {
	area := textarea.New()
	area.Placeholder = strings.ToLower(label)
	area.SetWidth(60)
	area.SetHeight(6)
	area.CharLimit = 0
	area.ShowLineNumbers = false
	area.SetValue(value)
	return formField{label: label, multiline: true, area: area}
}

// formModel is the edit form every tab uses.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	submit     submitFunc
	submitting bool
	errMsg     string
}

func newForm(title string, submit submitFunc, fields ...formField) formModel {
	f := formModel{title: title, fields: fields, submit: submit}
	if len(f.fields) > 0 {
		f.fields[0].focus()
	}
	return f
}

func (f formModel) values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.value()
	}
	return out
}

func (f formModel) moveFocus(delta int) (formModel, tea.Cmd) {
	f.fields[f.focus].blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f, f.fields[f.focus].focus()
}

// Update handles tab, shift+tab and the submit keys. ctrl+s always submits;
// enter submits unless the focused field is a text area.
func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return f.moveFocus(1)
		case "shift+tab":
			return f.moveFocus(-1)
		case "ctrl+s":
			return f.doSubmit()
		case "enter":
			if !f.fields[f.focus].multiline {
				return f.doSubmit()
			}
		}
	}

	var cmd tea.Cmd
	field := &f.fields[f.focus]
	if field.multiline {
		field.area, cmd = field.area.Update(msg)
	} else {
		field.input, cmd = field.input.Update(msg)
	}
	return f, cmd
}

func (f formModel) doSubmit() (formModel, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	cmd, problem := f.submit(f.values())
	if problem != "" {
		f.errMsg = problem
		return f, nil
	}
	f.errMsg = ""
	f.submitting = true
	return f, cmd
}

func (f formModel) View() string {
	labelWidth := 0
	for _, field := range f.fields {
		if w := len([]rune(field.label)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(pad(field.label, labelWidth))
		b.WriteString(" │ ")
		if field.multiline {
			b.WriteString("\n")
			b.WriteString(field.area.View())
		} else {
			b.WriteString("[")
			b.WriteString(field.input.View())
			b.WriteString("]")
		}
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\n[Сохранение...]\n")
	}
	writeStatus(&b, "", f.errMsg)

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter/ctrl+s: сохранить")
}

func cmdMutation(done string, call func() error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{done: done, err: call()}
	}
}

func newNoteForm(ctx context.Context, notes service.NoteService, existing *models.NoteContent) formModel {
	title, name, body := "НОВАЯ ЗАМЕТКА", "", ""
	if existing != nil {
		title, name, body = "ИЗМЕНЕНИЕ ЗАМЕТКИ", existing.Name, existing.Body
	}

	submit := func(values []string) (tea.Cmd, string) {
		name, body := strings.TrimSpace(values[0]), values[1]
		if name == "" {
			return nil, "Название обязательно"
		}
		if existing == nil {
			return cmdMutation("Заметка добавлена", func() error {
				_, err := notes.Create(ctx, models.CreateNoteRequest{Name: name, Body: body})
				return err
			}), ""
		}
		id := existing.ID
		return cmdMutation("Заметка обновлена", func() error {
			_, err := notes.Update(ctx, models.UpdateNoteRequest{ID: id, Name: name, Body: body})
			return err
		}), ""
	}

	return newForm(title, submit, lineField("Название", name, 256), areaField("Текст", body))
}

// newSSHKeyForm adds a key pair. Leaving both key fields empty asks the
// service to generate one.
func newSSHKeyForm(ctx context.Context, sshKeys service.SSHKeyService) formModel {
	submit := func(values []string) (tea.Cmd, string) {
		req := models.CreateSSHKeyRequest{
			Name:       strings.TrimSpace(values[0]),
			PrivateKey: strings.TrimSpace(values[1]),
			PublicKey:  strings.TrimSpace(values[2]),
			Notes:      values[3],
		}
		if req.Name == "" {
			return nil, "Название обязательно"
		}
		if (req.PrivateKey == "") != (req.PublicKey == "") {
			return nil, "Укажите оба ключа или оставьте оба поля пустыми"
		}
		return cmdMutation("SSH-ключ добавлен", func() error {
			_, err := sshKeys.Create(ctx, req)
			return err
		}), ""
	}

	return newForm("НОВЫЙ SSH-КЛЮЧ", submit,
		lineField("Название", "", 256),
		areaField("Приватный ключ", ""),
		lineField("Публичный ключ", "", 4096),
		lineField("Заметки", "", 1024),
	)
}

func newSSHKeyEditForm(ctx context.Context, sshKeys service.SSHKeyService, row models.SSHKeyRow) formModel {
	submit := func(values []string) (tea.Cmd, string) {
		req := models.UpdateSSHKeyRequest{ID: row.ID, Name: strings.TrimSpace(values[0]), Notes: values[1]}
		if req.Name == "" {
			return nil, "Название обязательно"
		}
		return cmdMutation("SSH-ключ обновлён", func() error {
			_, err := sshKeys.Update(ctx, req)
			return err
		}), ""
	}

	return newForm("ИЗМЕНЕНИЕ SSH-КЛЮЧА", submit,
		lineField("Название", row.Name, 256),
		lineField("Заметки", row.Notes, 1024),
	)
}

func newShareForm(ctx context.Context, sharing service.SharingService, row models.LoginRow) formModel {
	submit := func(values []string) (tea.Cmd, string) {
		email := strings.TrimSpace(values[0])
		if email == "" {
			return nil, "Укажите email получателя"
		}
		return cmdMutation("Доступ к \""+row.Name+"\" выдан", func() error {
			_, err := sharing.Share(ctx, models.ShareLoginRequest{LoginID: row.ID, RecipientEmail: email})
			return err
		}), ""
	}

	return newForm("ПОДЕЛИТЬСЯ: "+row.Name, submit, lineField("Email получателя", "", 254))
}

type searchMsg struct {
	text string
}

func newSearchForm(current string) formModel {
	submit := func(values []string) (tea.Cmd, string) {
		text := strings.TrimSpace(values[0])
		return func() tea.Msg { return searchMsg{text: text} }, ""
	}
	return newForm("ПОИСК", submit, lineField("Строка поиска", current, 256))
}
