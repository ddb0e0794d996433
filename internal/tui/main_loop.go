// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Exit tells the caller of [TUI.MainLoop] why the vault screen closed.
type Exit int

const (
	ExitQuit Exit = iota
	ExitLogout
	ExitSessionEnded
)

type vaultMode int

const (
	modeList vaultMode = iota
	modeDetail
	modeForm
	modeConfirm
)

const statusTTL = 3 * time.Second

// vaultModel is the vault browser: one tab per collection plus the failed
// mutations. Lists are reloaded whenever the mutation tracker or the query
// cache reports a change.
type vaultModel struct {
	ctx       context.Context
	services  *service.ClientServices
	clipboard Clipboard
	login     string

	tab         vaultTab
	rows        []listRow
	idx         int
	loading     bool
	dirty       bool
	failedCount int

	search    string
	folders   []models.Folder
	folderIdx int // -1: все папки

	mode    vaultMode
	detail  detailModel
	form    formModel
	confirm confirmModel

	status string
	errMsg string

	exiting bool
	exit    Exit
}

func newVaultModel(ctx context.Context, services *service.ClientServices, clip Clipboard, login string) vaultModel {
	return vaultModel{
		ctx:       ctx,
		services:  services,
		clipboard: clip,
		login:     login,
		loading:   true,
		folderIdx: -1,
	}
}

func (m vaultModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.cmdLoadFolders())
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionEndedMsg:
		if m.exiting {
			return m, nil
		}
		m.exiting = true
		m.exit = ExitSessionEnded
		return m, tea.Quit
	case logoutDoneMsg:
		m.exit = ExitLogout
		return m, tea.Quit
	case vaultChangedMsg:
		return m.reload()
	case shareTransitionMsg:
		m.applyShareTransition(msg.transition)
		return m, nil
	case rowsLoadedMsg:
		if msg.tab != m.tab {
			return m, nil
		}
		m.loading = false
		m.failedCount = msg.failed
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.rows = msg.rows
			m.clampIdx()
		}
		if m.dirty {
			m.dirty = false
			return m.reload()
		}
		return m, nil
	case foldersLoadedMsg:
		if msg.err == nil {
			m.folders = msg.folders
		}
		return m, nil
	case detailLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detail = msg.detail
		m.mode = modeDetail
		return m, nil
	case formLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form = msg.form
		m.mode = modeForm
		return m, nil
	case mutationDoneMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
			m.status = msg.done
		}
		return m.reload()
	case searchMsg:
		m.search = msg.text
		m.idx = 0
		return m.reload()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Скопировано: " + msg.what
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.exiting = true
		m.exit = ExitQuit
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	case modeForm:
		return m.updateForm(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m vaultModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		m.status = "Выполняется…"
		return m, m.confirm.onYes
	case key.Matches(keyMsg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m vaultModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc) {
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(keyMsg)
	if m.form.submitting {
		// форма закрывается сразу, строка видна в списке как ожидающая
		m.mode = modeList
		m.status = "Сохраняется…"
	}
	return m, cmd
}

func (m vaultModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		m.detail = detailModel{}
	case keyMsg.String() == " ":
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		if m.detail.secretLabel == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		secret := m.detail.secret
		return m, m.cmdCopy(strings.ToLower(m.detail.secretLabel), func() (string, error) { return secret, nil })
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.username == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		username := m.detail.username
		return m, m.cmdCopy("пользователь", func() (string, error) { return username, nil })
	}
	return m, nil
}

func (m vaultModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		m.exiting = true
		m.exit = ExitQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.exiting = true
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.tab):
		return m.switchTab((m.tab + 1) % tabCount)
	case key.Matches(keyMsg, keys.backtab):
		return m.switchTab((m.tab + tabCount - 1) % tabCount)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		next, cmd := m.reload()
		return next, tea.Batch(cmd, m.cmdLoadFolders())
	case key.Matches(keyMsg, keys.newItem):
		return m.startCreate()
	case key.Matches(keyMsg, keys.search) && m.tab == tabLogins:
		m.form = newSearchForm(m.search)
		m.mode = modeForm
		return m, nil
	case keyMsg.String() == "f" && m.tab == tabLogins:
		return m.cycleFolder()
	}

	row, ok := m.current()
	if !ok {
		return m, nil
	}

	if m.tab == tabFailed {
		return m.updateFailed(keyMsg, row)
	}

	if !row.actionable || row.id == nil {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.delete),
			key.Matches(keyMsg, keys.copy), key.Matches(keyMsg, keys.copyUser), key.Matches(keyMsg, keys.share),
			key.Matches(keyMsg, keys.restore):
			m.errMsg = "Запись ещё сохраняется, дождитесь ответа сервера"
		}
		return m, nil
	}
	m.errMsg = ""

	switch {
	case key.Matches(keyMsg, keys.enter):
		return m, m.cmdOpen(row)
	case key.Matches(keyMsg, keys.edit):
		return m, m.cmdEdit(row)
	case key.Matches(keyMsg, keys.delete):
		return m.startDelete(row)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopySecret(row)
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.cmdCopyUsername(row)
	case key.Matches(keyMsg, keys.share) && m.tab == tabLogins:
		m.form = newShareForm(m.ctx, m.services.Sharing, row.entity.(models.LoginRow))
		m.mode = modeForm
		return m, nil
	case key.Matches(keyMsg, keys.restore) && m.tab == tabTrash:
		id := *row.id
		m.status = "Восстанавливается…"
		return m, cmdMutation("Логин восстановлен", func() error {
			_, err := m.services.Trash.Restore(m.ctx, models.RestoreTrashRequest{LoginID: id})
			return err
		})
	}
	return m, nil
}

func (m vaultModel) updateFailed(keyMsg tea.KeyMsg, row listRow) (tea.Model, tea.Cmd) {
	entry := row.entity.(mutation.Entry)
	switch {
	case key.Matches(keyMsg, keys.retry):
		m.status = "Повторная отправка…"
		return m, cmdMutation("Отправлено повторно", func() error {
			_, err := m.services.Mutations.Retry(m.ctx, entry.Handle)
			return err
		})
	case key.Matches(keyMsg, keys.dismiss):
		if err := m.services.Mutations.Dismiss(entry.Handle); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.status = "Ошибка скрыта"
		return m.reload()
	}
	return m, nil
}

func (m vaultModel) switchTab(tab vaultTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.rows = nil
	m.idx = 0
	m.errMsg = ""
	m.dirty = false
	m.loading = true
	return m, m.cmdLoad()
}

func (m vaultModel) reload() (tea.Model, tea.Cmd) {
	if m.loading {
		m.dirty = true
		return m, nil
	}
	m.loading = true
	return m, m.cmdLoad()
}

func (m vaultModel) cycleFolder() (tea.Model, tea.Cmd) {
	if len(m.folders) == 0 {
		m.status = "Папок нет"
		return m, nil
	}
	m.folderIdx++
	if m.folderIdx >= len(m.folders) {
		m.folderIdx = -1
	}
	m.idx = 0
	return m.reload()
}

func (m vaultModel) startCreate() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabLogins:
		m.form = newLoginForm(m.ctx, m.services.Logins, m.folders, nil, "")
	case tabNotes:
		m.form = newNoteForm(m.ctx, m.services.Notes, nil)
	case tabSSHKeys:
		m.form = newSSHKeyForm(m.ctx, m.services.SSHKeys)
	default:
		return m, nil
	}
	m.mode = modeForm
	return m, nil
}

func (m vaultModel) startDelete(row listRow) (tea.Model, tea.Cmd) {
	id := *row.id
	name := row.cells[0]
	ctx := m.ctx

	var (
		question string
		cmd      tea.Cmd
	)
	switch m.tab {
	case tabLogins:
		question = "Переместить \"" + name + "\" в корзину?"
		cmd = cmdMutation("Логин перемещён в корзину", func() error {
			_, err := m.services.Logins.Trash(ctx, models.TrashLoginRequest{ID: id})
			return err
		})
	case tabNotes:
		question = "Удалить заметку \"" + name + "\"?"
		cmd = cmdMutation("Заметка удалена", func() error {
			_, err := m.services.Notes.Delete(ctx, models.DeleteNoteRequest{ID: id})
			return err
		})
	case tabSSHKeys:
		question = "Удалить SSH-ключ \"" + name + "\"?"
		cmd = cmdMutation("SSH-ключ удалён", func() error {
			_, err := m.services.SSHKeys.Delete(ctx, models.DeleteSSHKeyRequest{ID: id})
			return err
		})
	case tabSharedByMe, tabSharedWithMe:
		question = "Отозвать доступ к \"" + name + "\"?"
		cmd = cmdMutation("Доступ отозван", func() error {
			_, err := m.services.Sharing.Revoke(ctx, models.RevokeShareRequest{ID: id})
			return err
		})
	case tabTrash:
		question = "Удалить \"" + name + "\" навсегда?"
		cmd = cmdMutation("Логин удалён навсегда", func() error {
			_, err := m.services.Trash.Purge(ctx, models.PurgeTrashRequest{LoginID: id})
			return err
		})
	default:
		return m, nil
	}

	m.confirm = confirmModel{message: question, onYes: cmd}
	m.mode = modeConfirm
	return m, nil
}

func (m *vaultModel) applyShareTransition(tr models.ShareTransition) {
	switch tr.State {
	case models.ShareFailed:
		m.status = ""
		m.errMsg = "Не удалось поделиться с " + tr.Recipient + ": " + humanizeError(tr.Err)
	case models.ShareConfirmed:
		m.errMsg = ""
		m.status = "Доступ для " + tr.Recipient + " подтверждён сервером"
	default:
		m.status = "Передача доступа " + tr.Recipient + ": " + shareStateTitle(tr.State)
	}
}

func shareStateTitle(s models.ShareState) string {
	switch s {
	case models.ShareRequested:
		return "запрос ключа получателя"
	case models.ShareRecipientKeyFetched:
		return "ключ получателя получен"
	case models.ShareSourceDecrypted:
		return "пароль расшифрован"
	case models.ShareReEncrypted:
		return "пароль зашифрован для получателя"
	case models.ShareSubmitted:
		return "отправлено на сервер"
	default:
		return s.String()
	}
}

func (m vaultModel) current() (listRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return listRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *vaultModel) clampIdx() {
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m vaultModel) loginQuery() models.LoginQuery {
	q := models.LoginQuery{Search: m.search}
	if m.folderIdx >= 0 && m.folderIdx < len(m.folders) {
		id := m.folders[m.folderIdx].ID
		q.FolderID = &id
	}
	return q
}

// ── Commands ──

func (m vaultModel) cmdLoad() tea.Cmd {
	ctx, services, tab, query := m.ctx, m.services, m.tab, m.loginQuery()

	return func() tea.Msg {
		msg := rowsLoadedMsg{tab: tab}
		failed := services.Mutations.Failed()
		msg.failed = len(failed)

		switch tab {
		case tabLogins:
			rows, err := services.Logins.List(ctx, query)
			msg.rows, msg.err = toListRows(rows, loginCells), err
		case tabNotes:
			rows, err := services.Notes.List(ctx)
			msg.rows, msg.err = toListRows(rows, noteCells), err
		case tabSSHKeys:
			rows, err := services.SSHKeys.List(ctx)
			msg.rows, msg.err = toListRows(rows, sshKeyCells), err
		case tabSharedByMe:
			rows, err := services.Sharing.ListSharedByMe(ctx)
			msg.rows, msg.err = toListRows(rows, sharedByMeCells), err
		case tabSharedWithMe:
			rows, err := services.Sharing.ListSharedWithMe(ctx)
			msg.rows, msg.err = toListRows(rows, sharedWithMeCells), err
		case tabTrash:
			rows, err := services.Trash.List(ctx)
			msg.rows, msg.err = toListRows(rows, trashCells), err
		case tabFailed:
			msg.rows = failedRows(failed)
		}
		return msg
	}
}

func (m vaultModel) cmdLoadFolders() tea.Cmd {
	ctx, folders := m.ctx, m.services.Folders
	return func() tea.Msg {
		list, err := folders.List(ctx)
		return foldersLoadedMsg{folders: list, err: err}
	}
}

func (m vaultModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m vaultModel) cmdOpen(row listRow) tea.Cmd {
	ctx, s, id := m.ctx, m.services, *row.id

	switch m.tab {
	case tabLogins:
		return func() tea.Msg {
			login, password, err := openLogin(ctx, s.Logins, id)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			return detailLoadedMsg{detail: loginDetail(login, password)}
		}
	case tabNotes:
		return func() tea.Msg {
			note, err := s.Notes.Reveal(ctx, id)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			return detailLoadedMsg{detail: noteDetail(note)}
		}
	case tabSSHKeys:
		entity := row.entity.(models.SSHKeyRow)
		return func() tea.Msg {
			private, err := s.SSHKeys.RevealPrivateKey(ctx, id)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			return detailLoadedMsg{detail: sshKeyDetail(entity, private)}
		}
	case tabSharedWithMe:
		return func() tea.Msg {
			grant, password, err := openGrant(ctx, s.Sharing, id)
			if err != nil {
				return detailLoadedMsg{err: err}
			}
			return detailLoadedMsg{detail: sharedLoginDetail(grant, password)}
		}
	case tabSharedByMe:
		// отправитель не может открыть пароль, зашифрованный для получателя
		entity := row.entity.(models.SharedLoginRow)
		return func() tea.Msg {
			return detailLoadedMsg{detail: detailModel{
				title: "ВЫДАННЫЙ ДОСТУП",
				fields: []detailField{
					{"Название", entity.Name},
					{"Пользователь", entity.Username},
					{"URL", entity.URL},
					{"Кому", entity.SharedWith},
				},
				username: entity.Username,
			}}
		}
	}
	return nil
}

func (m vaultModel) cmdEdit(row listRow) tea.Cmd {
	ctx, s, id, folders := m.ctx, m.services, *row.id, m.folders

	switch m.tab {
	case tabLogins:
		return func() tea.Msg {
			login, password, err := openLogin(ctx, s.Logins, id)
			if err != nil {
				return formLoadedMsg{err: err}
			}
			return formLoadedMsg{form: newLoginForm(ctx, s.Logins, folders, &login, password)}
		}
	case tabNotes:
		return func() tea.Msg {
			note, err := s.Notes.Reveal(ctx, id)
			if err != nil {
				return formLoadedMsg{err: err}
			}
			return formLoadedMsg{form: newNoteForm(ctx, s.Notes, &note)}
		}
	case tabSSHKeys:
		entity := row.entity.(models.SSHKeyRow)
		return func() tea.Msg {
			return formLoadedMsg{form: newSSHKeyEditForm(ctx, s.SSHKeys, entity)}
		}
	}
	return nil
}

// cmdCopySecret copies the password, note text or private key of row
// without opening the detail view.
func (m vaultModel) cmdCopySecret(row listRow) tea.Cmd {
	ctx, s, id := m.ctx, m.services, *row.id

	switch m.tab {
	case tabLogins:
		return m.cmdCopy("пароль", func() (string, error) {
			_, password, err := openLogin(ctx, s.Logins, id)
			return password, err
		})
	case tabNotes:
		return m.cmdCopy("текст", func() (string, error) {
			note, err := s.Notes.Reveal(ctx, id)
			return note.Body, err
		})
	case tabSSHKeys:
		return m.cmdCopy("приватный ключ", func() (string, error) {
			return s.SSHKeys.RevealPrivateKey(ctx, id)
		})
	case tabSharedWithMe:
		return m.cmdCopy("пароль", func() (string, error) {
			_, password, err := openGrant(ctx, s.Sharing, id)
			return password, err
		})
	}
	return nil
}

func (m vaultModel) cmdCopyUsername(row listRow) tea.Cmd {
	var username string
	switch e := row.entity.(type) {
	case models.LoginRow:
		username = e.Username
	case models.SharedLoginRow:
		username = e.Username
	default:
		return nil
	}
	return m.cmdCopy("пользователь", func() (string, error) { return username, nil })
}

func (m vaultModel) cmdCopy(what string, value func() (string, error)) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		text, err := value()
		if err != nil {
			return copiedMsg{what: what, err: err}
		}
		return copiedMsg{what: what, err: clip.WriteAll(text)}
	}
}

func openLogin(ctx context.Context, logins service.LoginService, id int64) (models.Login, string, error) {
	login, err := logins.Get(ctx, id)
	if err != nil {
		return models.Login{}, "", err
	}
	password, err := logins.RevealOwnPassword(login)
	if err != nil {
		return models.Login{}, "", err
	}
	return login, password, nil
}

func openGrant(ctx context.Context, sharing service.SharingService, id int64) (models.SharedLogin, string, error) {
	grant, err := sharing.Grant(ctx, id)
	if err != nil {
		return models.SharedLogin{}, "", err
	}
	password, err := sharing.RevealSharedPassword(grant)
	if err != nil {
		return models.SharedLogin{}, "", err
	}
	return grant, password, nil
}

// ── View ──

func (m vaultModel) View() string {
	switch m.mode {
	case modeDetail:
		return m.detail.View(m.status, m.errMsg)
	case modeForm:
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(renderTabs(m.tab, m.failedCount))
	b.WriteString("\n\n")

	if m.tab == tabLogins {
		b.WriteString("Поиск: ")
		b.WriteString(valueOrDash(m.search))
		b.WriteString(" │ Папка: ")
		if f := m.loginQuery().FolderID; f != nil {
			b.WriteString(folderName(m.folders, f))
		} else {
			b.WriteString("все")
		}
		b.WriteString("\n\n")
	}

	b.WriteString(renderTable(tabColumns[m.tab], m.rows, m.idx, m.tab == tabFailed))
	b.WriteString("\n")
	if m.loading && len(m.rows) == 0 {
		b.WriteString("\nЗагрузка...\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	if m.mode == modeConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	return renderPage("GoPassVault │ "+m.login, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m vaultModel) hotKeys() string {
	common := "tab: раздел │ ↑/↓: навигация │ L: выйти из аккаунта │ q: закрыть"
	switch m.tab {
	case tabLogins:
		return "enter: открыть │ n: новый │ e: изменить │ d: в корзину │ c: пароль │ u: пользователь │ s: поделиться │ /: поиск │ f: папка\n  " + common
	case tabNotes:
		return "enter: открыть │ n: новая │ e: изменить │ d: удалить │ c: текст\n  " + common
	case tabSSHKeys:
		return "enter: открыть │ n: новый │ e: изменить │ d: удалить │ c: приватный ключ\n  " + common
	case tabSharedByMe:
		return "enter: открыть │ d: отозвать\n  " + common
	case tabSharedWithMe:
		return "enter: открыть │ c: пароль │ u: пользователь │ d: отказаться\n  " + common
	case tabTrash:
		return "r: восстановить │ d: удалить навсегда\n  " + common
	case tabFailed:
		return "R: повторить │ x: скрыть\n  " + common
	}
	return common
}
