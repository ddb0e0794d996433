// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/internal/mutation"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultTab int

const (
	tabLogins vaultTab = iota
	tabNotes
	tabSSHKeys
	tabSharedByMe
	tabSharedWithMe
	tabTrash
	tabFailed
	tabCount
)

var tabTitles = [tabCount]string{
	"Логины",
	"Заметки",
	"SSH-ключи",
	"Поделился я",
	"Поделились со мной",
	"Корзина",
	"Ошибки",
}

var tabColumns = [tabCount][]string{
	{"Название", "Пользователь", "URL"},
	{"Название"},
	{"Название", "Публичный ключ"},
	{"Название", "Пользователь", "Кому"},
	{"Название", "Пользователь", "От кого"},
	{"Название", "URL", "Удалён"},
	{"Раздел", "Действие", "Ошибка"},
}

const maxCellWidth = 32

// listRow is one rendered row of any tab. entity keeps the typed row, or the
// mutation entry on the failed tab, for the actions that need it.
type listRow struct {
	id         *int64
	tag        models.PendingTag
	actionable bool
	cells      []string
	entity     any
}

func toListRows[T models.Identified](rows []models.DisplayRow[T], cells func(T) []string) []listRow {
	out := make([]listRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, listRow{
			id:         r.ID,
			tag:        r.Tag,
			actionable: r.Actionable,
			cells:      cells(r.Entity),
			entity:     r.Entity,
		})
	}
	return out
}

func loginCells(r models.LoginRow) []string {
	return []string{r.Name, r.Username, r.URL}
}

func noteCells(r models.NoteRow) []string {
	if r.NameUnavailable {
		return []string{"[не удалось расшифровать]"}
	}
	return []string{r.Name}
}

func sshKeyCells(r models.SSHKeyRow) []string {
	return []string{r.Name, r.PublicKey}
}

func sharedByMeCells(r models.SharedLoginRow) []string {
	return []string{r.Name, r.Username, r.SharedWith}
}

func sharedWithMeCells(r models.SharedLoginRow) []string {
	return []string{r.Name, r.Username, r.SharedBy}
}

func trashCells(r models.TrashRow) []string {
	return []string{r.Name, r.URL, formatDate(r.TrashDate)}
}

func failedRows(entries []mutation.Entry) []listRow {
	out := make([]listRow, 0, len(entries))
	for _, e := range entries {
		errText := ""
		if e.Err != nil {
			errText = humanizeError(e.Err)
		}
		out = append(out, listRow{
			actionable: true,
			cells:      []string{kindTitle(e.Kind), operationTitle(e.Operation), errText},
			entity:     e,
		})
	}
	return out
}

func kindTitle(kind models.EntityKind) string {
	switch kind {
	case models.KindLogin:
		return "Логин"
	case models.KindNote:
		return "Заметка"
	case models.KindSSHKey:
		return "SSH-ключ"
	case models.KindSharedLogin:
		return "Доступ"
	case models.KindTrash:
		return "Корзина"
	default:
		return string(kind)
	}
}

func operationTitle(op models.OperationKind) string {
	switch op {
	case models.OperationAdd:
		return "добавление"
	case models.OperationEdit:
		return "изменение"
	case models.OperationDelete:
		return "удаление"
	default:
		return string(op)
	}
}

// renderTable draws rows under headers with the row at idx marked. Pending
// rows carry their tag label after the last column.
func renderTable(headers []string, rows []listRow, idx int, failed bool) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r.cells {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(fitText(c, maxCellWidth)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = pad(h, widths[i])
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(cells, " │ "))
	b.WriteString("\n")

	seps := make([]string, len(headers))
	for i := range headers {
		seps[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString("──")
	b.WriteString(strings.Join(seps, "─┼─"))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString("  (пусто)")
		return b.String()
	}

	for i, r := range rows {
		for j := range headers {
			v := ""
			if j < len(r.cells) {
				v = r.cells[j]
			}
			cells[j] = pad(valueOrDash(fitText(v, maxCellWidth)), widths[j])
		}

		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		line := strings.Join(cells, " │ ")
		if label := tagLabel(r.tag); label != "" {
			line += "  " + label
		}

		style := rowStyle(r.tag)
		if failed {
			style = failedStyle
		}
		if i == idx {
			style = style.Inherit(selectedStyle)
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func pad(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}

func renderTabs(active vaultTab, failedCount int) string {
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		title := tabTitles[t]
		if t == tabFailed && failedCount > 0 {
			title = fmt.Sprintf("%s (%d)", title, failedCount)
		}
		if t == active {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, tabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
