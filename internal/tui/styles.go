// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)

	selectedStyle      = lipgloss.NewStyle().Bold(true)
	pendingAddStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10"))
	pendingEditStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
	pendingDeleteStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	failedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// rowStyle renders pending rows so they cannot be mistaken for confirmed
// ones.
func rowStyle(tag models.PendingTag) lipgloss.Style {
	switch tag {
	case models.TagPendingAdd:
		return pendingAddStyle
	case models.TagPendingEdit:
		return pendingEditStyle
	case models.TagPendingDelete:
		return pendingDeleteStyle
	default:
		return lipgloss.NewStyle()
	}
}

func tagLabel(tag models.PendingTag) string {
	switch tag {
	case models.TagPendingAdd:
		return "добавляется…"
	case models.TagPendingEdit:
		return "сохраняется…"
	case models.TagPendingDelete:
		return "удаляется…"
	default:
		return ""
	}
}
