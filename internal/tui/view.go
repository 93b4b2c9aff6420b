package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := emptyStyle.Render("No data found")
	if !m.empty {
		body = tableBorderStyle.Render(m.table.View())
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Habit entries"),
		"",
		body,
		"",
		m.help.View(m.keys),
	))
}
