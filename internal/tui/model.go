package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habittracker/internal/models"
	"github.com/julianstephens/habittracker/internal/utils"
)

const (
	defaultTableHeight = 15
	// header line plus its bottom border
	headerHeight = 2
)

// Model is a read-only browser over habit entries.
type Model struct {
	table    table.Model
	keys     KeyMap
	help     help.Model
	empty    bool
	width    int
	height   int
	quitting bool
}

func NewModel(entries []models.HabitEntry) Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Date", Width: 12},
		{Title: "Quantity", Width: 10},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			strconv.FormatInt(e.ID, 10),
			utils.FormatDisplayDate(e.Date),
			strconv.Itoa(e.Quantity),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+headerHeight, defaultTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return Model{
		table: t,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		empty: len(entries) == 0,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the highlighted row.
func (m Model) Cursor() int {
	return m.table.Cursor()
}
