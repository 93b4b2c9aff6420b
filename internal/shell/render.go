package shell

import (
	"strconv"

	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habittracker/internal/models"
	"github.com/julianstephens/habittracker/internal/utils"
)

const noDataMessage = "No data found"

// RenderEntries draws entries as a pipe-delimited fixed-width table.
func RenderEntries(entries []models.HabitEntry) string {
	if len(entries) == 0 {
		return noDataMessage
	}

	t := table.New().
		Border(pipeBorder).
		Headers("ID", "Date", "Quantity").
		StyleFunc(tableStyle)

	for _, e := range entries {
		t.Row(strconv.FormatInt(e.ID, 10), utils.FormatDisplayDate(e.Date), strconv.Itoa(e.Quantity))
	}

	return t.String()
}
